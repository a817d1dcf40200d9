package postgres

import (
	"context"
	"time"

	"tempo/internal/domain/entity"
	domainerrors "tempo/internal/domain/errors"
	"tempo/internal/domain/interval"
	"tempo/internal/domain/repository"
	"tempo/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

const timelineDetailColumns = `
	ut.id AS timeline_id,
	ut.app_usage_id,
	d.id AS device_id,
	d.platform AS device_platform,
	a.id AS app_id,
	a.name AS app_name,
	a.category AS app_category,
	a.auto_suggested AS app_auto_suggested,
	da.date,
	ut.start_time,
	ut.end_time`

const timelineDetailJoins = `
	JOIN app_usages au ON au.id = ut.app_usage_id
	JOIN daily_activities da ON da.id = au.daily_activity_id
	JOIN devices d ON d.id = da.device_id
	JOIN apps a ON a.id = au.app_id`

// timelineRepository implements the repository.TimelineRepository interface.
type timelineRepository struct {
	db *gorm.DB
}

// NewTimelineRepository is the constructor for timelineRepository.
func NewTimelineRepository(db *gorm.DB) repository.TimelineRepository {
	return &timelineRepository{
		db: db,
	}
}

func (repo *timelineRepository) detailQuery(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Table("usage_timelines ut").
		Select(timelineDetailColumns).
		Joins(timelineDetailJoins)
}

// FindOverlapping returns the user's timelines on devices of the requested class that intersect the window.
// The overlap predicate is served by the (start_time, end_time) index.
func (repo *timelineRepository) FindOverlapping(ctx context.Context, query repository.OverlapQuery) ([]*entity.TimelineDetail, error) {
	db := repo.detailQuery(ctx).
		Where("d.user_id = ?", query.UserID).
		Where("ut.start_time < ? AND ut.end_time > ?", query.Window.End, query.Window.Start)

	switch query.Class {
	case repository.DeviceClassWeb:
		db = db.Where("d.platform = ?", entity.PlatformWeb.String())
	case repository.DeviceClassNative:
		db = db.Where("d.platform <> ?", entity.PlatformWeb.String())
	}

	var rows []*model.TimelineDetailRow
	if err := db.Order("ut.start_time ASC, ut.id ASC").Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find overlapping timelines")
	}

	return toTimelineDetails(rows), nil
}

// FindForStats reads timelines by DailyActivity date. Outside a transaction it is routed to a replica.
func (repo *timelineRepository) FindForStats(ctx context.Context, query repository.StatsQuery) ([]*entity.TimelineDetail, error) {
	db := repo.detailQuery(ctx).
		Clauses(dbresolver.Read).
		Where("d.user_id = ?", query.UserID).
		Where("da.date BETWEEN ?::date AND ?::date",
			query.FromDate.Format(entity.DateLayout),
			query.ToDate.Format(entity.DateLayout),
		)

	if query.Since != nil {
		db = db.Where("ut.end_time > ?", *query.Since)
	}

	var rows []*model.TimelineDetailRow
	if err := db.Order("ut.start_time ASC, ut.id ASC").Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find timelines for stats")
	}

	return toTimelineDetails(rows), nil
}

// Create inserts one row per segment in a single statement.
func (repo *timelineRepository) Create(ctx context.Context, appUsageID uuid.UUID, segments []interval.Interval) ([]*entity.UsageTimeline, error) {
	if len(segments) == 0 {
		return []*entity.UsageTimeline{}, nil
	}

	timelineModels := make([]*model.UsageTimelineModel, 0, len(segments))
	for _, segment := range segments {
		timelineModels = append(timelineModels, &model.UsageTimelineModel{
			AppUsageID: appUsageID,
			StartTime:  segment.Start.UTC(),
			EndTime:    segment.End.UTC(),
		})
	}

	if err := repo.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(&timelineModels).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return nil, repository.ErrAppUsageNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create usage timelines")
	}

	timelines := make([]*entity.UsageTimeline, 0, len(timelineModels))
	for _, timelineM := range timelineModels {
		timelines = append(timelines, toTimelineDomain(timelineM))
	}

	return timelines, nil
}

// Delete removes a timeline by its ID.
func (repo *timelineRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.UsageTimelineModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete usage timeline")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTimelineNotFound
	}

	return nil
}

// SumByAppUsage recomputes an AppUsage total from its timelines, in milliseconds.
func (repo *timelineRepository) SumByAppUsage(ctx context.Context, appUsageID uuid.UUID) (int64, error) {
	var total int64

	if err := repo.db.WithContext(ctx).
		Model(&model.UsageTimelineModel{}).
		Select("COALESCE(SUM((EXTRACT(EPOCH FROM (end_time - start_time)) * 1000)::bigint), 0)").
		Where("app_usage_id = ?", appUsageID).
		Scan(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to sum usage timelines")
	}

	return total, nil
}

// --- Mapper Functions ---

func toTimelineDomain(data *model.UsageTimelineModel) *entity.UsageTimeline {
	return &entity.UsageTimeline{
		ID:         data.ID,
		AppUsageID: data.AppUsageID,
		Interval:   interval.Interval{Start: data.StartTime.UTC(), End: data.EndTime.UTC()},
		CreatedAt:  data.CreatedAt,
	}
}

func toTimelineDetails(rows []*model.TimelineDetailRow) []*entity.TimelineDetail {
	details := make([]*entity.TimelineDetail, 0, len(rows))
	for _, row := range rows {
		details = append(details, &entity.TimelineDetail{
			TimelineID:     row.TimelineID,
			AppUsageID:     row.AppUsageID,
			DeviceID:       row.DeviceID,
			DevicePlatform: entity.Platform(row.DevicePlatform),
			App: entity.App{
				ID:            row.AppID,
				Name:          row.AppName,
				Category:      entity.Category(row.AppCategory),
				AutoSuggested: row.AppAutoSuggested,
			},
			Date:     time.Date(row.Date.Year(), row.Date.Month(), row.Date.Day(), 0, 0, 0, 0, time.UTC),
			Interval: interval.Interval{Start: row.StartTime.UTC(), End: row.EndTime.UTC()},
		})
	}

	return details
}
