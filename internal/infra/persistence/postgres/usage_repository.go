package postgres

import (
	"context"
	"time"

	"tempo/internal/domain/entity"
	domainerrors "tempo/internal/domain/errors"
	"tempo/internal/domain/repository"
	"tempo/internal/infra/persistence/model"
	"tempo/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// usageRepository implements the repository.UsageRepository interface.
type usageRepository struct {
	db *gorm.DB
	q  *query.Query
}

// NewUsageRepository is the constructor for usageRepository.
func NewUsageRepository(db *gorm.DB) repository.UsageRepository {
	return &usageRepository{
		db: db,
		q:  query.Use(db),
	}
}

// FindOrCreateDailyActivity resolves the (device, date) row.
func (repo *usageRepository) FindOrCreateDailyActivity(ctx context.Context, deviceID uuid.UUID, date time.Time) (*entity.DailyActivity, error) {
	date = entity.LocalDate(date, time.UTC)
	dailyM := &model.DailyActivityModel{
		DeviceID: deviceID,
		Date:     date,
	}

	result := repo.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "device_id"}, {Name: "date"}},
			DoNothing: true,
		}).
		Create(dailyM)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to create daily activity")
	}

	if result.RowsAffected == 0 {
		dailyM = &model.DailyActivityModel{}
		if err := repo.db.WithContext(ctx).
			Where("device_id = ? AND date = ?", deviceID, date.Format(entity.DateLayout)).
			First(dailyM).Error; err != nil {
			return nil, errors.Wrap(err, "failed to find daily activity")
		}
	}

	return toDailyActivityDomain(dailyM), nil
}

// FindOrCreateAppUsage resolves the (daily activity, app) row.
func (repo *usageRepository) FindOrCreateAppUsage(ctx context.Context, dailyActivityID, appID uuid.UUID) (*entity.AppUsage, error) {
	usageM := &model.AppUsageModel{
		DailyActivityID: dailyActivityID,
		AppID:           appID,
	}

	result := repo.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "daily_activity_id"}, {Name: "app_id"}},
			DoNothing: true,
		}).
		Create(usageM)
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to create app usage")
	}

	if result.RowsAffected == 0 {
		usageM = &model.AppUsageModel{}
		if err := repo.db.WithContext(ctx).
			Where("daily_activity_id = ? AND app_id = ?", dailyActivityID, appID).
			First(usageM).Error; err != nil {
			return nil, errors.Wrap(err, "failed to find app usage")
		}
	}

	return toAppUsageDomain(usageM), nil
}

// AddTotalTime adjusts the cumulative counter in place.
func (repo *usageRepository) AddTotalTime(ctx context.Context, appUsageID uuid.UUID, deltaMs int64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AppUsageModel{}).
		Where("id = ?", appUsageID).
		Update("total_time_ms", gorm.Expr("total_time_ms + ?", deltaMs))

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return errors.Wrapf(result.Error, "app usage %s total would become negative", appUsageID)
		}

		return errors.Wrap(result.Error, "failed to update app usage total")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAppUsageNotFound
	}

	return nil
}

// FindAppUsage retrieves an app usage by its ID.
func (repo *usageRepository) FindAppUsage(ctx context.Context, id uuid.UUID) (*entity.AppUsage, error) {
	usageM, err := repo.q.AppUsageModel.WithContext(ctx).
		Where(repo.q.AppUsageModel.ID.Eq(id)).
		First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAppUsageNotFound
		}

		return nil, errors.Wrap(err, "failed to find app usage")
	}

	return toAppUsageDomain(usageM), nil
}

// --- Mapper Functions ---

func toDailyActivityDomain(data *model.DailyActivityModel) *entity.DailyActivity {
	if data == nil {
		return nil
	}

	return &entity.DailyActivity{
		ID:        data.ID,
		DeviceID:  data.DeviceID,
		Date:      entity.LocalDate(data.Date, time.UTC),
		CreatedAt: data.CreatedAt,
	}
}

func toAppUsageDomain(data *model.AppUsageModel) *entity.AppUsage {
	if data == nil {
		return nil
	}

	return &entity.AppUsage{
		ID:              data.ID,
		DailyActivityID: data.DailyActivityID,
		AppID:           data.AppID,
		TotalTimeMs:     data.TotalTimeMs,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
