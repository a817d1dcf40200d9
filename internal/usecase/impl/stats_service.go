package impl

import (
	"context"
	"log/slog"
	"time"

	"tempo/config"
	deliverycontext "tempo/internal/delivery/context"
	"tempo/internal/domain/aggregation"
	"tempo/internal/domain/entity"
	domainerrors "tempo/internal/domain/errors"
	"tempo/internal/domain/repository"
	"tempo/internal/usecase"

	"github.com/coder/quartz"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

// StatsServiceParams holds dependencies for the stats service, injected by Fx.
type StatsServiceParams struct {
	fx.In

	TimelineRepo repository.TimelineRepository
	Clock        quartz.Clock
	Config       *config.Config
	Logger       *slog.Logger
}

type statsService struct {
	timelineRepo repository.TimelineRepository
	clock        quartz.Clock
	defaultZone  string
	logger       *slog.Logger
}

// NewStatsService is the constructor for statsService.
func NewStatsService(params StatsServiceParams) usecase.StatsUsecase {
	clock := params.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}

	return &statsService{
		timelineRepo: params.TimelineRepo,
		clock:        clock,
		defaultZone:  params.Config.Stats.DefaultTimeZone,
		logger:       params.Logger,
	}
}

// GetStats reads the user's timelines for the requested local dates and aggregates them by hour.
func (srv *statsService) GetStats(ctx context.Context, query *usecase.StatsQuery) (*usecase.Stats, error) {
	if query == nil || query.UserID == uuid.Nil {
		return nil, domainerrors.ErrUnauthorized
	}
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	zoneName, loc := srv.resolveZone(logger, query.TimeZone)

	now := srv.clock.Now()
	fromDate, err := localDate(query.FromDate, query.From, now, loc)
	if err != nil {
		return nil, err
	}
	toDate, err := localDate(query.ToDate, query.To, now, loc)
	if err != nil {
		return nil, err
	}
	if toDate.Before(fromDate) {
		return nil, domainerrors.ErrInvalidRange.WithDetails("from must not be after to")
	}

	timelines, err := srv.timelineRepo.FindForStats(ctx, repository.StatsQuery{
		UserID:   query.UserID,
		FromDate: fromDate,
		ToDate:   toDate,
		Since:    query.Since,
	})
	if err != nil {
		logger.Error("Failed to load timelines for stats",
			slog.String("user_id", query.UserID.String()),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrStatsUnavailable
	}

	known := make(map[uuid.UUID]struct{}, len(query.KnownAppIDs))
	for _, id := range query.KnownAppIDs {
		known[id] = struct{}{}
	}

	result := aggregation.Build(timelines, loc, known)
	if result.Cursor == nil && query.Since != nil {
		since := *query.Since
		result.Cursor = &since
	}

	return &usecase.Stats{
		Result:   result,
		TimeZone: zoneName,
		From:     fromDate.Format(entity.DateLayout),
		To:       toDate.Format(entity.DateLayout),
	}, nil
}

// localDate picks the calendar date of a window bound: an explicit date, else the instant (or now) in loc.
func localDate(date string, instant *time.Time, now time.Time, loc *time.Location) (time.Time, error) {
	if date != "" {
		d, err := time.Parse(entity.DateLayout, date)
		if err != nil {
			return time.Time{}, domainerrors.ErrValidationFailed.WithDetails("dates must be YYYY-MM-DD")
		}

		return d, nil
	}
	if instant != nil {
		return entity.LocalDate(*instant, loc), nil
	}

	return entity.LocalDate(now, loc), nil
}

// resolveZone returns the requested zone, or the configured default when it cannot be loaded.
func (srv *statsService) resolveZone(logger *slog.Logger, requested string) (string, *time.Location) {
	if loc, ok := aggregation.ResolveZone(requested); ok {
		return loc.String(), loc
	}

	if requested != "" {
		logger.Warn("Invalid stats time zone, using default",
			slog.String("requested", requested),
			slog.String("default", srv.defaultZone),
		)
	}

	loc, ok := aggregation.ResolveZone(srv.defaultZone)
	if !ok {
		return time.UTC.String(), time.UTC
	}

	return loc.String(), loc
}
