package repository

import (
	"context"
	"time"

	"tempo/internal/domain/entity"
	"tempo/internal/errors"

	"github.com/google/uuid"
)

// ErrAppUsageNotFound is returned when no app usage matches the lookup.
var ErrAppUsageNotFound = errors.New("app usage not found")

// UsageRepository manages DailyActivity and AppUsage rows.
type UsageRepository interface {
	// FindOrCreateDailyActivity resolves the (device, date) row. date is midnight UTC of the local date.
	FindOrCreateDailyActivity(ctx context.Context, deviceID uuid.UUID, date time.Time) (*entity.DailyActivity, error)

	// FindOrCreateAppUsage resolves the (dailyActivity, app) row with a zero counter when new.
	FindOrCreateAppUsage(ctx context.Context, dailyActivityID, appID uuid.UUID) (*entity.AppUsage, error)

	// AddTotalTime adjusts the cumulative counter by deltaMs, which may be negative.
	AddTotalTime(ctx context.Context, appUsageID uuid.UUID, deltaMs int64) error

	FindAppUsage(ctx context.Context, id uuid.UUID) (*entity.AppUsage, error)
}
