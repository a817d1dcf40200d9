package repository

import (
	"context"
	"time"

	"tempo/internal/domain/entity"
	"tempo/internal/domain/interval"
	"tempo/internal/errors"

	"github.com/google/uuid"
)

// ErrTimelineNotFound is returned when deleting a timeline that does not exist.
var ErrTimelineNotFound = errors.New("usage timeline not found")

// DeviceClass selects which of a user's devices a timeline query covers.
type DeviceClass int

const (
	// DeviceClassWeb covers browser-extension devices only.
	DeviceClassWeb DeviceClass = iota
	// DeviceClassNative covers every non-web device.
	DeviceClassNative
)

// OverlapQuery finds a user's timelines intersecting Window.
type OverlapQuery struct {
	UserID uuid.UUID
	Window interval.Interval
	Class  DeviceClass
}

// StatsQuery selects a user's timelines by DailyActivity date.
type StatsQuery struct {
	UserID   uuid.UUID
	FromDate time.Time // inclusive, midnight UTC
	ToDate   time.Time // inclusive, midnight UTC
	Since    *time.Time
}

// TimelineRepository manages UsageTimeline rows.
type TimelineRepository interface {
	// FindOverlapping returns timelines of the user's devices of the given class that overlap the window.
	FindOverlapping(ctx context.Context, query OverlapQuery) ([]*entity.TimelineDetail, error)

	// FindForStats returns timelines whose DailyActivity date is within the range,
	// restricted to timelines ending after Since when set. Results are ordered by start time.
	FindForStats(ctx context.Context, query StatsQuery) ([]*entity.TimelineDetail, error)

	// Create inserts one row per segment for appUsageID.
	Create(ctx context.Context, appUsageID uuid.UUID, segments []interval.Interval) ([]*entity.UsageTimeline, error)

	Delete(ctx context.Context, id uuid.UUID) error

	// SumByAppUsage recomputes the duration of all timelines of an AppUsage.
	// It is used for consistency checks, never on the ingestion path.
	SumByAppUsage(ctx context.Context, appUsageID uuid.UUID) (int64, error)
}
