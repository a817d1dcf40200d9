// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// MaxSessionDuration is the longest interval a single report may cover.
const MaxSessionDuration = 24 * time.Hour

// IngestSessionInput is one usage interval reported by a device.
type IngestSessionInput struct {
	DeviceExternalID string
	DevicePlatform   string
	AppName          string
	StartTime        time.Time
	EndTime          time.Time
	TimeZone         string
	UserID           uuid.UUID
}

// IngestSessionResult tells the caller what the report contributed.
// Filtered reports succeed with zero duration added.
type IngestSessionResult struct {
	Success         bool  `json:"success"`
	Filtered        bool  `json:"filtered"`
	DurationAddedMs int64 `json:"duration_added_ms"`
}

// IngestionUsecase records device reports into the usage ledger.
type IngestionUsecase interface {
	// IngestSession validates, reconciles and atomically stores one report.
	IngestSession(ctx context.Context, input *IngestSessionInput) (*IngestSessionResult, error)
}
