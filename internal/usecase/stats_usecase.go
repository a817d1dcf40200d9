package usecase

import (
	"context"
	"time"

	"tempo/internal/domain/aggregation"

	"github.com/google/uuid"
)

// StatsQuery selects the timelines to aggregate.
type StatsQuery struct {
	UserID      uuid.UUID
	FromDate    string // YYYY-MM-DD in the resolved zone; takes precedence over From.
	ToDate      string
	From        *time.Time // Defaults to now; only its local date in the resolved zone matters.
	To          *time.Time // Defaults to now.
	TimeZone    string     // Invalid or empty zones fall back to the configured default.
	Since       *time.Time // Only timelines ending after Since.
	KnownAppIDs []uuid.UUID
}

// Stats is the aggregated usage plus the resolved query window.
type Stats struct {
	*aggregation.Result
	TimeZone string `json:"time_zone"`
	From     string `json:"from"`
	To       string `json:"to"`
}

// StatsUsecase aggregates the ledger for display.
type StatsUsecase interface {
	GetStats(ctx context.Context, query *StatsQuery) (*Stats, error)
}
