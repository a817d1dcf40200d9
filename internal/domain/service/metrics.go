package service

import "time"

// Ingestion outcomes reported to the metrics recorder.
const (
	OutcomeRecorded = "recorded"
	OutcomeFiltered = "filtered"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// IngestionObservation describes one finished ingestion attempt.
type IngestionObservation struct {
	Outcome         string
	Platform        string
	DurationAddedMs int64
	PrunedMs        int64
	PrunedTimelines int
	Latency         time.Duration
}

// IngestionRecorder receives ingestion measurements.
type IngestionRecorder interface {
	ObserveIngestion(obs IngestionObservation)
}

// NoopIngestionRecorder discards every observation.
type NoopIngestionRecorder struct{}

// ObserveIngestion implements IngestionRecorder.
func (NoopIngestionRecorder) ObserveIngestion(IngestionObservation) {}
