package service

import (
	"context"
)

// AppDiscoveredEvent announces that ingestion created a new App dictionary entry
type AppDiscoveredEvent struct {
	RequestID    string `json:"request_id,omitempty"` // For distributed tracing
	AppID        string `json:"app_id"`
	AppName      string `json:"app_name"`
	Platform     string `json:"platform"`      // Platform of the device that first reported the app
	DiscoveredAt string `json:"discovered_at"` // RFC3339
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAppDiscovered publishes an app discovered event for async categorization
	PublishAppDiscovered(ctx context.Context, event *AppDiscoveredEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
