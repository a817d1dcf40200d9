package pubsub

import (
	"context"
	"log/slog"
	"time"

	"tempo/config"
	"tempo/internal/domain/constants"
	"tempo/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// disabledPublisher drops app discoveries when no provider is configured;
// newly seen apps then wait for a manual category.
type disabledPublisher struct {
	logger *slog.Logger
}

func (p *disabledPublisher) PublishAppDiscovered(ctx context.Context, event *service.AppDiscoveredEvent) error {
	p.logger.DebugContext(ctx, "[PubSub] Publishing disabled, app left uncategorized",
		slog.String("app_id", event.AppID),
		slog.String("app_name", event.AppName),
	)

	return nil
}

func (p *disabledPublisher) Close() error {
	return nil
}

// boundedPublisher gives every publish its own deadline. Ingestion publishes on a
// context detached from the request, so without it a stalled broker would pin the
// goroutine indefinitely.
type boundedPublisher struct {
	next    service.EventPublisher
	timeout time.Duration
}

func (p *boundedPublisher) PublishAppDiscovered(ctx context.Context, event *service.AppDiscoveredEvent) error {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	return p.next.PublishAppDiscovered(ctx, event)
}

func (p *boundedPublisher) Close() error {
	return p.next.Close()
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher builds the configured publisher and closes it on shutdown.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	publisher, err := newPublisher(params.Ctx, params.Config.PubSub, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing EventPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

func newPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, automatic categorization disabled")

		return &disabledPublisher{logger: logger}, nil
	}

	var publisher service.EventPublisher

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for Pub/Sub",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("project ID and topic ID are required for google provider")
		}
		logger.Info("Using Google Pub/Sub publisher",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		var err error
		publisher, err = NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	if cfg.PublishTimeout > 0 {
		publisher = &boundedPublisher{next: publisher, timeout: cfg.PublishTimeout}
	}

	return publisher, nil
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
