package main

import (
	"context"
	"log/slog"
	"os"

	"tempo/config"
	"tempo/internal/delivery"
	"tempo/internal/delivery/api"
	"tempo/internal/delivery/api/middleware"
	"tempo/internal/delivery/api/router/handler"
	"tempo/internal/domain/classification"
	"tempo/internal/domain/constants"
	"tempo/internal/infra/auth"
	logs "tempo/internal/infra/log"
	"tempo/internal/infra/metrics"
	"tempo/internal/infra/persistence/memory"
	"tempo/internal/infra/persistence/postgres"
	"tempo/internal/infra/pubsub"
	"tempo/internal/usecase/impl"

	"github.com/coder/quartz"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	fx.New(
		fx.Supply(cfg),
		injectInfra(),
		injectRepo(cfg),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			logs.New,
			context.Background,
			newClock,
			newBrowserTable,
		),
		metrics.Module,
		pubsub.Module,
	)
}

func newClock() quartz.Clock {
	return quartz.NewReal()
}

func newBrowserTable(cfg *config.Config) *classification.BrowserTable {
	return classification.NewBrowserTable(cfg.Ingestion.BrowserApps)
}

func injectRepo(cfg *config.Config) fx.Option {
	if cfg.Storage.Driver == constants.StorageDriverMemory {
		return memory.Module
	}

	return postgres.Module
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewIngestionService,
			impl.NewStatsService,
			impl.NewAppService,
			impl.NewDeviceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSessionHandler,
			handler.NewStatsHandler,
			handler.NewAppHandler,
			handler.NewDeviceHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
