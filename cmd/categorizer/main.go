package main

import (
	"context"
	"log/slog"
	"os"

	"tempo/config"
	"tempo/internal/delivery"
	"tempo/internal/delivery/worker"
	"tempo/internal/delivery/worker/handler"
	"tempo/internal/domain/constants"
	logs "tempo/internal/infra/log"
	"tempo/internal/infra/persistence/memory"
	"tempo/internal/infra/persistence/postgres"
	"tempo/internal/usecase/impl"

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
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		logs.New,
		context.Background,
	)
}

// injectRepo selects the app repository. The memory driver only makes sense when the
// worker is exercised on its own, since it cannot see the API's store.
func injectRepo(cfg *config.Config) fx.Option {
	if cfg.Storage.Driver == constants.StorageDriverMemory {
		return fx.Provide(memory.NewStore, memory.NewAppRepository)
	}

	return fx.Provide(postgres.New, postgres.NewAppRepository)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAppService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
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
