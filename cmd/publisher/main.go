package main

import (
	"context"
	"log/slog"
	"os"

	"gamehub/config"
	"gamehub/internal/delivery"
	"gamehub/internal/delivery/consumer"
	"gamehub/internal/delivery/consumer/handler"
	"gamehub/internal/delivery/http"
	"gamehub/internal/delivery/http/router"
	"gamehub/internal/delivery/shell"
	"gamehub/internal/delivery/worker"
	"gamehub/internal/domain/service"
	"gamehub/internal/infra/auth"
	"gamehub/internal/infra/bus"
	"gamehub/internal/infra/catalog"
	logs "gamehub/internal/infra/log"
	"gamehub/internal/infra/metrics"
	"gamehub/internal/infra/persistence/postgres"
	"gamehub/internal/usecase"
	"gamehub/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Ctx        context.Context
	Logger     *slog.Logger
	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectConsumer(),
		router.Module,
		injectDelivery(),
		fx.Invoke(
			importCatalog,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.NewLoader(config.Publisher),
			logs.New,
			context.Background,
			postgres.New,
			fx.Annotate(
				metrics.NewCollector,
				fx.As(fx.Self()),
				fx.As(new(service.PatchObserver)),
			),
			catalog.NewCatalogSource,
		),
		bus.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewPublisherTransactionManager,
			postgres.NewOutboxTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewPublisherService,
			impl.NewCatalogService,
		),
	)
}

func injectConsumer() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				handler.NewPublisherListeners,
				fx.ResultTags(`group:"listeners,flatten"`),
			),
			consumer.NewRuntime,
			fx.Annotate(
				worker.NewForwarder,
				fx.As(fx.Self()),
				fx.As(new(consumer.Nudger)),
			),
			fx.Annotate(
				shell.NewPublisherCommands,
				fx.ResultTags(`group:"shell_commands,flatten"`),
			),
			shell.NewShell,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				func(r *consumer.Runtime) delivery.Delivery { return r },
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				func(f *worker.Forwarder) delivery.Delivery { return f },
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				func(s *shell.Shell) delivery.Delivery { return s },
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

type importCatalogParams struct {
	fx.In
	fx.Lifecycle

	Ctx     context.Context
	Config  *config.Config
	Catalog usecase.CatalogUsecase
	Logger  *slog.Logger
}

// importCatalog loads the CSV catalog in the background once the store is migrated.
func importCatalog(params importCatalogParams) {
	cc := params.Config.Catalog
	if cc == nil || !cc.ImportOnStartup {
		return
	}

	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				created, err := params.Catalog.LoadCatalog(params.Ctx, cc.MaxLines)
				if err != nil {
					params.Logger.Error("Catalog import failed", slog.Any("error", err))

					return
				}
				params.Logger.Info("Catalog imported", slog.Int("games", created))
			}()

			return nil
		},
	})
}

// startServer serves every delivery once the store, the bus and the topics are ready.
func startServer(params startServerParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			for _, d := range params.Deliveries {
				go func() {
					if err := d.Serve(params.Ctx); err != nil {
						params.Logger.Error("Failed to start server", slog.Any("error", err))

						// Trigger graceful shutdown to execute all OnStop hooks
						if shutdownErr := params.Shutdown(); shutdownErr != nil {
							params.Logger.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
							os.Exit(1)
						}
					}
				}()
			}

			return nil
		},
	})
}
