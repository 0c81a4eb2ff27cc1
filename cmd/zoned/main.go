package main

import (
	"context"
	"log/slog"
	"os"

	"locgate/config"
	"locgate/internal/delivery"
	"locgate/internal/delivery/api"
	"locgate/internal/delivery/api/router/handler"
	"locgate/internal/domain/lifecycle"
	"locgate/internal/domain/repository"
	"locgate/internal/domain/service"
	"locgate/internal/errors"
	"locgate/internal/infra/geofence"
	logs "locgate/internal/infra/log"
	"locgate/internal/infra/metrics"
	"locgate/internal/infra/notification"
	"locgate/internal/infra/persistence/postgres"
	"locgate/internal/infra/pubsub"
	"locgate/internal/usecase/impl"

	"github.com/jonboulle/clockwork"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		clockwork.NewRealClock,
		metrics.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newZoneRepository,
		),
	)
}

// zoneRepositoryParams holds dependencies for the optional zone repository.
type zoneRepositoryParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// newZoneRepository opens Postgres only when zones are read from it.
func newZoneRepository(params zoneRepositoryParams) (repository.ZoneRepository, error) {
	if params.Config.Zones != nil && params.Config.Zones.Source != "" && params.Config.Zones.Source != geofence.SourcePostgres {
		return nil, nil
	}

	db, err := postgres.New(postgres.Params{
		Lifecycle: params.Lifecycle,
		Config:    params.Config,
		Logger:    params.Logger,
	})
	if err != nil {
		return nil, err
	}

	return postgres.NewZoneRepository(db, params.Logger), nil
}

func injectService() fx.Option {
	return fx.Options(
		pubsub.Module,
		fx.Provide(
			fx.Annotate(
				newZoneRegistry,
				fx.As(new(impl.ZoneCatalog)),
				fx.As(new(service.ZoneRegistry)),
			),
			notification.NewTopicSubscriber,
		),
	)
}

// zoneRegistryParams holds dependencies for the zone registry, injected by Fx.
type zoneRegistryParams struct {
	fx.In
	fx.Lifecycle

	Config   *config.Config
	Logger   *slog.Logger
	Metrics  *metrics.Metrics
	ZoneRepo repository.ZoneRepository `optional:"true"`
}

// newZoneRegistry builds the registry and loads zones before serving.
func newZoneRegistry(params zoneRegistryParams) (*geofence.Registry, error) {
	source, err := geofence.NewSource(params.Config.Zones, params.ZoneRepo)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create zone source")
	}

	var cellSizeKm float64
	if params.Config.Zones != nil {
		cellSizeKm = params.Config.Zones.GridCellSizeKm
	}
	registry := geofence.NewRegistry(source, cellSizeKm, params.Logger,
		geofence.WithLookupObserver(params.Metrics),
	)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			count, err := registry.Reload(ctx)
			if err != nil {
				return errors.Wrap(err, "failed to load delivery zones")
			}
			params.Logger.Info("Delivery zones loaded",
				slog.String("source", source.Name()),
				slog.Int("zones", count),
			)

			return nil
		},
	})

	return registry, nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewZoneService,
			impl.NewWaitlistService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewZoneHandler,
			handler.NewWaitlistHandler,
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
				os.Exit(1)
			}
		}()
	}
}
