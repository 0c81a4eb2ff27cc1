package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"locgate/config"
	"locgate/internal/domain/entity"
	"locgate/internal/domain/service"
	"locgate/internal/errors"
	"locgate/internal/infra/geofence"
	logs "locgate/internal/infra/log"
	"locgate/internal/infra/notification"
	"locgate/internal/infra/persistence/memory"
	"locgate/internal/infra/persistence/postgres"
	"locgate/internal/infra/pubsub"
	"locgate/internal/infra/zoneclient"
	"locgate/internal/usecase"
	"locgate/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"gorm.io/gorm"
)

// app is the composition root shared by all commands.
type app struct {
	opts   *GlobalOptions
	cfg    *config.Config
	logger *slog.Logger
	clock  clockwork.Clock

	db      *gorm.DB
	closers []func() error
}

func newApp(opts *GlobalOptions) (*app, error) {
	cfg, err := config.New()
	if err != nil {
		// the simulator runs without a config file
		cfg = &config.Config{}
		cfg.Env.ServiceName = "gatesim"
		cfg.Env.Log.Pretty = true
	}
	if opts.Verbose {
		cfg.Env.Log.Level = "debug"
	}

	logger, lerr := logs.NewWithWriter(cfg, os.Stderr)
	if lerr != nil {
		return nil, lerr
	}
	if err != nil {
		logger.Debug("No config file loaded, using defaults", slog.Any("error", err))
	}

	return &app{
		opts:   opts,
		cfg:    cfg,
		logger: logger,
		clock:  clockwork.NewRealClock(),
	}, nil
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.logger.Warn("Failed to release resource", slog.Any("error", err))
		}
	}
}

func (a *app) identity() (entity.Identity, error) {
	if a.opts.UserID == "" {
		return entity.Identity{DeviceID: a.opts.DeviceID}, nil
	}

	userID, err := uuid.Parse(a.opts.UserID)
	if err != nil {
		return entity.Identity{}, errors.Wrap(err, "invalid --user-id")
	}

	return entity.Identity{UserID: &userID, DeviceID: a.opts.DeviceID}, nil
}

func (a *app) database() (*gorm.DB, error) {
	if a.db != nil {
		return a.db, nil
	}

	db, err := postgres.Open(a.cfg, a.logger)
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}
	a.closers = append(a.closers, sqlDB.Close)
	a.db = db

	return db, nil
}

// addressStore returns the gating view of saved addresses and the setup flag.
func (a *app) addressStore() (usecase.AddressStore, error) {
	if a.opts.Store != "postgres" {
		store := memory.NewStore()

		return impl.NewAddressStore(store.Addresses(), store.SetupFlags(), store.TransactionManager(), a.clock, a.logger), nil
	}

	db, err := a.database()
	if err != nil {
		return nil, err
	}

	return impl.NewAddressStore(
		postgres.NewAddressRepository(db),
		postgres.NewSetupFlagRepository(db),
		postgres.NewTransactionManager(db),
		a.clock,
		a.logger,
	), nil
}

// zoneSource resolves --zones-file, then the configured source.
func (a *app) zoneSource() (geofence.Source, error) {
	if a.opts.ZonesFile != "" {
		path, err := filepath.Abs(a.opts.ZonesFile)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		return geofence.NewBlobSource("file://"+filepath.ToSlash(filepath.Dir(path)), filepath.Base(path)), nil
	}

	if a.cfg.Zones == nil || a.cfg.Zones.Source == "" || a.cfg.Zones.Source == geofence.SourcePostgres {
		db, err := a.database()
		if err != nil {
			return nil, errors.Wrap(err, "zones need --zones-file, --zone-service or a database")
		}

		return geofence.NewSource(a.cfg.Zones, postgres.NewZoneRepository(db, a.logger))
	}

	return geofence.NewSource(a.cfg.Zones, nil)
}

// localRegistry loads zones into an in-process registry.
func (a *app) localRegistry(ctx context.Context) (*geofence.Registry, error) {
	source, err := a.zoneSource()
	if err != nil {
		return nil, err
	}

	var cellSizeKm float64
	if a.cfg.Zones != nil {
		cellSizeKm = a.cfg.Zones.GridCellSizeKm
	}
	registry := geofence.NewRegistry(source, cellSizeKm, a.logger)

	count, err := registry.Reload(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load zones from %s", source.Name())
	}
	a.logger.Debug("Delivery zones loaded", slog.String("source", source.Name()), slog.Int("zones", count))

	return registry, nil
}

// zones returns the zone registry and the waitlist notifier the engine talks to.
func (a *app) zones(ctx context.Context) (service.ZoneRegistry, service.AvailabilityNotifier, error) {
	if a.opts.ZoneService != "" {
		cfg := &config.ZoneServiceConfig{BaseURL: a.opts.ZoneService}
		if a.cfg.ZoneService != nil {
			cfg.Timeout = a.cfg.ZoneService.Timeout
		}
		client, err := zoneclient.New(cfg, a.logger)
		if err != nil {
			return nil, nil, err
		}

		return client, client, nil
	}

	registry, err := a.localRegistry(ctx)
	if err != nil {
		return nil, nil, err
	}

	publisher, err := pubsub.NewPublisherFromConfig(ctx, a.cfg.PubSub, a.logger)
	if err != nil {
		return nil, nil, err
	}
	a.closers = append(a.closers, publisher.Close)

	topics, err := notification.NewTopicSubscriber(ctx, a.cfg, a.logger)
	if err != nil {
		return nil, nil, err
	}

	waitlist := impl.NewWaitlistService(registry, publisher, topics, a.clock, a.logger)

	return registry, impl.NewWaitlistNotifier(waitlist), nil
}
