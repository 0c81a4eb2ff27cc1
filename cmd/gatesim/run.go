package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"locgate/config"
	"locgate/internal/domain/entity"
	"locgate/internal/domain/service"
	"locgate/internal/errors"
	"locgate/internal/infra/device"
	"locgate/internal/usecase"
	"locgate/internal/usecase/impl"

	"github.com/jonboulle/clockwork"
)

var (
	errSessionFailed = errors.New("gating session failed")
	errNotRested     = errors.New("gating session did not rest in time")
)

type runCommand struct {
	global *GlobalOptions

	Lat                 float64       `long:"lat"                   description:"Latitude reported by the simulated GPS" default:"25.514"`
	Lon                 float64       `long:"lon"                   description:"Longitude reported by the simulated GPS" default:"90.21"`
	Accuracy            float64       `long:"accuracy"              description:"Accuracy radius of the fix in meters" default:"15"`
	Permission          string        `long:"permission"            description:"Permission before the dialog" choice:"granted" choice:"denied" choice:"denied_forever" default:"denied"`
	Answer              string        `long:"answer"                description:"Answer given in the permission dialog" choice:"granted" choice:"denied" choice:"denied_forever" default:"granted"`
	ServiceDisabled     bool          `long:"service-disabled"      description:"Start with location services switched off"`
	ServiceEnabledAfter time.Duration `long:"service-enabled-after" description:"Switch location services on after this delay"`
	FixDelay            time.Duration `long:"fix-delay"             description:"Time the GPS takes to produce a fix"`
	FixError            string        `long:"fix-error"             description:"Make the GPS fail instead of producing a fix" choice:"timeout" choice:"unavailable"`
	Retries             int           `long:"retries"               description:"Retry this many times after a retryable failure"`
	FollowRemedy        bool          `long:"follow-remedy"         description:"Open the settings screen a failure asks for"`
	Viewing             bool          `long:"viewing"               description:"Enter viewing mode when outside every zone"`
	Notify              bool          `long:"notify"                description:"Join the waitlist when outside every zone"`
	PushToken           string        `long:"push-token"            description:"Push token subscribed to the waitlist topic"`
	Contact             string        `long:"contact"               description:"Contact left with the waitlist request"`
	Wait                time.Duration `long:"wait"                  description:"Give up when the session has not rested by then" default:"2m"`
}

// simulation holds the collaborators a session runs against.
type simulation struct {
	identity entity.Identity
	zones    service.ZoneRegistry
	notifier service.AvailabilityNotifier
	store    usecase.AddressStore
	cfg      *config.Config
	clock    clockwork.Clock
	logger   *slog.Logger
}

func (c *runCommand) Execute(_ []string) error {
	a, err := newApp(c.global)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sim, err := newSimulation(ctx, a)
	if err != nil {
		return err
	}

	return c.simulate(ctx, sim, os.Stdout)
}

func newSimulation(ctx context.Context, a *app) (*simulation, error) {
	identity, err := a.identity()
	if err != nil {
		return nil, err
	}
	zones, notifier, err := a.zones(ctx)
	if err != nil {
		return nil, err
	}
	store, err := a.addressStore()
	if err != nil {
		return nil, err
	}

	return &simulation{
		identity: identity,
		zones:    zones,
		notifier: notifier,
		store:    store,
		cfg:      a.cfg,
		clock:    a.clock,
		logger:   a.logger,
	}, nil
}

func (c *runCommand) script() device.Script {
	script := device.Script{
		Permission:     entity.PermissionState(c.Permission),
		OnRequest:      entity.PermissionState(c.Answer),
		ServiceEnabled: !c.ServiceDisabled,
		Fix: &entity.LocationFix{
			Coordinates:    entity.Coordinates{Latitude: c.Lat, Longitude: c.Lon},
			AccuracyMeters: c.Accuracy,
			Source:         entity.FixSourceGPS,
		},
		FixDelay: c.FixDelay,
	}
	switch c.FixError {
	case "timeout":
		script.FixErr = service.ErrFixTimeout
	case "unavailable":
		script.FixErr = service.ErrLocationUnavailable
	}

	return script
}

func (c *runCommand) simulate(ctx context.Context, sim *simulation, out io.Writer) error {
	provider := device.NewScriptedProvider(c.script(), sim.clock)
	presenter := newConsolePresenter(out, sim.clock)
	notifier := newTrackedNotifier(sim.notifier)

	engine := impl.NewGatingEngine(impl.GatingEngineParams{
		Identity:  sim.identity,
		Provider:  provider,
		Zones:     sim.zones,
		Store:     sim.store,
		Settings:  device.NewSimulatedSettings(sim.logger, provider),
		Notifier:  notifier.orNil(),
		Monitor:   impl.NewServiceMonitor(sim.cfg.Monitor.PollPhasesOrDefault(), sim.clock, sim.logger),
		Clock:     sim.clock,
		Config:    sim.cfg.Gating,
		Logger:    sim.logger,
		Observers: []usecase.GatingObserver{presenter},
	})
	defer engine.Close()

	if c.ServiceEnabledAfter > 0 {
		timer := sim.clock.AfterFunc(c.ServiceEnabledAfter, func() {
			provider.SetServiceEnabled(true)
			presenter.note("location services switched on")
		})
		defer timer.Stop()
	}

	ctx, cancel := context.WithTimeout(ctx, c.Wait)
	defer cancel()

	if err := engine.Initialize(ctx); err != nil {
		return err
	}

	retries := c.Retries
	openedSettings := false
	for {
		presenter.drain()
		state := engine.State()

		switch state.Status {
		case entity.StatusCompleted, entity.StatusViewingModeReady:
			presenter.summary(state)

			return nil

		case entity.StatusServiceNotAvailable:
			if c.Notify {
				c.joinWaitlist(ctx, engine, notifier, presenter)
			}
			if c.Viewing {
				if err := engine.EnterViewingMode(ctx); err != nil {
					return err
				}

				continue
			}
			presenter.summary(state)

			return nil

		case entity.StatusFailed:
			remedy := failureRemedy(state)
			switch {
			case remedy.IsRetry() && retries > 0:
				retries--
				presenter.note("retrying, %d left", retries)
				if err := engine.Retry(ctx); err != nil {
					return err
				}

				continue
			case remedy == entity.RemedyOpenAppSettings && c.FollowRemedy && !openedSettings:
				openedSettings = true
				if err := engine.OpenAppSettings(ctx); err != nil {
					return err
				}
				engine.AppResumed()
			default:
				presenter.summary(state)

				return errSessionFailed
			}

		case entity.StatusGpsDisabled:
			if c.FollowRemedy && !openedSettings {
				openedSettings = true
				if err := engine.OpenLocationSettings(ctx); err != nil {
					return err
				}
				engine.AppResumed()
			}
		}

		select {
		case <-presenter.changed:
		case <-ctx.Done():
			presenter.summary(engine.State())

			return errNotRested
		}
	}
}

func (c *runCommand) joinWaitlist(ctx context.Context, engine usecase.GatingEngine, notifier *trackedNotifier, presenter *consolePresenter) {
	input := usecase.NotifyInput{PushToken: c.PushToken, Contact: c.Contact}
	if err := engine.RequestNotifyWhenAvailable(ctx, input); err != nil {
		presenter.note("waitlist request not sent: %v", err)

		return
	}

	if err := notifier.wait(ctx); err != nil {
		presenter.note("waitlist request failed: %v", err)

		return
	}
	presenter.note("waitlist request recorded")
}

func failureRemedy(state entity.GatingState) entity.Remedy {
	if state.Failure == nil {
		return entity.RemedyRetry
	}

	return state.Failure.Remedy
}

// trackedNotifier lets the command wait for the engine's background request.
type trackedNotifier struct {
	next service.AvailabilityNotifier
	done chan error
}

func newTrackedNotifier(next service.AvailabilityNotifier) *trackedNotifier {
	return &trackedNotifier{next: next, done: make(chan error, 1)}
}

func (n *trackedNotifier) RequestNotifyWhenAvailable(ctx context.Context, req *service.AvailabilityRequest) error {
	err := n.next.RequestNotifyWhenAvailable(ctx, req)
	select {
	case n.done <- err:
	default:
	}

	return err
}

func (n *trackedNotifier) orNil() service.AvailabilityNotifier {
	if n.next == nil {
		return nil
	}

	return n
}

func (n *trackedNotifier) wait(ctx context.Context) error {
	if n.next == nil {
		return errors.New("no waitlist configured")
	}

	select {
	case err := <-n.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
