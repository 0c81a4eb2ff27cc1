package impl

import (
	"context"
	"log/slog"
	"sync"

	"locgate/config"
	"locgate/internal/domain/entity"
	"locgate/internal/domain/service"
	"locgate/internal/errors"
	"locgate/internal/usecase"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// GatingEngineParams holds the collaborators of one gating engine.
type GatingEngineParams struct {
	Identity  entity.Identity
	Provider  service.LocationProvider
	Zones     service.ZoneRegistry
	Store     usecase.AddressStore
	Settings  service.SettingsOpener
	Notifier  service.AvailabilityNotifier // optional
	Monitor   *ServiceMonitor              // optional, defaults to the standard schedule
	Clock     clockwork.Clock              // optional
	Config    *config.GatingConfig         // optional, zero fields use defaults
	Logger    *slog.Logger
	Observers []usecase.GatingObserver
}

type gatingEngine struct {
	cfg      config.GatingConfig
	identity entity.Identity
	provider service.LocationProvider
	zones    service.ZoneRegistry
	store    usecase.AddressStore
	settings service.SettingsOpener
	notifier service.AvailabilityNotifier
	monitor  *ServiceMonitor
	clock    clockwork.Clock
	logger   *slog.Logger

	mu           sync.Mutex
	state        entity.GatingState
	session      *gatingSession
	closed       bool
	flagWritten  bool
	lastSession  uint64
	lastFlow     uint64
	observers    map[int]usecase.GatingObserver
	lastObserver int
	pending      []entity.TransitionEvent

	emitMu sync.Mutex
}

// NewGatingEngine creates an engine for one identity. It owns no goroutines
// until Initialize is called.
func NewGatingEngine(params GatingEngineParams) usecase.GatingEngine {
	clock := params.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("component", "gating"), slog.String("identity", params.Identity.Key()))

	monitor := params.Monitor
	if monitor == nil {
		monitor = NewServiceMonitor(nil, clock, logger)
	}

	e := &gatingEngine{
		cfg:       params.Config.Normalized(),
		identity:  params.Identity,
		provider:  params.Provider,
		zones:     params.Zones,
		store:     params.Store,
		settings:  params.Settings,
		notifier:  params.Notifier,
		monitor:   monitor,
		clock:     clock,
		logger:    logger,
		state:     entity.GatingState{Status: entity.StatusNotStarted},
		observers: make(map[int]usecase.GatingObserver),
	}
	for _, observer := range params.Observers {
		e.Subscribe(observer)
	}

	return e
}

// Initialize starts a new session and drives it until it rests.
func (e *gatingEngine) Initialize(ctx context.Context) error {
	if _, err := e.startSession(ctx, entity.TriggerInitialize, false); err != nil {
		return err
	}

	f, err := e.beginFlow(ctx, entity.TriggerInitialize)
	if err != nil {
		return err
	}
	defer e.endFlow(f)

	e.drive(f)

	return ctx.Err()
}

// RequestPermission asks for permission from NotStarted or GpsDisabled.
func (e *gatingEngine) RequestPermission(ctx context.Context) error {
	f, err := e.beginFlow(ctx, entity.TriggerPermission)
	if err != nil {
		return err
	}
	defer e.endFlow(f)

	status := e.State().Status
	switch status {
	case entity.StatusNotStarted:
	case entity.StatusGpsDisabled:
		enabled, err := e.serviceEnabled(f.ctx)
		if err != nil || !enabled {
			// still off: stay in GpsDisabled, the monitor keeps watching
			return ctx.Err()
		}
	default:
		return usecase.ErrInvalidTransition
	}

	e.requestPermission(f, status)

	return ctx.Err()
}

// ValidateManualAddress validates a user-chosen location without permission or GPS.
func (e *gatingEngine) ValidateManualAddress(ctx context.Context, address *entity.SavedAddress, coords entity.Coordinates) error {
	if err := coords.Validate(); err != nil {
		return err
	}

	if !e.hasSession() {
		if _, err := e.startSession(ctx, entity.TriggerManual, false); err != nil {
			return err
		}
	}

	f, err := e.beginFlow(ctx, entity.TriggerManual)
	if err != nil {
		return err
	}
	defer e.endFlow(f)

	source := entity.FixSourceManualSearch
	if address != nil && address.ID != uuid.Nil {
		source = entity.FixSourceSavedAddress
	}
	fix := &entity.LocationFix{
		Coordinates: coords,
		Source:      source,
		Timestamp:   e.clock.Now(),
	}

	if err := e.takeOver(f, fix, address); err != nil {
		return err
	}

	e.validateZone(f, fix, address)

	return ctx.Err()
}

// Retry restarts a failed session from the beginning.
func (e *gatingEngine) Retry(ctx context.Context) error {
	if _, err := e.startSession(ctx, entity.TriggerRetry, true); err != nil {
		return err
	}

	f, err := e.beginFlow(ctx, entity.TriggerRetry)
	if err != nil {
		return err
	}
	defer e.endFlow(f)

	e.drive(f)

	return ctx.Err()
}

// OpenAppSettings opens the app permission screen. The permission monitor
// notices when access is granted.
func (e *gatingEngine) OpenAppSettings(ctx context.Context) error {
	if err := e.ensureOpen(); err != nil {
		return err
	}

	_, err := callBounded(ctx, e.cfg.PlatformTimeout, func(callCtx context.Context) (struct{}, error) {
		return struct{}{}, e.settings.OpenAppSettings(callCtx)
	})
	if err != nil {
		return errors.Wrap(err, "open app settings")
	}

	return nil
}

// OpenLocationSettings opens the OS location screen. The service monitor
// notices when location is switched on.
func (e *gatingEngine) OpenLocationSettings(ctx context.Context) error {
	if err := e.ensureOpen(); err != nil {
		return err
	}

	_, err := callBounded(ctx, e.cfg.PlatformTimeout, func(callCtx context.Context) (struct{}, error) {
		return struct{}{}, e.settings.OpenLocationSettings(callCtx)
	})
	if err != nil {
		return errors.Wrap(err, "open location settings")
	}

	return nil
}

// EnterViewingMode moves ServiceNotAvailable to ViewingModeReady.
func (e *gatingEngine) EnterViewingMode(ctx context.Context) error {
	f, err := e.beginFlow(ctx, entity.TriggerViewing)
	if err != nil {
		return err
	}
	defer e.endFlow(f)

	if !e.apply(f, entity.StatusServiceNotAvailable, entity.StatusViewingModeReady, nil) {
		return usecase.ErrInvalidTransition
	}

	return nil
}

// AppResumed asks a running monitor to probe now.
func (e *gatingEngine) AppResumed() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.session != nil && e.session.watch != nil {
		e.session.watch.Resume()
	}
}

// RequestNotifyWhenAvailable records a waitlist request without touching state.
func (e *gatingEngine) RequestNotifyWhenAvailable(ctx context.Context, input usecase.NotifyInput) error {
	if err := e.ensureOpen(); err != nil {
		return err
	}

	state := e.State()
	if state.Fix == nil {
		return usecase.ErrNoLocation
	}
	if e.notifier == nil {
		e.logger.Warn("Availability request dropped, no notifier configured")

		return nil
	}

	req := &service.AvailabilityRequest{
		Coordinates: state.Fix.Coordinates,
		Identity:    e.identity,
		PushToken:   input.PushToken,
		Contact:     input.Contact,
	}

	bgCtx := context.WithoutCancel(ctx)
	go func() {
		_, err := callBounded(bgCtx, e.cfg.NotifyTimeout, func(callCtx context.Context) (struct{}, error) {
			return struct{}{}, e.notifier.RequestNotifyWhenAvailable(callCtx, req)
		})
		if err != nil {
			e.logger.Warn("Availability request failed",
				slog.String("coordinates", req.Coordinates.String()),
				slog.Any("error", err),
			)

			return
		}
		e.logger.Info("Availability request recorded", slog.String("coordinates", req.Coordinates.String()))
	}()

	return nil
}

// State returns a copy of the current state.
func (e *gatingEngine) State() entity.GatingState {
	e.mu.Lock()
	defer e.mu.Unlock()

	return snapshot(e.state)
}

// Subscribe adds an observer; events are delivered in transition order.
func (e *gatingEngine) Subscribe(observer usecase.GatingObserver) func() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.lastObserver++
	id := e.lastObserver
	e.observers[id] = observer

	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		delete(e.observers, id)
	}
}

// Close cancels the session. Later calls return ErrEngineClosed.
func (e *gatingEngine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return nil
	}
	e.closed = true
	if e.session != nil {
		e.session.cancel()
	}

	return nil
}

func (e *gatingEngine) ensureOpen() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return usecase.ErrEngineClosed
	}

	return nil
}

func (e *gatingEngine) hasSession() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.session != nil
}

func snapshot(state entity.GatingState) entity.GatingState {
	if state.Failure != nil {
		failure := *state.Failure
		state.Failure = &failure
	}
	if state.Fix != nil {
		fix := *state.Fix
		state.Fix = &fix
	}
	if state.Zone != nil {
		zone := *state.Zone
		state.Zone = &zone
	}
	if state.Address != nil {
		address := *state.Address
		state.Address = &address
	}

	return state
}
