package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"locgate/config"
	"locgate/internal/domain/entity"
	"locgate/internal/domain/service"
	"locgate/internal/infra/device"
	"locgate/internal/infra/geofence"
	servicemocks "locgate/internal/mocks/service"
	usecasemocks "locgate/internal/mocks/usecase"
	"locgate/internal/usecase"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	turaMainID = uuid.MustParse("6d1f7c52-0b7e-4a7f-9a53-0f4f0d3b2a11")

	scenarioInside  = entity.Coordinates{Latitude: 25.5140, Longitude: 90.2100}
	scenarioOutside = entity.Coordinates{Latitude: 25.5200, Longitude: 90.2300}
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func turaMainZone() *entity.DeliveryZone {
	return &entity.DeliveryZone{
		ID:     turaMainID,
		Name:   "Tura-Main",
		Region: "West Garo Hills",
		Boundary: []entity.Coordinates{
			{Latitude: 25.505, Longitude: 90.200},
			{Latitude: 25.505, Longitude: 90.220},
			{Latitude: 25.518, Longitude: 90.220},
			{Latitude: 25.518, Longitude: 90.200},
		},
		IsActive: true,
	}
}

func newTuraRegistry(t *testing.T) *geofence.Registry {
	t.Helper()

	registry := geofence.NewRegistry(geofence.NewStaticSource([]*entity.DeliveryZone{turaMainZone()}), 0, newDiscardLogger())
	_, err := registry.Reload(context.Background())
	require.NoError(t, err)

	return registry
}

func gpsFix(coords entity.Coordinates, accuracy float64) *entity.LocationFix {
	return &entity.LocationFix{Coordinates: coords, AccuracyMeters: accuracy}
}

// grantedScript is a device with location on that grants permission on request.
func grantedScript(fix *entity.LocationFix) device.Script {
	return device.Script{
		Permission:     entity.PermissionDenied,
		OnRequest:      entity.PermissionGranted,
		ServiceEnabled: true,
		Fix:            fix,
	}
}

type eventRecorder struct {
	mu     sync.Mutex
	events []entity.TransitionEvent
}

func (r *eventRecorder) OnTransition(event entity.TransitionEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *eventRecorder) Events() []entity.TransitionEvent {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]entity.TransitionEvent(nil), r.events...)
}

func (r *eventRecorder) Path() []entity.GatingStatus {
	events := r.Events()
	path := make([]entity.GatingStatus, 0, len(events))
	for _, event := range events {
		path = append(path, event.To)
	}

	return path
}

func (r *eventRecorder) Count(to entity.GatingStatus) int {
	count := 0
	for _, event := range r.Events() {
		if event.To == to {
			count++
		}
	}

	return count
}

type engineFixture struct {
	engine   usecase.GatingEngine
	provider *device.ScriptedProvider
	store    *usecasemocks.MockAddressStore
	settings *servicemocks.MockSettingsOpener
	clock    *clockwork.FakeClock
	events   *eventRecorder
}

type fixtureOption func(*GatingEngineParams)

func withZones(zones service.ZoneRegistry) fixtureOption {
	return func(p *GatingEngineParams) { p.Zones = zones }
}

func withNotifier(notifier service.AvailabilityNotifier) fixtureOption {
	return func(p *GatingEngineParams) { p.Notifier = notifier }
}

func withGatingConfig(cfg *config.GatingConfig) fixtureOption {
	return func(p *GatingEngineParams) { p.Config = cfg }
}

func newEngineFixture(t *testing.T, script device.Script, opts ...fixtureOption) *engineFixture {
	t.Helper()

	clock := clockwork.NewFakeClock()
	fx := &engineFixture{
		provider: device.NewScriptedProvider(script, clock),
		store:    usecasemocks.NewMockAddressStore(t),
		settings: servicemocks.NewMockSettingsOpener(t),
		clock:    clock,
		events:   &eventRecorder{},
	}

	params := GatingEngineParams{
		Identity:  entity.Identity{DeviceID: "device-1"},
		Provider:  fx.provider,
		Zones:     newTuraRegistry(t),
		Store:     fx.store,
		Settings:  fx.settings,
		Clock:     clock,
		Logger:    newDiscardLogger(),
		Observers: []usecase.GatingObserver{fx.events},
	}
	for _, opt := range opts {
		opt(&params)
	}

	fx.engine = NewGatingEngine(params)
	t.Cleanup(func() { _ = fx.engine.Close() })

	return fx
}

func (fx *engineFixture) expectFlagRead(completed bool) {
	fx.store.EXPECT().IsSetupCompleted(mock.Anything, entity.Identity{DeviceID: "device-1"}).Return(completed, nil)
}

// expectFlagWrite expects the setup flag to be written exactly once.
func (fx *engineFixture) expectFlagWrite() {
	fx.store.EXPECT().MarkSetupCompleted(mock.Anything, entity.Identity{DeviceID: "device-1"}).Return(nil).Once()
}
