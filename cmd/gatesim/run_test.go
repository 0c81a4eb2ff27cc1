package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"locgate/config"
	"locgate/internal/domain/entity"
	"locgate/internal/domain/service"
	"locgate/internal/infra/geofence"
	"locgate/internal/infra/persistence/memory"
	"locgate/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	requests chan *service.AvailabilityRequest
}

func (n *recordingNotifier) RequestNotifyWhenAvailable(_ context.Context, req *service.AvailabilityRequest) error {
	n.requests <- req

	return nil
}

func newTestSimulation(t *testing.T) (*simulation, *recordingNotifier) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	clock := clockwork.NewRealClock()
	zone := &entity.DeliveryZone{
		ID:   uuid.MustParse("6d1f7c52-0b7e-4a7f-9a53-0f4f0d3b2a11"),
		Name: "Tura-Main",
		Boundary: []entity.Coordinates{
			{Latitude: 25.505, Longitude: 90.200},
			{Latitude: 25.505, Longitude: 90.220},
			{Latitude: 25.518, Longitude: 90.220},
			{Latitude: 25.518, Longitude: 90.200},
		},
		IsActive: true,
	}
	registry := geofence.NewRegistry(geofence.NewStaticSource([]*entity.DeliveryZone{zone}), 0, logger)
	_, err := registry.Reload(context.Background())
	require.NoError(t, err)

	store := memory.NewStore()
	notifier := &recordingNotifier{requests: make(chan *service.AvailabilityRequest, 1)}

	return &simulation{
		identity: entity.Identity{DeviceID: "gatesim-test"},
		zones:    registry,
		notifier: notifier,
		store:    impl.NewAddressStore(store.Addresses(), store.SetupFlags(), store.TransactionManager(), clock, logger),
		cfg: &config.Config{
			Monitor: &config.MonitorConfig{Phases: []config.PollPhase{{Interval: 20 * time.Millisecond}}},
		},
		clock:  clock,
		logger: logger,
	}, notifier
}

func defaultRun() *runCommand {
	return &runCommand{
		global:     &GlobalOptions{},
		Lat:        25.514,
		Lon:        90.21,
		Accuracy:   15,
		Permission: "denied",
		Answer:     "granted",
		Wait:       5 * time.Second,
	}
}

func TestRun_InsideZoneCompletes(t *testing.T) {
	sim, _ := newTestSimulation(t)
	var out bytes.Buffer

	require.NoError(t, defaultRun().simulate(context.Background(), sim, &out))

	assert.Contains(t, out.String(), "not_started -> permission_requesting  [initialize]")
	assert.Contains(t, out.String(), "zone_validating -> completed")
	assert.Contains(t, out.String(), "result: delivering to Tura-Main")
	assert.Contains(t, out.String(), "(first setup)")
}

func TestRun_OutsideZoneJoinsWaitlistAndViews(t *testing.T) {
	sim, notifier := newTestSimulation(t)
	cmd := defaultRun()
	cmd.Lat, cmd.Lon = 25.52, 90.23
	cmd.Notify = true
	cmd.Viewing = true
	cmd.Contact = "+91 98000 00000"
	var out bytes.Buffer

	require.NoError(t, cmd.simulate(context.Background(), sim, &out))

	select {
	case req := <-notifier.requests:
		assert.Equal(t, "+91 98000 00000", req.Contact)
		assert.Equal(t, "gatesim-test", req.Identity.DeviceID)
	default:
		require.FailNow(t, "waitlist request not sent")
	}
	assert.Contains(t, out.String(), "waitlist request recorded")
	assert.Contains(t, out.String(), "service_not_available -> viewing_mode_ready  [viewing_mode]")
}

func TestRun_ServiceEnabledLater(t *testing.T) {
	sim, _ := newTestSimulation(t)
	cmd := defaultRun()
	cmd.ServiceDisabled = true
	cmd.ServiceEnabledAfter = 50 * time.Millisecond
	var out bytes.Buffer

	require.NoError(t, cmd.simulate(context.Background(), sim, &out))

	assert.Contains(t, out.String(), "not_started -> gps_disabled")
	assert.Contains(t, out.String(), "location services switched on")
	assert.Contains(t, out.String(), "gps_disabled -> permission_requesting  [monitor]")
	assert.Contains(t, out.String(), "result: delivering to Tura-Main")
}

func TestRun_FailureWithoutRetries(t *testing.T) {
	sim, _ := newTestSimulation(t)
	cmd := defaultRun()
	cmd.FixError = "timeout"
	var out bytes.Buffer

	err := cmd.simulate(context.Background(), sim, &out)
	require.ErrorIs(t, err, errSessionFailed)
	assert.Contains(t, out.String(), "location_timeout")
}

func TestRun_PermanentDenialFollowsSettings(t *testing.T) {
	sim, _ := newTestSimulation(t)
	cmd := defaultRun()
	cmd.Permission = "denied_forever"
	cmd.Answer = "denied_forever"
	cmd.FollowRemedy = true
	var out bytes.Buffer

	require.NoError(t, cmd.simulate(context.Background(), sim, &out))
	assert.Contains(t, out.String(), "permission_permanently_denied")
	assert.Contains(t, out.String(), "result: delivering to Tura-Main")
}

func TestManual_ValidatesAndSaves(t *testing.T) {
	sim, _ := newTestSimulation(t)
	lat, lon := 25.514, 90.21
	cmd := &manualCommand{global: &GlobalOptions{}, Lat: &lat, Lon: &lon, Label: "home"}
	coords := entity.Coordinates{Latitude: lat, Longitude: lon}
	var out bytes.Buffer

	require.NoError(t, cmd.validate(context.Background(), sim, &entity.SavedAddress{
		Lines:       []string{"Main Bazaar"},
		Coordinates: &coords,
	}, &out))

	assert.Contains(t, out.String(), "[manual]")
	assert.Contains(t, out.String(), "manual_search")
	assert.Contains(t, out.String(), "as home (default: true)")

	addresses, err := sim.store.GetAddresses(context.Background(), sim.identity)
	require.NoError(t, err)
	require.Len(t, addresses, 1)
}
