package device

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"locgate/internal/domain/entity"
	"locgate/internal/domain/service"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScriptedProvider_PermissionDialog(t *testing.T) {
	p := NewScriptedProvider(Script{OnRequest: entity.PermissionGranted, ServiceEnabled: true}, nil)

	state, err := p.CheckPermission(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entity.PermissionDenied, state)

	state, err = p.RequestPermission(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entity.PermissionGranted, state)
	assert.Equal(t, 1, p.RequestCalls())
}

func TestScriptedProvider_DeniedForeverIsSticky(t *testing.T) {
	p := NewScriptedProvider(Script{Permission: entity.PermissionDeniedForever}, nil)

	state, err := p.RequestPermission(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entity.PermissionDeniedForever, state)
}

func TestScriptedProvider_CurrentFix(t *testing.T) {
	clock := clockwork.NewFakeClock()
	fix := &entity.LocationFix{
		Coordinates:    entity.Coordinates{Latitude: 25.514, Longitude: 90.21},
		AccuracyMeters: 12,
	}
	p := NewScriptedProvider(Script{
		Permission:     entity.PermissionGranted,
		ServiceEnabled: true,
		Fix:            fix,
	}, clock)

	got, err := p.CurrentFix(context.Background(), service.FixRequest{Accuracy: entity.AccuracyHigh})
	require.NoError(t, err)
	assert.Equal(t, entity.FixSourceGPS, got.Source)
	assert.Equal(t, clock.Now(), got.Timestamp)
	assert.Equal(t, fix.Coordinates, got.Coordinates)
	assert.Equal(t, 1, p.FixCalls())
}

func TestScriptedProvider_CurrentFixGuards(t *testing.T) {
	p := NewScriptedProvider(Script{Permission: entity.PermissionGranted}, nil)

	_, err := p.CurrentFix(context.Background(), service.FixRequest{})
	require.ErrorIs(t, err, service.ErrServiceDisabled)

	p.SetServiceEnabled(true)
	p.SetPermission(entity.PermissionDenied)
	_, err = p.CurrentFix(context.Background(), service.FixRequest{})
	require.ErrorIs(t, err, service.ErrPermissionDenied)

	p.SetPermission(entity.PermissionGranted)
	_, err = p.CurrentFix(context.Background(), service.FixRequest{})
	require.ErrorIs(t, err, service.ErrLocationUnavailable)
}

func TestScriptedProvider_FixDelayHonoursContext(t *testing.T) {
	p := NewScriptedProvider(Script{
		Permission:     entity.PermissionGranted,
		ServiceEnabled: true,
		FixDelay:       time.Hour,
	}, clockwork.NewFakeClock())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := p.CurrentFix(ctx, service.FixRequest{})
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSimulatedSettings_AppliesUserAction(t *testing.T) {
	p := NewScriptedProvider(Script{}, nil)
	s := NewSimulatedSettings(slog.New(slog.NewTextHandler(io.Discard, nil)), p)

	require.NoError(t, s.OpenLocationSettings(context.Background()))
	enabled, err := p.IsServiceEnabled(context.Background())
	require.NoError(t, err)
	assert.True(t, enabled)

	require.NoError(t, s.OpenAppSettings(context.Background()))
	state, err := p.CheckPermission(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entity.PermissionGranted, state)
}
