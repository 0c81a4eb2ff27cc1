package zoneclient

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"locgate/config"
	deliverycontext "locgate/internal/delivery/context"
	"locgate/internal/domain/entity"
	domainerrors "locgate/internal/domain/errors"
	"locgate/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const turaDetectResponse = `{
  "data": {
    "in_zone": true,
    "zone": {
      "id": "6d1f7c52-0b7e-4a7f-9a53-0f4f0d3b2a11",
      "name": "Tura-Main",
      "region": "West Garo Hills",
      "boundary": [
        {"latitude": 25.505, "longitude": 90.200},
        {"latitude": 25.505, "longitude": 90.220},
        {"latitude": 25.518, "longitude": 90.220}
      ]
    }
  },
  "meta": {"request_id": "req-1"}
}`

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New(&config.ZoneServiceConfig{BaseURL: server.URL + "/", Timeout: time.Second}, newDiscardLogger())
	require.NoError(t, err)

	return client
}

func TestNew_RequiresBaseURL(t *testing.T) {
	_, err := New(nil, newDiscardLogger())
	require.Error(t, err)

	_, err = New(&config.ZoneServiceConfig{BaseURL: " "}, newDiscardLogger())
	require.Error(t, err)
}

func TestClient_Detect(t *testing.T) {
	t.Run("in zone", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, detectPath, r.URL.Path)
			assert.Equal(t, "req-1", r.Header.Get(deliverycontext.HeaderXRequestID))

			var body coordinatesBody
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, 25.514, body.Latitude)

			_, _ = io.WriteString(w, turaDetectResponse)
		})

		ctx := deliverycontext.WithRequestID(context.Background(), "req-1")
		result, err := client.Detect(ctx, entity.Coordinates{Latitude: 25.514, Longitude: 90.21})
		require.NoError(t, err)
		require.True(t, result.InZone)
		assert.Equal(t, "Tura-Main", result.Zone.Name)
		assert.Equal(t, "6d1f7c52-0b7e-4a7f-9a53-0f4f0d3b2a11", result.Zone.ID.String())
		assert.Len(t, result.Zone.Boundary, 3)
	})

	t.Run("not in zone", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = io.WriteString(w, `{"data":{"in_zone":false},"meta":{"request_id":"x"}}`)
		})

		result, err := client.Detect(context.Background(), entity.Coordinates{Latitude: 25.52, Longitude: 90.23})
		require.NoError(t, err)
		assert.False(t, result.InZone)
	})

	t.Run("server error is a lookup failure", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = io.WriteString(w, `{"error":{"code":"ZONE_LOOKUP_FAILED","message":"down"},"meta":{"request_id":"x"}}`)
		})

		_, err := client.Detect(context.Background(), entity.Coordinates{Latitude: 25.52, Longitude: 90.23})
		require.ErrorIs(t, err, service.ErrZoneLookup)
	})

	t.Run("garbage body is a lookup failure", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = io.WriteString(w, `<html>bad gateway</html>`)
		})

		_, err := client.Detect(context.Background(), entity.Coordinates{Latitude: 25.52, Longitude: 90.23})
		require.ErrorIs(t, err, service.ErrZoneLookup)
	})

	t.Run("unreachable server is a lookup failure", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		server.Close()
		client, err := New(&config.ZoneServiceConfig{BaseURL: server.URL}, newDiscardLogger())
		require.NoError(t, err)

		_, err = client.Detect(context.Background(), entity.Coordinates{Latitude: 25.52, Longitude: 90.23})
		require.ErrorIs(t, err, service.ErrZoneLookup)
	})

	t.Run("invalid coordinates never leave the process", func(t *testing.T) {
		client := newTestClient(t, func(http.ResponseWriter, *http.Request) {
			t.Error("unexpected request")
		})

		_, err := client.Detect(context.Background(), entity.Coordinates{Latitude: 100})
		require.ErrorIs(t, err, domainerrors.ErrInvalidCoordinates)
	})
}

func TestClient_RequestNotifyWhenAvailable(t *testing.T) {
	t.Run("accepted", func(t *testing.T) {
		var got waitlistBody
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, waitlistPath, r.URL.Path)
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.WriteHeader(http.StatusAccepted)
			_, _ = io.WriteString(w, `{"data":{"waitlist_id":"w-1","topic":"waitlist_25.5_90.2"},"meta":{"request_id":"x"}}`)
		})

		err := client.RequestNotifyWhenAvailable(context.Background(), &service.AvailabilityRequest{
			Coordinates: entity.Coordinates{Latitude: 25.52, Longitude: 90.23},
			Identity:    entity.Identity{DeviceID: "device-1"},
			PushToken:   "fcm-token",
		})
		require.NoError(t, err)
		assert.Equal(t, "device-1", got.DeviceID)
		assert.Equal(t, "fcm-token", got.FCMToken)
		assert.Empty(t, got.UserID)
	})

	t.Run("already serviceable", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusConflict)
			_, _ = io.WriteString(w, `{"error":{"code":"ALREADY_SERVICEABLE","message":"in zone"},"meta":{"request_id":"x"}}`)
		})

		err := client.RequestNotifyWhenAvailable(context.Background(), &service.AvailabilityRequest{
			Coordinates: entity.Coordinates{Latitude: 25.514, Longitude: 90.21},
			Identity:    entity.Identity{DeviceID: "device-1"},
		})
		require.ErrorIs(t, err, domainerrors.ErrAlreadyServiceable)
	})
}
