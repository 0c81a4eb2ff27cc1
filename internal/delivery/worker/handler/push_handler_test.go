package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"locgate/config"
	apimiddleware "locgate/internal/delivery/api/middleware"
	deliverycontext "locgate/internal/delivery/context"
	"locgate/internal/domain/entity"
	domainerrors "locgate/internal/domain/errors"
	"locgate/internal/domain/service"
	"locgate/internal/errors"
	"locgate/internal/infra/pubsub"
	usecasemocks "locgate/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T, cfg *config.Config) (*echo.Echo, *PushHandler, *usecasemocks.MockWaitlistRecorder) {
	t.Helper()

	if cfg == nil {
		cfg = &config.Config{}
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	recorder := usecasemocks.NewMockWaitlistRecorder(t)
	h := NewPushHandler(PushHandlerParams{Config: cfg, Logger: logger, Recorder: recorder})

	e := echo.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError
	e.POST("/push", h.HandlePush)
	e.GET("/waitlist/demand", h.Demand)

	return e, h, recorder
}

func pushBody(t *testing.T, event *service.AvailabilityRequestEvent, attrs map[string]string) string {
	t.Helper()

	msg, err := pubsub.NewPushEnvelope(event, "m-1", time.Now())
	require.NoError(t, err)
	msg.Message.Attributes = attrs

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func post(e *echo.Echo, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestHandlePush(t *testing.T) {
	event := &service.AvailabilityRequestEvent{
		WaitlistID: "3f0e5a4c-7d0b-4f4e-9a55-2b9f0c1d2e33",
		Latitude:   25.52,
		Longitude:  90.23,
		CellTopic:  "waitlist_25.5_90.2",
		RequestID:  "req-from-event",
	}

	t.Run("records and acks", func(t *testing.T) {
		e, _, recorder := newTestHandler(t, nil)
		recorder.EXPECT().Record(mock.Anything, event).
			RunAndReturn(func(ctx context.Context, _ *service.AvailabilityRequestEvent) (bool, error) {
				assert.Equal(t, "req-from-attrs", deliverycontext.GetRequestIDFromContext(ctx))

				return true, nil
			}).Once()

		rec := post(e, pushBody(t, event, map[string]string{"request_id": "req-from-attrs"}))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("duplicates are acked", func(t *testing.T) {
		e, _, recorder := newTestHandler(t, nil)
		recorder.EXPECT().Record(mock.Anything, event).Return(false, nil).Once()

		assert.Equal(t, http.StatusOK, post(e, pushBody(t, event, nil)).Code)
	})

	t.Run("malformed events are dropped", func(t *testing.T) {
		e, _, recorder := newTestHandler(t, nil)
		recorder.EXPECT().Record(mock.Anything, mock.Anything).
			Return(false, domainerrors.ErrValidationFailed.WithDetails("waitlist_id is not a uuid")).Once()

		assert.Equal(t, http.StatusOK, post(e, pushBody(t, event, nil)).Code)
	})

	t.Run("storage failures are redelivered", func(t *testing.T) {
		e, _, recorder := newTestHandler(t, nil)
		recorder.EXPECT().Record(mock.Anything, mock.Anything).
			Return(false, domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "failed to record waitlist entry")).Once()

		assert.Equal(t, http.StatusServiceUnavailable, post(e, pushBody(t, event, nil)).Code)
	})

	t.Run("undecodable payloads", func(t *testing.T) {
		e, _, _ := newTestHandler(t, nil)

		assert.Equal(t, http.StatusBadRequest, post(e, `{"message":{"data":"%%%"}}`).Code)
		assert.Equal(t, http.StatusBadRequest, post(e, `{"message":{"data":"bm90IGpzb24="}}`).Code)
	})

	t.Run("token verification", func(t *testing.T) {
		cfg := &config.Config{
			PubSub: &config.PubSubConfig{Provider: "google"},
			Worker: &config.WorkerConfig{PushAudience: "https://worker.example/push"},
		}
		e, h, recorder := newTestHandler(t, cfg)
		require.NotNil(t, h.verify)
		assert.Equal(t, "https://worker.example/push", h.audience)

		h.WithTokenVerifier(func(_ *http.Request, audience string) error {
			assert.Equal(t, "https://worker.example/push", audience)

			return errors.New("bad token")
		})
		assert.Equal(t, http.StatusUnauthorized, post(e, pushBody(t, event, nil)).Code)

		h.WithTokenVerifier(func(*http.Request, string) error { return nil })
		recorder.EXPECT().Record(mock.Anything, mock.Anything).Return(true, nil).Once()
		assert.Equal(t, http.StatusOK, post(e, pushBody(t, event, nil)).Code)
	})

	t.Run("local provider skips verification", func(t *testing.T) {
		_, h, _ := newTestHandler(t, &config.Config{PubSub: &config.PubSubConfig{Provider: "local"}})
		assert.Nil(t, h.verify)
	})
}

func TestDemand(t *testing.T) {
	t.Run("lists cells", func(t *testing.T) {
		e, _, recorder := newTestHandler(t, nil)
		recorder.EXPECT().Demand(mock.Anything, 2).
			Return([]entity.CellDemand{{CellTopic: "waitlist_25.5_90.2", Entries: 3}}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/waitlist/demand?limit=2", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"cells":[{"topic":"waitlist_25.5_90.2","entries":3}]}`, rec.Body.String())
	})

	t.Run("default and capped limit", func(t *testing.T) {
		e, _, recorder := newTestHandler(t, nil)
		recorder.EXPECT().Demand(mock.Anything, defaultDemandLimit).Return(nil, nil).Once()
		recorder.EXPECT().Demand(mock.Anything, maxDemandLimit).Return(nil, nil).Once()

		for _, path := range []string{"/waitlist/demand", "/waitlist/demand?limit=100000"} {
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, `{"cells":[]}`, rec.Body.String())
		}
	})

	t.Run("invalid limit", func(t *testing.T) {
		e, _, _ := newTestHandler(t, nil)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/waitlist/demand?limit=-1", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
	})
}
