package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apimiddleware "locgate/internal/delivery/api/middleware"
	"locgate/internal/delivery/api/validator"
	"locgate/internal/domain/entity"
	domainerrors "locgate/internal/domain/errors"
	"locgate/internal/domain/service"
	usecasemocks "locgate/internal/mocks/usecase"
	"locgate/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
}

func newTestEcho() *echo.Echo {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError

	return e
}

func doJSON(t *testing.T, e *echo.Echo, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return rec, env
}

var testZone = &entity.DeliveryZone{
	ID:     uuid.MustParse("7b0c2a3e-6a57-4c1c-9d1e-1d2f5c3b4a01"),
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

func newZoneTestServer(t *testing.T) (*echo.Echo, *usecasemocks.MockZoneUsecase) {
	t.Helper()

	zoneUC := usecasemocks.NewMockZoneUsecase(t)
	h := NewZoneHandler(ZoneHandlerParams{ZoneUC: zoneUC, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
	e := newTestEcho()
	e.POST("/api/v1/zones/detect", h.Detect)
	e.GET("/api/v1/zones", h.List)
	e.POST("/api/v1/zones/reload", h.Reload)

	return e, zoneUC
}

func TestZoneHandler_Detect(t *testing.T) {
	t.Run("inside a zone", func(t *testing.T) {
		e, zoneUC := newZoneTestServer(t)
		zoneUC.EXPECT().Detect(mock.Anything, entity.Coordinates{Latitude: 25.514, Longitude: 90.21}).
			Return(entity.InZoneResult(testZone), nil).Once()

		rec, env := doJSON(t, e, http.MethodPost, "/api/v1/zones/detect", `{"latitude":25.514,"longitude":90.21}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp DetectResponse
		require.NoError(t, json.Unmarshal(env.Data, &resp))
		assert.True(t, resp.InZone)
		require.NotNil(t, resp.Zone)
		assert.Equal(t, "Tura-Main", resp.Zone.Name)
		assert.Len(t, resp.Zone.Boundary, 4)
	})

	t.Run("outside every zone", func(t *testing.T) {
		e, zoneUC := newZoneTestServer(t)
		zoneUC.EXPECT().Detect(mock.Anything, mock.Anything).Return(entity.NotInZone(), nil).Once()

		rec, env := doJSON(t, e, http.MethodPost, "/api/v1/zones/detect", `{"latitude":25.52,"longitude":90.23}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"in_zone":false}`, string(env.Data))
	})

	t.Run("zero is a valid coordinate", func(t *testing.T) {
		e, zoneUC := newZoneTestServer(t)
		zoneUC.EXPECT().Detect(mock.Anything, entity.Coordinates{}).Return(entity.NotInZone(), nil).Once()

		rec, _ := doJSON(t, e, http.MethodPost, "/api/v1/zones/detect", `{"latitude":0,"longitude":0}`)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing or out of range fields", func(t *testing.T) {
		e, _ := newZoneTestServer(t)

		rec, env := doJSON(t, e, http.MethodPost, "/api/v1/zones/detect", `{"latitude":91}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
		assert.Equal(t, map[string]any{"latitude": "lte", "longitude": "required"}, env.Error.Details)
	})

	t.Run("malformed body", func(t *testing.T) {
		e, _ := newZoneTestServer(t)

		rec, env := doJSON(t, e, http.MethodPost, "/api/v1/zones/detect", `{"latitude":`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_INPUT", env.Error.Code)
	})

	t.Run("lookup failure hides details", func(t *testing.T) {
		e, zoneUC := newZoneTestServer(t)
		zoneUC.EXPECT().Detect(mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrZoneLookupFailed.WithDetails("registry not loaded")).Once()

		rec, env := doJSON(t, e, http.MethodPost, "/api/v1/zones/detect", `{"latitude":25.5,"longitude":90.2}`)
		require.GreaterOrEqual(t, rec.Code, http.StatusInternalServerError)
		require.NotNil(t, env.Error)
		assert.Equal(t, domainerrors.ErrZoneLookupFailed.ErrorCode(), env.Error.Code)
		assert.Nil(t, env.Error.Details)
	})
}

func TestZoneHandler_ListAndReload(t *testing.T) {
	e, zoneUC := newZoneTestServer(t)
	zoneUC.EXPECT().ListZones(mock.Anything).Return([]usecase.ZoneSummary{{
		ID:       testZone.ID.String(),
		Name:     "Tura-Main",
		Vertices: 4,
		Bound:    [4]float64{90.2, 25.505, 90.22, 25.518},
	}}, nil).Once()
	zoneUC.EXPECT().Reload(mock.Anything).Return(3, nil).Once()

	rec, env := doJSON(t, e, http.MethodGet, "/api/v1/zones", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var zones []usecase.ZoneSummary
	require.NoError(t, json.Unmarshal(env.Data, &zones))
	require.Len(t, zones, 1)
	assert.Equal(t, "Tura-Main", zones[0].Name)

	rec, env = doJSON(t, e, http.MethodPost, "/api/v1/zones/reload", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"zones":3}`, string(env.Data))
}

func newWaitlistTestServer(t *testing.T) (*echo.Echo, *usecasemocks.MockWaitlistUsecase) {
	t.Helper()

	waitlistUC := usecasemocks.NewMockWaitlistUsecase(t)
	h := NewWaitlistHandler(WaitlistHandlerParams{WaitlistUC: waitlistUC, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
	e := newTestEcho()
	e.POST("/api/v1/waitlist", h.Join)

	return e, waitlistUC
}

func TestWaitlistHandler_Join(t *testing.T) {
	userID := uuid.MustParse("0c6a4e1e-7d4b-4a53-8f57-5df6e0b7c001")

	t.Run("accepted", func(t *testing.T) {
		e, waitlistUC := newWaitlistTestServer(t)
		waitlistUC.EXPECT().Join(mock.Anything, &service.AvailabilityRequest{
			Coordinates: entity.Coordinates{Latitude: 25.52, Longitude: 90.23},
			Identity:    entity.Identity{UserID: &userID, DeviceID: "device-1"},
			PushToken:   "fcm-token",
			Contact:     "+91 98000 00000",
		}).Return(&usecase.WaitlistReceipt{WaitlistID: "w-1", Topic: "waitlist_25.5_90.2"}, nil).Once()

		rec, env := doJSON(t, e, http.MethodPost, "/api/v1/waitlist", `{
			"latitude": 25.52, "longitude": 90.23,
			"device_id": "device-1", "user_id": "`+userID.String()+`",
			"fcm_token": "fcm-token", "contact": "+91 98000 00000"
		}`)
		require.Equal(t, http.StatusAccepted, rec.Code)
		assert.JSONEq(t, `{"waitlist_id":"w-1","topic":"waitlist_25.5_90.2"}`, string(env.Data))
	})

	t.Run("already serviceable", func(t *testing.T) {
		e, waitlistUC := newWaitlistTestServer(t)
		waitlistUC.EXPECT().Join(mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrAlreadyServiceable.WithDetails("Tura-Main")).Once()

		rec, env := doJSON(t, e, http.MethodPost, "/api/v1/waitlist", `{"latitude":25.514,"longitude":90.21,"device_id":"d"}`)
		require.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, domainerrors.ErrAlreadyServiceable.ErrorCode(), env.Error.Code)
		assert.Equal(t, "Tura-Main", env.Error.Details)
	})

	t.Run("invalid user id", func(t *testing.T) {
		e, _ := newWaitlistTestServer(t)

		rec, env := doJSON(t, e, http.MethodPost, "/api/v1/waitlist", `{"latitude":25.52,"longitude":90.23,"user_id":"nope"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, map[string]any{"user_id": "uuid"}, env.Error.Details)
	})
}

func TestHealthCheck(t *testing.T) {
	e := newTestEcho()
	e.GET("/health", HealthCheck)

	rec, env := doJSON(t, e, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))
}
