package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"locgate/config"
	deliverycontext "locgate/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(buf *bytes.Buffer, debug bool, seen *string) *echo.Echo {
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)
	e.GET("/health", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	e.GET("/zones/:id", func(c echo.Context) error {
		*seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())

		return echo.NewHTTPError(http.StatusNotFound, "no such zone")
	})

	return e
}

func serve(e *echo.Echo, path, requestID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if requestID != "" {
		req.Header.Set(echo.HeaderXRequestID, requestID)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestRequestIDMiddleware(t *testing.T) {
	var buf bytes.Buffer
	var seen string
	e := newTestEcho(&buf, false, &seen)

	rec := serve(e, "/health", "req-42")
	assert.Equal(t, "req-42", rec.Header().Get(echo.HeaderXRequestID))

	rec = serve(e, "/health", "bad id with spaces")
	generated := rec.Header().Get(echo.HeaderXRequestID)
	assert.NotEqual(t, "bad id with spaces", generated)
	assert.Len(t, generated, 36)

	rec = serve(e, "/health", strings.Repeat("a", deliverycontext.MaxRequestIDLength+1))
	assert.Len(t, rec.Header().Get(echo.HeaderXRequestID), 36)

	serve(e, "/zones/tura", "req-ctx")
	assert.Equal(t, "req-ctx", seen)

	assert.Empty(t, buf.String(), "logging is off without env.debug")
}

func TestLoggerMiddleware_Levels(t *testing.T) {
	var buf bytes.Buffer
	var seen string
	e := newTestEcho(&buf, true, &seen)

	serve(e, "/health", "req-probe")
	require.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "route=/health")
	buf.Reset()

	serve(e, "/zones/tura", "req-miss")
	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "request_id=req-miss")
	assert.Contains(t, out, "route=/zones/:id")
	assert.Contains(t, out, "uri=/zones/tura")
	assert.Contains(t, out, "status=404")
}
