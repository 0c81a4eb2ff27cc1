package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestValidRequestID(t *testing.T) {
	assert.True(t, ValidRequestID("req-1"))
	assert.True(t, ValidRequestID("3f0e5a4c-7d0b-4f4e-9a55-2b9f0c1d2e33"))
	assert.False(t, ValidRequestID(""))
	assert.False(t, ValidRequestID("has space"))
	assert.False(t, ValidRequestID("line\nbreak"))
	assert.False(t, ValidRequestID("ünicode"))
	assert.False(t, ValidRequestID(strings.Repeat("a", MaxRequestIDLength+1)))
}

func TestWithRequestScope(t *testing.T) {
	base := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx, logger := WithRequestScope(context.Background(), base, "req-1")
	assert.Equal(t, "req-1", GetRequestIDFromContext(ctx))
	assert.Same(t, logger, GetLoggerOrDefault(ctx, base))
	assert.Same(t, base, GetLoggerOrDefault(context.Background(), base))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
}

func TestGetRequestID(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.Len(t, GetRequestID(c), 36)

	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", GetRequestID(c))
}
