package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"locgate/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_OnTransition(t *testing.T) {
	m := New()

	m.OnTransition(entity.TransitionEvent{
		From:    entity.StatusNotStarted,
		To:      entity.StatusPermissionRequesting,
		Trigger: entity.TriggerInitialize,
	})
	m.OnTransition(entity.TransitionEvent{
		From:    entity.StatusLocationDetecting,
		To:      entity.StatusFailed,
		Trigger: entity.TriggerInitialize,
		State: entity.GatingState{
			Status:  entity.StatusFailed,
			Failure: &entity.Failure{Kind: entity.FailureLocationTimeout},
		},
	})
	m.OnTransition(entity.TransitionEvent{
		From:    entity.StatusZoneValidating,
		To:      entity.StatusCompleted,
		Trigger: entity.TriggerRetry,
	})

	assert.InDelta(t, 1, testutil.ToFloat64(m.transitions.WithLabelValues("permission_requesting", "initialize")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.transitions.WithLabelValues("completed", "retry")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.outcomes.WithLabelValues("failed", "location_timeout")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.outcomes.WithLabelValues("completed", "")), 0)
	assert.Equal(t, 2, testutil.CollectAndCount(m.outcomes))
}

func TestMetrics_ObserveZoneLookup(t *testing.T) {
	m := New()

	m.ObserveZoneLookup("in_zone", 2*time.Millisecond)
	m.ObserveZoneLookup("in_zone", 3*time.Millisecond)
	m.ObserveZoneLookup("error", time.Second)

	assert.Equal(t, 2, testutil.CollectAndCount(m.zoneLookups))
}

func TestMetrics_MiddlewareAndHandler(t *testing.T) {
	m := New()
	e := echo.New()
	e.Use(m.Middleware)
	e.GET("/api/v1/zones", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	e.GET("/boom", func(echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "short and stout")
	})

	for _, path := range []string{"/api/v1/zones", "/api/v1/zones", "/boom"} {
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.InDelta(t, 2, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/api/v1/zones", "200")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/boom", "418")), 0)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, "locgate_http_requests_total"))
	assert.True(t, strings.Contains(body, "go_goroutines"))
}
