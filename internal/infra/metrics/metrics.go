// Package metrics exposes Prometheus collectors for gating outcomes, zone
// lookups and HTTP traffic.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"locgate/internal/domain/entity"
	"locgate/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "locgate"

// Metrics owns a dedicated registry; nothing is registered globally.
type Metrics struct {
	Registry *prometheus.Registry

	transitions  *prometheus.CounterVec
	outcomes     *prometheus.CounterVec
	zoneLookups  *prometheus.HistogramVec
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// New creates and registers all collectors, plus Go and process collectors.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "gating_transitions_total",
				Help:      "Gating transitions by target status and trigger.",
			},
			[]string{"to", "trigger"},
		),
		outcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "gating_outcomes_total",
				Help:      "Resting gating outcomes by status and failure kind.",
			},
			[]string{"status", "failure"},
		),
		zoneLookups: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "zone_lookup_duration_seconds",
				Help:      "Zone lookup latency by outcome.",
				Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
			},
			[]string{"outcome"},
		),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total HTTP requests.",
			},
			[]string{"method", "path", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
	}

	m.Registry.MustRegister(
		m.transitions,
		m.outcomes,
		m.zoneLookups,
		m.httpRequests,
		m.httpDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// OnTransition counts a gating transition. Failed, terminal and GpsDisabled
// targets also count as outcomes.
func (m *Metrics) OnTransition(event entity.TransitionEvent) {
	m.transitions.WithLabelValues(event.To.String(), event.Trigger.String()).Inc()

	if !event.To.IsTerminal() && event.To != entity.StatusFailed && event.To != entity.StatusGpsDisabled {
		return
	}
	failure := ""
	if event.State.Failure != nil {
		failure = event.State.Failure.Kind.String()
	}
	m.outcomes.WithLabelValues(event.To.String(), failure).Inc()
}

// ObserveZoneLookup records the latency of one zone lookup.
func (m *Metrics) ObserveZoneLookup(outcome string, elapsed time.Duration) {
	m.zoneLookups.WithLabelValues(outcome).Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}

// Middleware records request counts and latency by route template.
func (m *Metrics) Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		status := c.Response().Status
		var httpErr *echo.HTTPError
		if err != nil && status < http.StatusBadRequest {
			status = http.StatusInternalServerError
			if errors.As(err, &httpErr) {
				status = httpErr.Code
			}
		}

		path := c.Path()
		if path == "" {
			path = "unmatched"
		}
		labels := []string{c.Request().Method, path, strconv.Itoa(status)}
		m.httpRequests.WithLabelValues(labels...).Inc()
		m.httpDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())

		return err
	}
}
