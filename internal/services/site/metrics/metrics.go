// Package metrics exposes the site's Prometheus metrics.
package metrics

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/lazyeholdings/site/internal/services/site/selection"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the site collectors and the registry they are exported from.
// A nil *Metrics records nothing.
type Metrics struct {
	toggles        *prometheus.CounterVec
	visits         *prometheus.CounterVec
	sessionsActive prometheus.Gauge
	httpRequests   *prometheus.CounterVec

	// ventures bounds the venture label; nil accepts any id.
	ventures map[string]struct{}
	registry *prometheus.Registry
}

// otherVenture labels toggles of ids outside the catalog.
const otherVenture = "other"

// New creates the collectors on a private registry, alongside the Go runtime
// and process collectors. When ventureIDs is non-empty, any other id is
// recorded under the "other" venture label.
func New(ventureIDs ...string) *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		toggles: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "site_venture_toggles_total",
				Help: "Venture card toggles by venture and resulting transition",
			},
			[]string{"venture", "transition"},
		),
		visits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "site_venture_visits_total",
				Help: "Visit-site redirects by venture",
			},
			[]string{"venture"},
		),
		sessionsActive: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "site_sessions_active",
				Help: "Browser sessions currently holding a venture selection",
			},
		),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "site_http_requests_total",
				Help: "HTTP requests by matched route pattern and status code",
			},
			[]string{"route", "code"},
		),
		registry: registry,
	}
	if len(ventureIDs) > 0 {
		m.ventures = make(map[string]struct{}, len(ventureIDs))
		for _, id := range ventureIDs {
			m.ventures[id] = struct{}{}
		}
	}

	registry.MustRegister(
		m.toggles,
		m.visits,
		m.sessionsActive,
		m.httpRequests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveChange records a selection toggle. It has the selection.Observer
// signature so it can be attached to every session controller.
func (m *Metrics) ObserveChange(change selection.Change) {
	if m == nil {
		return
	}
	m.toggles.WithLabelValues(m.ventureLabel(change.Toggled), change.Transition()).Inc()
}

// RecordVisit counts a visit-site redirect.
func (m *Metrics) RecordVisit(ventureID string) {
	if m == nil {
		return
	}
	m.visits.WithLabelValues(m.ventureLabel(ventureID)).Inc()
}

func (m *Metrics) ventureLabel(id string) string {
	if m.ventures == nil {
		return id
	}
	if _, ok := m.ventures[id]; ok {
		return id
	}
	return otherVenture
}

// SetSessions sets the live session gauge.
func (m *Metrics) SetSessions(count int) {
	if m == nil {
		return
	}
	m.sessionsActive.Set(float64(count))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry, for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Middleware counts requests by the mux pattern that served them. It must wrap
// the ServeMux directly so the pattern set during routing is visible.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	if m == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recorder := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(recorder, r)
		m.httpRequests.WithLabelValues(routeLabel(r), strconv.Itoa(recorder.statusCode)).Inc()
	})
}

func routeLabel(r *http.Request) string {
	if pattern := strings.TrimSpace(r.Pattern); pattern != "" {
		return pattern
	}
	return "unmatched"
}

type responseWriter struct {
	http.ResponseWriter
	statusCode  int
	wroteHeader bool
}

func (rw *responseWriter) WriteHeader(code int) {
	if !rw.wroteHeader {
		rw.statusCode = code
		rw.wroteHeader = true
	}
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}
