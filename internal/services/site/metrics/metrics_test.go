package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lazyeholdings/site/internal/services/site/selection"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveChangeCountsTransitions(t *testing.T) {
	t.Parallel()

	m := New()
	controller := selection.NewController("axis", m.ObserveChange)
	controller.Toggle("k9trainpros")
	controller.Toggle("k9trainpros")
	controller.Toggle("axis")

	if got := testutil.ToFloat64(m.toggles.WithLabelValues("k9trainpros", "expand")); got != 1 {
		t.Fatalf("k9trainpros expand = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.toggles.WithLabelValues("k9trainpros", "collapse")); got != 1 {
		t.Fatalf("k9trainpros collapse = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.toggles.WithLabelValues("axis", "expand")); got != 1 {
		t.Fatalf("axis expand = %v, want 1", got)
	}
}

func TestVentureLabelsBoundedByCatalog(t *testing.T) {
	t.Parallel()

	m := New("axis", "k9trainpros")
	controller := selection.NewController("axis", m.ObserveChange)
	controller.Toggle("../../etc/passwd")
	controller.Toggle("k9trainpros")

	if got := testutil.ToFloat64(m.toggles.WithLabelValues("other", "expand")); got != 1 {
		t.Fatalf("other expand = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.toggles.WithLabelValues("k9trainpros", "expand")); got != 1 {
		t.Fatalf("k9trainpros expand = %v, want 1", got)
	}
	if got := testutil.CollectAndCount(m.toggles); got != 2 {
		t.Fatalf("toggle series = %d, want 2", got)
	}
}

func TestRecordVisitAndSessions(t *testing.T) {
	t.Parallel()

	m := New()
	m.RecordVisit("k9trainpros")
	m.SetSessions(3)

	if got := testutil.ToFloat64(m.visits.WithLabelValues("k9trainpros")); got != 1 {
		t.Fatalf("visits = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.sessionsActive); got != 3 {
		t.Fatalf("sessions = %v, want 3", got)
	}
}

func TestNilMetricsIsNoop(t *testing.T) {
	t.Parallel()

	var m *Metrics
	m.ObserveChange(selection.Change{Toggled: "axis"})
	m.RecordVisit("axis")
	m.SetSessions(1)
	if m.Registry() != nil {
		t.Fatalf("nil metrics should have no registry")
	}

	called := false
	h := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { called = true }))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	if !called {
		t.Fatalf("nil metrics middleware should call through")
	}
}

func TestMiddlewareLabelsByPattern(t *testing.T) {
	t.Parallel()

	m := New()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /ventures/{id}/toggle", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusSeeOther)
	})
	h := m.Middleware(mux)

	for _, id := range []string{"axis", "coreops"} {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/ventures/"+id+"/toggle", nil))
	}

	if got := testutil.ToFloat64(m.httpRequests.WithLabelValues("POST /ventures/{id}/toggle", "303")); got != 2 {
		t.Fatalf("toggle requests = %v, want 2", got)
	}
}

func TestHandlerExposesSiteMetrics(t *testing.T) {
	t.Parallel()

	m := New()
	m.RecordVisit("k9trainpros")

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	for _, marker := range []string{`site_venture_visits_total{venture="k9trainpros"} 1`, "site_sessions_active 0", "go_goroutines"} {
		if !strings.Contains(body, marker) {
			t.Fatalf("metrics body missing %q", marker)
		}
	}
}
