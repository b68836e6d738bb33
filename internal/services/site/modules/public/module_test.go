package public

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	module "github.com/lazyeholdings/site/internal/services/site/module"
	"github.com/lazyeholdings/site/internal/services/site/selection"
	"github.com/lazyeholdings/site/internal/services/site/venture"
)

func testDeps() module.Dependencies {
	return module.Dependencies{
		Catalog: venture.Default(),
		Now:     func() time.Time { return time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC) },
	}
}

func mountHandler(t *testing.T, deps module.Dependencies) http.Handler {
	t.Helper()
	mount, err := New().Mount(deps)
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != "/" {
		t.Fatalf("Prefix = %q, want /", mount.Prefix)
	}
	return mount.Handler
}

func TestModuleIDReturnsPublic(t *testing.T) {
	t.Parallel()

	if got := New().ID(); got != "public" {
		t.Fatalf("ID() = %q, want %q", got, "public")
	}
}

func TestRootRendersFullPageWithDefaultExpanded(t *testing.T) {
	t.Parallel()

	h := mountHandler(t, testDeps())
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	for _, want := range []string{
		"<!doctype html>",
		`id="venture-list"`,
		`data-selected="axis"`,
		`id="venture-axis"`,
		"© 2026 Lazy E Holdings LLC",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q", want)
		}
	}
	if strings.Count(body, `data-state="expanded"`) != 1 {
		t.Fatalf("expected exactly one expanded card")
	}
}

func TestRootUsesSessionSelection(t *testing.T) {
	t.Parallel()

	h := mountHandler(t, testDeps())
	session := selection.NewStore("axis").Session("sess-1")
	session.Toggle("k9trainpros")
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(selection.WithSession(req.Context(), session))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if !strings.Contains(rr.Body.String(), `data-selected="k9trainpros"`) {
		t.Fatalf("expected the session's selection to render")
	}
}

func TestRootHTMXRequestRendersFragmentOnly(t *testing.T) {
	t.Parallel()

	h := mountHandler(t, testDeps())
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("HX-Request", "true")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	body := rr.Body.String()
	if strings.Contains(body, "<html") {
		t.Fatalf("htmx response should not include the layout")
	}
	if !strings.Contains(body, `id="venture-list"`) {
		t.Fatalf("htmx response missing venture list")
	}
}

func TestHealthReportsOK(t *testing.T) {
	t.Parallel()

	h := mountHandler(t, testDeps())
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rr.Code != http.StatusOK || rr.Body.String() != "ok" {
		t.Fatalf("health = %d %q, want 200 ok", rr.Code, rr.Body.String())
	}
}

func TestHealthFailsWithoutCatalog(t *testing.T) {
	t.Parallel()

	h := mountHandler(t, module.Dependencies{})
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusServiceUnavailable)
	}
}

func TestUnknownPathRendersLocalizedNotFound(t *testing.T) {
	t.Parallel()

	h := mountHandler(t, testDeps())
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/careers?lang=es-US", nil))

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `id="error-state"`) {
		t.Fatalf("expected error state in body")
	}
	if !strings.Contains(body, `lang="es-US"`) {
		t.Fatalf("expected spanish layout")
	}
}

func TestRootRejectsNonGet(t *testing.T) {
	t.Parallel()

	h := mountHandler(t, testDeps())
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/", nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
	}
}

func TestSessionsOnlyWrapTheLandingPage(t *testing.T) {
	t.Parallel()

	deps := testDeps()
	deps.Sessions = func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Session", "attached")
			next.ServeHTTP(w, r)
		})
	}
	h := mountHandler(t, deps)

	tests := []struct {
		path string
		want string
	}{
		{path: "/", want: "attached"},
		{path: "/health", want: ""},
		{path: "/careers", want: ""},
	}
	for _, tc := range tests {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tc.path, nil))
		if got := rr.Header().Get("X-Session"); got != tc.want {
			t.Fatalf("GET %s session marker = %q, want %q", tc.path, got, tc.want)
		}
	}
}
