package site

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/lazyeholdings/site/internal/services/site/platform/sessioncookie"
)

func newTestHandler(t *testing.T, cfg Config) http.Handler {
	t.Helper()
	if cfg.Now == nil {
		cfg.Now = func() time.Time { return time.Date(2026, time.May, 4, 12, 0, 0, 0, time.UTC) }
	}
	h, err := NewHandler(cfg)
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}
	return h
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func sessionCookie(t *testing.T, rr *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range rr.Result().Cookies() {
		if cookie.Name == sessioncookie.Name {
			return cookie
		}
	}
	t.Fatalf("response has no session cookie")
	return nil
}

func sameOriginPost(target string, cookie *http.Cookie) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("HX-Request", "true")
	req.AddCookie(cookie)
	return req
}

func TestHandlerSessionFlow(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, Config{})

	rr := serve(h, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("GET / status = %d, want %d", rr.Code, http.StatusOK)
	}
	if !strings.Contains(rr.Body.String(), `data-selected="axis"`) {
		t.Fatalf("new session should start with axis expanded")
	}
	cookie := sessionCookie(t, rr)
	if !cookie.HttpOnly || cookie.SameSite != http.SameSiteLaxMode {
		t.Fatalf("cookie = %+v, want HttpOnly and SameSite=Lax", cookie)
	}

	rr = serve(h, sameOriginPost("/ventures/k9trainpros/toggle", cookie))
	if rr.Code != http.StatusOK {
		t.Fatalf("toggle status = %d, want %d", rr.Code, http.StatusOK)
	}
	if !strings.Contains(rr.Body.String(), `data-selected="k9trainpros"`) {
		t.Fatalf("toggle fragment missing k9trainpros selection")
	}

	visit := httptest.NewRequest(http.MethodGet, "/ventures/k9trainpros/visit", nil)
	visit.AddCookie(cookie)
	rr = serve(h, visit)
	if rr.Code != http.StatusFound || rr.Header().Get("Location") != "https://k9protrain.com" {
		t.Fatalf("visit = %d %q", rr.Code, rr.Header().Get("Location"))
	}

	page := httptest.NewRequest(http.MethodGet, "/", nil)
	page.AddCookie(cookie)
	rr = serve(h, page)
	if !strings.Contains(rr.Body.String(), `data-selected="k9trainpros"`) {
		t.Fatalf("selection should survive the visit")
	}

	list := httptest.NewRequest(http.MethodGet, "/ventures", nil)
	list.AddCookie(cookie)
	rr = serve(h, list)
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), `id="venture-list"`) {
		t.Fatalf("GET /ventures = %d", rr.Code)
	}
}

func TestHandlerSessionsAreIndependent(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, Config{})
	first := sessionCookie(t, serve(h, httptest.NewRequest(http.MethodGet, "/", nil)))
	second := sessionCookie(t, serve(h, httptest.NewRequest(http.MethodGet, "/", nil)))
	if first.Value == second.Value {
		t.Fatalf("expected distinct session ids")
	}

	serve(h, sameOriginPost("/ventures/axis/toggle", first))

	page := httptest.NewRequest(http.MethodGet, "/", nil)
	page.AddCookie(second)
	if body := serve(h, page).Body.String(); !strings.Contains(body, `data-selected="axis"`) {
		t.Fatalf("second session should still have axis expanded")
	}
}

func TestAnonymousTrafficDoesNotEvictVisitorSessions(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, Config{MaxSessions: 1})
	cookie := sessionCookie(t, serve(h, httptest.NewRequest(http.MethodGet, "/", nil)))
	if rr := serve(h, sameOriginPost("/ventures/k9trainpros/toggle", cookie)); rr.Code != http.StatusOK {
		t.Fatalf("toggle status = %d, want %d", rr.Code, http.StatusOK)
	}

	for _, path := range []string{"/health", "/health", "/careers", "/wp-login.php"} {
		rr := serve(h, httptest.NewRequest(http.MethodGet, path, nil))
		if len(rr.Result().Cookies()) != 0 {
			t.Fatalf("GET %s issued a session cookie", path)
		}
	}
	for range 3 {
		serve(h, httptest.NewRequest(http.MethodGet, "/", nil))
	}

	metricsBody := serve(h, httptest.NewRequest(http.MethodGet, "/metrics", nil)).Body.String()
	if !strings.Contains(metricsBody, "site_sessions_active 1") {
		t.Fatalf("anonymous requests changed the live session count")
	}

	page := httptest.NewRequest(http.MethodGet, "/", nil)
	page.AddCookie(cookie)
	if body := serve(h, page).Body.String(); !strings.Contains(body, `data-selected="k9trainpros"`) {
		t.Fatalf("visitor selection lost after anonymous traffic")
	}
}

func TestHandlerRejectsCrossSiteToggle(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, Config{})
	cookie := sessionCookie(t, serve(h, httptest.NewRequest(http.MethodGet, "/", nil)))
	req := httptest.NewRequest(http.MethodPost, "/ventures/k9trainpros/toggle", nil)
	req.Header.Set("Origin", "https://evil.example")
	req.AddCookie(cookie)
	if rr := serve(h, req); rr.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusForbidden)
	}
}

func TestHandlerServesStaticHealthAndMetrics(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, Config{})
	cookie := sessionCookie(t, serve(h, httptest.NewRequest(http.MethodGet, "/", nil)))
	serve(h, sameOriginPost("/ventures/k9trainpros/toggle", cookie))

	rr := serve(h, httptest.NewRequest(http.MethodGet, "/static/site.css", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("static status = %d, want %d", rr.Code, http.StatusOK)
	}
	if len(rr.Result().Cookies()) != 0 {
		t.Fatalf("static assets should not issue session cookies")
	}

	rr = serve(h, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rr.Code != http.StatusOK || rr.Body.String() != "ok" {
		t.Fatalf("health = %d %q", rr.Code, rr.Body.String())
	}

	rr = serve(h, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("metrics status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	for _, want := range []string{
		`site_venture_toggles_total{transition="expand",venture="k9trainpros"} 1`,
		"site_sessions_active 1",
		`site_http_requests_total{code="200",route="POST /ventures/{id}/toggle"} 1`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("metrics missing %q", want)
		}
	}
}

func TestHandlerUnknownPathIsNotFound(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, Config{})
	rr := serve(h, httptest.NewRequest(http.MethodGet, "/careers", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	if rr.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected request id header")
	}
}

func TestHandlerHonorsDefaultVenture(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, Config{DefaultVenture: "coreops"})
	if body := serve(h, httptest.NewRequest(http.MethodGet, "/", nil)).Body.String(); !strings.Contains(body, `data-selected="coreops"`) {
		t.Fatalf("expected coreops expanded")
	}
}

func TestNewHandlerRejectsUnknownDefaultVenture(t *testing.T) {
	t.Parallel()

	if _, err := NewHandler(Config{DefaultVenture: "ghost"}); err == nil {
		t.Fatalf("expected unknown default venture error")
	}
}

func TestNewServerRequiresAddress(t *testing.T) {
	t.Parallel()

	if _, err := NewServer(context.Background(), Config{HTTPAddr: "  "}); err == nil {
		t.Fatalf("expected missing address error")
	}
}

func TestListenAndServeStopsOnCancel(t *testing.T) {
	t.Parallel()

	server, err := NewServer(context.Background(), Config{HTTPAddr: "127.0.0.1:0"})
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- server.ListenAndServe(ctx) }()
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("ListenAndServe() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("ListenAndServe did not return after cancel")
	}
}

func TestNilServerIsSafe(t *testing.T) {
	t.Parallel()

	var server *Server
	if err := server.ListenAndServe(context.Background()); err == nil {
		t.Fatalf("expected nil server error")
	}
	server.Close()
}
