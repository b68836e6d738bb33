package pagerender

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/a-h/templ"
	module "github.com/lazyeholdings/site/internal/services/site/module"
	"github.com/lazyeholdings/site/internal/services/site/templates"
)

func fixedDeps() module.Dependencies {
	return module.Dependencies{
		HTMXScriptURL: "https://unpkg.com/htmx.org@2.0.4",
		Now:           func() time.Time { return time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC) },
	}
}

func fragment(markup string) func(templates.Localizer) templ.Component {
	return func(templates.Localizer) templ.Component {
		return textComponent(markup)
	}
}

func TestWritePageRendersHTMXFragmentWithStatus(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/ventures", nil)
	req.Header.Set("HX-Request", "true")
	rr := httptest.NewRecorder()

	err := WritePage(rr, req, fixedDeps(), Page{
		StatusCode: http.StatusCreated,
		Fragment:   fragment(`<section id="fragment-root">ok</section>`),
	})
	if err != nil {
		t.Fatalf("WritePage() error = %v", err)
	}
	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusCreated)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `id="fragment-root"`) {
		t.Fatalf("body missing fragment marker: %q", body)
	}
	if strings.Contains(strings.ToLower(body), "<!doctype html") || strings.Contains(strings.ToLower(body), "<html") {
		t.Fatalf("expected htmx fragment without full document wrapper")
	}
}

func TestWritePageRendersFullPageWithLayout(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/?lang=es", nil)
	rr := httptest.NewRecorder()

	err := WritePage(rr, req, fixedDeps(), Page{
		Indexable: true,
		Fragment:  fragment(`<section id="fragment-root">ok</section>`),
	})
	if err != nil {
		t.Fatalf("WritePage() error = %v", err)
	}
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if got := rr.Header().Get("Content-Type"); got != "text/html; charset=utf-8" {
		t.Fatalf("content-type = %q, want %q", got, "text/html; charset=utf-8")
	}
	body := rr.Body.String()
	for _, marker := range []string{`<html lang="es-US"`, `id="main"`, `id="fragment-root"`, "© 2026", "htmx.org@2.0.4"} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing marker %q: %q", marker, body)
		}
	}
	if cookies := rr.Result().Cookies(); len(cookies) != 1 {
		t.Fatalf("cookies = %v, want persisted lang cookie", cookies)
	}
}

func TestWriteFragment(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	err := WriteFragment(rr, httptest.NewRequest(http.MethodPost, "/ventures/axis/toggle", nil), 0, fragment(`<div id="venture-list"></div>`))
	if err != nil {
		t.Fatalf("WriteFragment() error = %v", err)
	}
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if got := rr.Body.String(); got != `<div id="venture-list"></div>` {
		t.Fatalf("body = %q", got)
	}
}

type textComponent string

func (c textComponent) Render(_ context.Context, w io.Writer) error {
	_, err := io.WriteString(w, string(c))
	return err
}
