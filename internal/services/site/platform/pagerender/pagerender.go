// Package pagerender centralizes full-page and fragment rendering.
package pagerender

import (
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
	module "github.com/lazyeholdings/site/internal/services/site/module"
	"github.com/lazyeholdings/site/internal/services/site/platform/httpx"
	sitei18n "github.com/lazyeholdings/site/internal/services/site/platform/i18n"
	"github.com/lazyeholdings/site/internal/services/site/templates"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Page describes a response that is either a full document or, for htmx
// requests, only its fragment.
type Page struct {
	// Title returns the document title; nil uses the site default.
	Title      func(loc templates.Localizer) string
	StatusCode int
	Indexable  bool
	// Fragment builds the main content with the request's localizer.
	Fragment func(loc templates.Localizer) templ.Component
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// WritePage writes page as a full layout, or as its bare fragment when the
// request came from htmx.
func WritePage(w http.ResponseWriter, r *http.Request, deps module.Dependencies, page Page) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}

	loc, tag := sitei18n.ResolveLocalizer(w, r)
	var fragment templ.Component = emptyComponent{}
	if page.Fragment != nil {
		if built := page.Fragment(loc); built != nil {
			fragment = built
		}
	}

	title := ""
	if page.Title != nil {
		title = page.Title(loc)
	}

	ctx := httpx.RequestContext(r)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Vary", "HX-Request")
	if httpx.IsHTMXRequest(r) {
		w.WriteHeader(statusCode)
		return fragment.Render(ctx, w)
	}

	path := "/"
	if r != nil && r.URL != nil {
		path = r.URL.Path
	}
	layout := templates.Layout(templates.LayoutData{
		Lang:          tag.String(),
		Title:         title,
		Loc:           loc,
		HTMXScriptURL: deps.HTMXScriptURL,
		Languages:     languageOptions(loc, tag, path),
		Year:          deps.Clock().Year(),
		Indexable:     page.Indexable,
	})
	w.WriteHeader(statusCode)
	return layout.Render(templ.WithChildren(ctx, fragment), w)
}

// WriteFragment writes a bare component, used for htmx swaps.
func WriteFragment(w http.ResponseWriter, r *http.Request, statusCode int, build func(loc templates.Localizer) templ.Component) error {
	if w == nil {
		return nil
	}
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	loc, _ := sitei18n.ResolveLocalizer(w, r)
	var component templ.Component = emptyComponent{}
	if build != nil {
		if built := build(loc); built != nil {
			component = built
		}
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	return component.Render(httpx.RequestContext(r), w)
}

func languageOptions(loc *message.Printer, active language.Tag, path string) []templates.LanguageOption {
	options := sitei18n.LanguageOptions(loc, active, path)
	out := make([]templates.LanguageOption, 0, len(options))
	for _, option := range options {
		out = append(out, templates.LanguageOption{
			Tag:    option.Tag,
			Label:  option.Label,
			URL:    option.URL,
			Active: option.Active,
		})
	}
	return out
}
