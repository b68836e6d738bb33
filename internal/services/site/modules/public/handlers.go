// Package public serves the landing page and the site-wide fallbacks.
package public

import (
	"io"
	"log"
	"net/http"

	"github.com/a-h/templ"
	module "github.com/lazyeholdings/site/internal/services/site/module"
	apperrors "github.com/lazyeholdings/site/internal/services/site/platform/errors"
	"github.com/lazyeholdings/site/internal/services/site/platform/httpx"
	"github.com/lazyeholdings/site/internal/services/site/platform/pagerender"
	"github.com/lazyeholdings/site/internal/services/site/platform/weberror"
	"github.com/lazyeholdings/site/internal/services/site/selection"
	"github.com/lazyeholdings/site/internal/services/site/templates"
)

type handlers struct {
	deps module.Dependencies
}

func newHandlers(deps module.Dependencies) handlers {
	return handlers{deps: deps}
}

func (h handlers) handleRoot(w http.ResponseWriter, r *http.Request) {
	state := h.currentSelection(r)
	ventures := h.deps.Catalog.Ventures()
	err := pagerender.WritePage(w, r, h.deps, pagerender.Page{
		Indexable: true,
		Fragment: func(loc templates.Localizer) templ.Component {
			return templates.Home(templates.HomeData{
				Loc:       loc,
				Ventures:  ventures,
				Selection: state,
			})
		},
	})
	if err != nil {
		log.Printf("render home: %v", err)
	}
}

func (h handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	if h.deps.Catalog.Len() == 0 {
		httpx.WriteError(w, apperrors.E(apperrors.KindUnavailable, "catalog is empty"))
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "ok")
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteErrorPage(w, r, http.StatusNotFound, h.deps)
}

// currentSelection falls back to the catalog's first venture when the
// request carries no session.
func (h handlers) currentSelection(r *http.Request) selection.State {
	if session, ok := selection.SessionFromContext(r.Context()); ok {
		return session.State()
	}
	if first, ok := h.deps.Catalog.First(); ok {
		return selection.Of(first.ID)
	}
	return selection.None()
}
