// Package ventures serves the venture card toggle, visit and list endpoints.
package ventures

import (
	"log"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	module "github.com/lazyeholdings/site/internal/services/site/module"
	apperrors "github.com/lazyeholdings/site/internal/services/site/platform/errors"
	"github.com/lazyeholdings/site/internal/services/site/platform/httpx"
	"github.com/lazyeholdings/site/internal/services/site/platform/pagerender"
	"github.com/lazyeholdings/site/internal/services/site/platform/weberror"
	"github.com/lazyeholdings/site/internal/services/site/routepath"
	"github.com/lazyeholdings/site/internal/services/site/selection"
	"github.com/lazyeholdings/site/internal/services/site/templates"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/lazyeholdings/site/internal/services/site/modules/ventures"

type handlers struct {
	deps   module.Dependencies
	tracer trace.Tracer
}

func newHandlers(deps module.Dependencies) handlers {
	return handlers{deps: deps, tracer: otel.Tracer(tracerName)}
}

func (h handlers) handleList(w http.ResponseWriter, r *http.Request) {
	h.writeList(w, r, h.currentSelection(r))
}

func (h handlers) handleToggle(w http.ResponseWriter, r *http.Request) {
	ventureID := strings.TrimSpace(r.PathValue("id"))
	ctx, span := h.tracer.Start(r.Context(), "venture.toggle")
	defer span.End()

	session, ok := selection.SessionFromContext(ctx)
	if !ok {
		span.SetAttributes(attribute.Bool("session.present", false))
		h.writeError(w, r, apperrors.EK(apperrors.KindUnavailable, "error.session_unavailable", "no selection session for request"))
		return
	}

	change := session.Toggle(ventureID)
	span.SetAttributes(
		attribute.String("venture.id", ventureID),
		attribute.Bool("venture.known", h.deps.Catalog.Contains(ventureID)),
		attribute.String("selection.previous", change.Previous.String()),
		attribute.String("selection.current", change.Current.String()),
	)

	if !httpx.IsHTMXRequest(r) {
		http.Redirect(w, r, routepath.Anchor(routepath.SectionVentures), http.StatusSeeOther)
		return
	}
	h.writeList(w, r.WithContext(ctx), change.Current)
}

// handleVisit redirects to the venture's site. It reads the catalog only and
// leaves the session's selection as it was.
func (h handlers) handleVisit(w http.ResponseWriter, r *http.Request) {
	ventureID := strings.TrimSpace(r.PathValue("id"))
	_, span := h.tracer.Start(r.Context(), "venture.visit")
	defer span.End()
	span.SetAttributes(attribute.String("venture.id", ventureID))

	v, ok := h.deps.Catalog.Lookup(ventureID)
	if !ok || !v.HasURL() {
		span.SetAttributes(attribute.Bool("venture.visitable", false))
		h.handleNotFound(w, r)
		return
	}
	span.SetAttributes(attribute.Bool("venture.visitable", true))
	h.deps.Metrics.RecordVisit(v.ID)
	http.Redirect(w, r, v.URL, http.StatusFound)
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteErrorPage(w, r, http.StatusNotFound, h.deps)
}

func (h handlers) handleRateLimited(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, r, apperrors.EK(apperrors.KindRateLimited, "error.rate_limited", "toggle rate exceeded"))
}

func (h handlers) writeList(w http.ResponseWriter, r *http.Request, state selection.State) {
	ventures := h.deps.Catalog.Ventures()
	err := pagerender.WriteFragment(w, r, http.StatusOK, func(loc templates.Localizer) templ.Component {
		return templates.VentureList(ventures, state, loc)
	})
	if err != nil {
		log.Printf("render venture list: %v", err)
	}
}

func (h handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	weberror.WriteModuleError(w, r, err, h.deps)
}

func (h handlers) currentSelection(r *http.Request) selection.State {
	if session, ok := selection.SessionFromContext(r.Context()); ok {
		return session.State()
	}
	if first, ok := h.deps.Catalog.First(); ok {
		return selection.Of(first.ID)
	}
	return selection.None()
}
