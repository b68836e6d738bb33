package ventures

import (
	"net"
	"net/http"

	module "github.com/lazyeholdings/site/internal/services/site/module"
	"github.com/lazyeholdings/site/internal/services/site/platform/httpx"
	"github.com/lazyeholdings/site/internal/services/site/platform/sessioncookie"
	"github.com/lazyeholdings/site/internal/services/site/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers, deps module.Dependencies) {
	if mux == nil {
		return
	}
	limit := httpx.RateLimit(deps.ToggleLimiter, toggleLimitKey, h.handleRateLimited)

	list := deps.WithSession(http.HandlerFunc(h.handleList))
	mux.Handle(http.MethodGet+" "+routepath.Ventures, list)
	mux.Handle(http.MethodGet+" "+routepath.VenturesPrefix+"{$}", list)

	mux.Handle(http.MethodPost+" "+routepath.VentureTogglePattern, deps.WithSession(limit(http.HandlerFunc(h.handleToggle))))
	mux.HandleFunc(http.MethodGet+" "+routepath.VentureTogglePattern, httpx.MethodNotAllowed(http.MethodPost))

	mux.HandleFunc(http.MethodGet+" "+routepath.VentureVisitPattern, h.handleVisit)

	mux.HandleFunc(http.MethodGet+" "+routepath.VenturesPrefix+"{rest...}", h.handleNotFound)
}

// toggleLimitKey buckets by session, or by client address for requests that
// carry none.
func toggleLimitKey(r *http.Request) string {
	if sessionID, ok := sessioncookie.IDFromContext(r.Context()); ok {
		return "session:" + sessionID
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "addr:" + host
}
