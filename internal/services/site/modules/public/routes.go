package public

import (
	"net/http"

	"github.com/lazyeholdings/site/internal/services/site/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.Handle(http.MethodGet+" "+routepath.Root+"{$}", h.deps.WithSession(http.HandlerFunc(h.handleRoot)))
	mux.HandleFunc(http.MethodGet+" "+routepath.Health, h.handleHealth)
	mux.HandleFunc(http.MethodGet+" /{rest...}", h.handleNotFound)
}
