package public

import (
	"net/http"

	module "github.com/lazyeholdings/site/internal/services/site/module"
	"github.com/lazyeholdings/site/internal/services/site/routepath"
)

// Module serves the landing page, the health check and the site-wide 404.
type Module struct{}

// New returns a public module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "public" }

// Mount wires public route handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(deps))
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
