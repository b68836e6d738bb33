package ventures

import (
	"net/http"

	module "github.com/lazyeholdings/site/internal/services/site/module"
	"github.com/lazyeholdings/site/internal/services/site/routepath"
)

// Module serves the venture card endpoints.
type Module struct{}

// New returns a ventures module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "ventures" }

// Mount wires venture route handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(deps), deps)
	return module.Mount{Prefix: routepath.VenturesPrefix, Handler: mux}, nil
}
