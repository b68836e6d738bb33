// Package module defines the feature contract used by site composition.
package module

import (
	"net/http"
	"time"

	"github.com/lazyeholdings/site/internal/services/site/metrics"
	"github.com/lazyeholdings/site/internal/services/site/platform/httpx"
	"github.com/lazyeholdings/site/internal/services/site/platform/requestmeta"
	"github.com/lazyeholdings/site/internal/services/site/venture"
)

// Dependencies carries what feature modules read at request time. The
// session's selection travels on the request context instead.
type Dependencies struct {
	Catalog       *venture.Catalog
	Metrics       *metrics.Metrics
	SchemePolicy  requestmeta.SchemePolicy
	HTMXScriptURL string
	// ToggleLimiter throttles selection mutations per session; nil allows
	// every request.
	ToggleLimiter *httpx.Limiter
	// Sessions attaches the browser session to routes that read or change
	// the selection. Other routes never see a session cookie issued.
	Sessions httpx.Middleware
	Now      func() time.Time
}

// WithSession wraps next with deps.Sessions when one is configured.
func (d Dependencies) WithSession(next http.Handler) http.Handler {
	if d.Sessions == nil {
		return next
	}
	return d.Sessions(next)
}

// Clock returns deps.Now or time.Now.
func (d Dependencies) Clock() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by site composition.
type Module interface {
	ID() string
	Mount(Dependencies) (Mount, error)
}
