package app

import (
	"log"
	"net/http"
	"time"

	"github.com/lazyeholdings/site/internal/platform/id"
	"github.com/lazyeholdings/site/internal/services/site/platform/httpx"
	"github.com/lazyeholdings/site/internal/services/site/platform/requestmeta"
	"github.com/lazyeholdings/site/internal/services/site/platform/sessioncookie"
	"github.com/lazyeholdings/site/internal/services/site/selection"
)

// SessionConfig controls how browser sessions are issued.
type SessionConfig struct {
	Store        *selection.Store
	CookieMaxAge time.Duration
	SchemePolicy requestmeta.SchemePolicy
	// NewID replaces id.NewID, for tests.
	NewID func() (string, error)
}

// WithSessions resolves the request's session, issuing a cookie when the
// browser has none, and attaches the session to the context. The store only
// gains an entry once the session toggles a card. Requests that cannot get a
// session continue without one.
func WithSessions(cfg SessionConfig) httpx.Middleware {
	newID := cfg.NewID
	if newID == nil {
		newID = id.NewID
	}
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		if cfg.Store == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID, ok := sessioncookie.Read(r)
			if !ok || !id.Valid(sessionID) {
				issued, err := newID()
				if err != nil {
					log.Printf("session issue failed: %v", err)
					next.ServeHTTP(w, r)
					return
				}
				sessionID = issued
			}
			// Refreshing the cookie keeps its expiry in step with the store's
			// idle window.
			sessioncookie.Write(w, r, sessionID, cfg.CookieMaxAge, cfg.SchemePolicy)

			ctx := sessioncookie.WithID(r.Context(), sessionID)
			ctx = selection.WithSession(ctx, cfg.Store.Session(sessionID))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
