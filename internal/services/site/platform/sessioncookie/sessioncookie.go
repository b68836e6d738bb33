// Package sessioncookie centralizes the site session cookie.
package sessioncookie

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/lazyeholdings/site/internal/services/site/platform/requestmeta"
)

// Name is the site session cookie name.
const Name = "lazye_session"

// Read returns the trimmed session cookie value when present.
func Read(r *http.Request) (string, bool) {
	if r == nil {
		return "", false
	}
	cookie, err := r.Cookie(Name)
	if err != nil || cookie == nil {
		return "", false
	}
	value := strings.TrimSpace(cookie.Value)
	if value == "" {
		return "", false
	}
	return value, true
}

// Write sets the session cookie. A positive maxAge bounds the cookie's
// lifetime; zero leaves it a browser-session cookie.
func Write(w http.ResponseWriter, r *http.Request, sessionID string, maxAge time.Duration, policy requestmeta.SchemePolicy) {
	if w == nil {
		return
	}
	cookie := &http.Cookie{
		Name:     Name,
		Value:    strings.TrimSpace(sessionID),
		Path:     "/",
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPS(r, policy),
		SameSite: http.SameSiteLaxMode,
	}
	if maxAge > 0 {
		cookie.MaxAge = int(maxAge / time.Second)
	}
	http.SetCookie(w, cookie)
}

// Clear expires the session cookie.
func Clear(w http.ResponseWriter, r *http.Request, policy requestmeta.SchemePolicy) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     Name,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPS(r, policy),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

type idContextKey struct{}

// WithID records the request's resolved session id, including one issued on
// this very request.
func WithID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, idContextKey{}, sessionID)
}

// IDFromContext returns the session id recorded by WithID.
func IDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	sessionID, ok := ctx.Value(idContextKey{}).(string)
	return sessionID, ok && sessionID != ""
}
