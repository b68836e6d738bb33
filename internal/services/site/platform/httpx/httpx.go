// Package httpx holds the middleware and response helpers shared by the site
// root handler and its modules.
package httpx

import (
	"context"
	"log"
	"net/http"
	"runtime/debug"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/lazyeholdings/site/internal/platform/id"
	apperrors "github.com/lazyeholdings/site/internal/services/site/platform/errors"
)

const (
	htmxHeader      = "HX-Request"
	requestIDHeader = "X-Request-ID"
	// Longer incoming ids are replaced so log lines stay bounded.
	maxRequestIDLen = 128
)

// Middleware wraps an HTTP handler.
type Middleware func(http.Handler) http.Handler

var fallbackRequestIDs atomic.Uint64

// MethodNotAllowed answers 405 and advertises the allowed method.
func MethodNotAllowed(allow string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Allow", strings.TrimSpace(allow))
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// Chain wraps handler so the first middleware runs first. Nil entries are
// skipped.
func Chain(handler http.Handler, middleware ...Middleware) http.Handler {
	if handler == nil {
		handler = http.NotFoundHandler()
	}
	for i := len(middleware) - 1; i >= 0; i-- {
		if middleware[i] != nil {
			handler = middleware[i](handler)
		}
	}
	return handler
}

// RequestID makes sure every request carries an X-Request-ID, keeping a
// usable incoming one, and echoes it on the response.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := strings.TrimSpace(r.Header.Get(requestIDHeader))
			if requestID == "" || len(requestID) > maxRequestIDLen {
				requestID = newRequestID()
				r.Header.Set(requestIDHeader, requestID)
			}
			w.Header().Set(requestIDHeader, requestID)
			next.ServeHTTP(w, r)
		})
	}
}

func newRequestID() string {
	if generated, err := id.NewID(); err == nil {
		return "site-" + generated
	}
	return "site-" + strconv.FormatUint(fallbackRequestIDs.Add(1), 10)
}

// RecoverPanic logs a handler panic with its request and answers 500.
func RecoverPanic() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}
				if recovered == http.ErrAbortHandler {
					panic(recovered)
				}
				log.Printf(
					"panic recovered method=%s path=%s request_id=%s panic=%v stack=%s",
					r.Method,
					r.URL.Path,
					orDash(r.Header.Get(requestIDHeader)),
					recovered,
					strings.TrimSpace(string(debug.Stack())),
				)
				WriteError(w, apperrors.E(apperrors.KindUnknown, "handler panic"))
			}()
			next.ServeHTTP(w, r)
		})
	}
}

func orDash(value string) string {
	if value = strings.TrimSpace(value); value != "" {
		return value
	}
	return "-"
}

// WriteError answers with err's typed status and the standard status text.
// The error's own message stays in logs and never reaches the client.
func WriteError(w http.ResponseWriter, err error) {
	if err == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	http.Error(w, http.StatusText(statusCode), statusCode)
}

// RequestContext returns r's context, or a background context for a nil
// request.
func RequestContext(r *http.Request) context.Context {
	if r == nil {
		return context.Background()
	}
	return r.Context()
}

// IsHTMXRequest reports whether r was sent by htmx.
func IsHTMXRequest(r *http.Request) bool {
	return r != nil && r.Header.Get(htmxHeader) == "true"
}
