package httpx

import (
	"net/http"
	"sync"

	"golang.org/x/time/rate"
)

const defaultMaxLimiterKeys = 10000

// Limiter keeps one token bucket per key, usually a session id.
type Limiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      rate.Limit
	burst    int
	maxKeys  int
}

// NewLimiter allows rps sustained requests per key with the given burst.
// A non-positive rps disables limiting.
func NewLimiter(rps float64, burst int) *Limiter {
	if burst < 1 {
		burst = 1
	}
	return &Limiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rate.Limit(rps),
		burst:    burst,
		maxKeys:  defaultMaxLimiterKeys,
	}
}

// Allow reports whether a request for key may proceed now.
func (l *Limiter) Allow(key string) bool {
	if l == nil || l.rps <= 0 {
		return true
	}
	return l.limiter(key).Allow()
}

// Forget drops key's bucket.
func (l *Limiter) Forget(key string) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.limiters, key)
}

func (l *Limiter) limiter(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	if limiter, ok := l.limiters[key]; ok {
		return limiter
	}
	if len(l.limiters) >= l.maxKeys {
		// Buckets are cheap to rebuild; a full map starts over.
		l.limiters = make(map[string]*rate.Limiter)
	}
	limiter := rate.NewLimiter(l.rps, l.burst)
	l.limiters[key] = limiter
	return limiter
}

// RateLimit rejects requests whose key has exhausted its bucket. keyFn picks
// the bucket; rejected requests go to onLimit.
func RateLimit(limiter *Limiter, keyFn func(*http.Request) string, onLimit http.HandlerFunc) Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		if limiter == nil {
			return next
		}
		if keyFn == nil {
			keyFn = func(*http.Request) string { return "" }
		}
		if onLimit == nil {
			onLimit = func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
			}
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow(keyFn(r)) {
				onLimit(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
