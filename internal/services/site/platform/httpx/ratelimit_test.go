package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLimiterIsPerKey(t *testing.T) {
	t.Parallel()

	limiter := NewLimiter(0.001, 2)
	for i := 0; i < 2; i++ {
		if !limiter.Allow("a") {
			t.Fatalf("request %d for a should be allowed within burst", i)
		}
	}
	if limiter.Allow("a") {
		t.Fatalf("third request for a should be limited")
	}
	if !limiter.Allow("b") {
		t.Fatalf("b should have its own bucket")
	}

	limiter.Forget("a")
	if !limiter.Allow("a") {
		t.Fatalf("forgotten key should start with a fresh bucket")
	}
}

func TestLimiterDisabled(t *testing.T) {
	t.Parallel()

	limiter := NewLimiter(0, 1)
	for i := 0; i < 10; i++ {
		if !limiter.Allow("a") {
			t.Fatalf("disabled limiter rejected request %d", i)
		}
	}
	var nilLimiter *Limiter
	if !nilLimiter.Allow("a") {
		t.Fatalf("nil limiter should allow")
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Parallel()

	limiter := NewLimiter(0.001, 1)
	h := RateLimit(limiter, func(r *http.Request) string {
		return r.Header.Get("X-Key")
	}, nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	codes := make([]int, 0, 3)
	for _, key := range []string{"a", "a", "b"} {
		req := httptest.NewRequest(http.MethodPost, "/ventures/axis/toggle", nil)
		req.Header.Set("X-Key", key)
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		codes = append(codes, rr.Code)
	}
	want := []int{http.StatusNoContent, http.StatusTooManyRequests, http.StatusNoContent}
	for i := range want {
		if codes[i] != want[i] {
			t.Fatalf("codes = %v, want %v", codes, want)
		}
	}
}
