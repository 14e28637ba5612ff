package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/promptlab/promptlab/pkg/httpext"
	"github.com/promptlab/promptlab/pkg/ratelimit"
)

func TestRateLimit(t *testing.T) {
	t.Run("disabled limiter passes everything", func(t *testing.T) {
		limiter := ratelimit.NewMemoryLimiter(time.Minute, 1)
		wrapped := RateLimit(limiter, false)(okHandler())

		for i := 0; i < 5; i++ {
			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			w := httptest.NewRecorder()
			wrapped.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("Expected status %d on request %d, got %d", http.StatusOK, i+1, w.Code)
			}
		}
	})

	t.Run("over-limit request rejected with taxonomy envelope", func(t *testing.T) {
		limiter := ratelimit.NewMemoryLimiter(time.Minute, 1)
		wrapped := RateLimit(limiter, true)(okHandler())

		first := httptest.NewRecorder()
		wrapped.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/health", nil))
		if first.Code != http.StatusOK {
			t.Fatalf("Expected first request to pass, got %d", first.Code)
		}

		second := httptest.NewRecorder()
		wrapped.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/health", nil))
		if second.Code != http.StatusTooManyRequests {
			t.Fatalf("Expected status %d, got %d", http.StatusTooManyRequests, second.Code)
		}

		var errResp httpext.ErrorResponse
		if err := json.NewDecoder(second.Body).Decode(&errResp); err != nil {
			t.Fatalf("Failed to decode error response: %v", err)
		}
		if errResp.Type != "rate_limit_exceeded" {
			t.Errorf("Expected type rate_limit_exceeded, got %q", errResp.Type)
		}
	})

	t.Run("forwarded header used as key", func(t *testing.T) {
		limiter := ratelimit.NewMemoryLimiter(time.Minute, 1)
		wrapped := RateLimit(limiter, true)(okHandler())

		reqA := httptest.NewRequest(http.MethodGet, "/health", nil)
		reqA.Header.Set("X-Forwarded-For", "10.0.0.1")
		reqB := httptest.NewRequest(http.MethodGet, "/health", nil)
		reqB.Header.Set("X-Forwarded-For", "10.0.0.2")

		wA := httptest.NewRecorder()
		wrapped.ServeHTTP(wA, reqA)
		wB := httptest.NewRecorder()
		wrapped.ServeHTTP(wB, reqB)

		if wA.Code != http.StatusOK || wB.Code != http.StatusOK {
			t.Errorf("Expected distinct clients to be limited independently, got %d and %d", wA.Code, wB.Code)
		}
	})
}
