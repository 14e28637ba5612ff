package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
}

func TestCORS(t *testing.T) {
	t.Run("allowed origin echoed back", func(t *testing.T) {
		wrapped := CORS([]string{"https://app.example.com"})(okHandler())

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("Origin", "https://app.example.com")
		w := httptest.NewRecorder()

		wrapped.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
			t.Errorf("Expected origin to be echoed, got %q", got)
		}
	})

	t.Run("disallowed origin gets no header", func(t *testing.T) {
		wrapped := CORS([]string{"https://app.example.com"})(okHandler())

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		w := httptest.NewRecorder()

		wrapped.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Errorf("Expected no CORS header, got %q", got)
		}
	})

	t.Run("wildcard allows any origin", func(t *testing.T) {
		wrapped := CORS([]string{"*"})(okHandler())

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("Origin", "https://anywhere.example.com")
		w := httptest.NewRecorder()

		wrapped.ServeHTTP(w, req)

		got := w.Header().Get("Access-Control-Allow-Origin")
		if got != "*" && got != "https://anywhere.example.com" {
			t.Errorf("Expected wildcard or origin, got %q", got)
		}
	})

	t.Run("preflight answered with 204", func(t *testing.T) {
		wrapped := CORS([]string{"*"})(okHandler())

		req := httptest.NewRequest(http.MethodOptions, "/api/chat", nil)
		req.Header.Set("Origin", "https://app.example.com")
		w := httptest.NewRecorder()

		wrapped.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Errorf("Expected status %d, got %d", http.StatusNoContent, w.Code)
		}
		if w.Header().Get("Access-Control-Allow-Methods") == "" {
			t.Error("Expected Access-Control-Allow-Methods to be set on preflight")
		}
	})
}
