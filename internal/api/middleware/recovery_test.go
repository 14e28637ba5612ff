package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/promptlab/promptlab/pkg/httpext"
)

func TestRecovery(t *testing.T) {
	panicking := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom: secret internal state")
	})

	wrapped := Recovery(panicking)

	req := httptest.NewRequest(http.MethodPost, "/api/chat", nil)
	w := httptest.NewRecorder()

	wrapped.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("Expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}

	var errResp httpext.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&errResp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}

	if errResp.Error != "Internal server error" {
		t.Errorf("Expected sanitized message, got %q", errResp.Error)
	}
	if errResp.Type != "server_error" {
		t.Errorf("Expected type server_error, got %q", errResp.Type)
	}
}
