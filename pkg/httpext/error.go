package httpext

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

// ErrorResponse is the JSON error envelope every failure path returns.
// Type carries the machine-readable error tag; Error is the user-facing
// message and never contains upstream internals.
type ErrorResponse struct {
	Error string `json:"error"`
	Type  string `json:"type"`
}

// JsonError writes an ErrorResponse with the specified status code.
func JsonError(w http.ResponseWriter, message, errType string, code int) {
	response := ErrorResponse{
		Error: message,
		Type:  errType,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error().Err(err).Msg("Failed to encode error response")
		http.Error(w, "{\"error\":\"Internal server error\",\"type\":\"server_error\"}", http.StatusInternalServerError)
		return
	}
}

// JsonResponse writes an arbitrary payload as JSON with the specified status
// code.
func JsonResponse(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
		http.Error(w, "{\"error\":\"Internal server error\",\"type\":\"server_error\"}", http.StatusInternalServerError)
		return
	}
}
