package handlers

import (
	"net/http"
	"time"

	"github.com/promptlab/promptlab/internal/services/chat/models"
	"github.com/promptlab/promptlab/pkg/httpext"
)

// HandleHealth handles GET /health, a no-op liveness check.
func HandleHealth(environment string, w http.ResponseWriter, _ *http.Request) {
	httpext.JsonResponse(w, http.StatusOK, models.HealthResponse{
		Status:      "ok",
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Environment: environment,
	})
}
