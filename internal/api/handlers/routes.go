package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/promptlab/promptlab/internal/api/middleware"
	"github.com/promptlab/promptlab/internal/config"
	"github.com/promptlab/promptlab/internal/metrics"
	"github.com/promptlab/promptlab/internal/services/chat"
	"github.com/promptlab/promptlab/pkg/httpext"
	"github.com/promptlab/promptlab/pkg/ratelimit"
)

// NewRouter wires the HTTP surface: the chat route, liveness, metrics, and
// the middleware chain built from startup configuration.
func NewRouter(cfg *config.Config, chatService chat.Service, globalLimiter, chatLimiter ratelimit.Limiter) *mux.Router {
	r := mux.NewRouter()

	r.Use(middleware.Recovery)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.RateLimit(globalLimiter, cfg.RateLimit.Enabled))

	r.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		HandleHealth(cfg.Environment, w, req)
	}).Methods(http.MethodGet)

	r.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.RateLimit(chatLimiter, cfg.RateLimit.Enabled))
	api.HandleFunc("/chat", func(w http.ResponseWriter, req *http.Request) {
		HandleChat(chatService, w, req)
	}).Methods(http.MethodPost)

	r.NotFoundHandler = notFoundHandler()
	r.MethodNotAllowedHandler = notFoundHandler()

	return r
}

func notFoundHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		httpext.JsonError(w, "Endpoint not found", "not_found", http.StatusNotFound)
	})
}
