package main

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/promptlab/promptlab/internal/api/handlers"
	"github.com/promptlab/promptlab/internal/config"
	openaiinfra "github.com/promptlab/promptlab/internal/infrastructure/openai"
	redisinfra "github.com/promptlab/promptlab/internal/infrastructure/redis"
	"github.com/promptlab/promptlab/internal/logger"
	"github.com/promptlab/promptlab/internal/services/chat"
	"github.com/promptlab/promptlab/pkg/ratelimit"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Configuration error")
	}

	logger.Init(cfg.Environment)

	upstream, err := openaiinfra.NewService(cfg.OpenAIKey)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialise OpenAI client")
	}

	chatService, err := chat.NewService(upstream.Client())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialise chat service")
	}

	globalLimiter, chatLimiter := buildLimiters(cfg)

	router := handlers.NewRouter(cfg, chatService, globalLimiter, chatLimiter)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	log.Info().
		Str("port", cfg.Port).
		Str("environment", cfg.Environment).
		Msg("Server starting")

	if err := server.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("ListenAndServe error")
	}
}

// buildLimiters prefers shared Redis counters when Redis is configured so
// limits hold across instances, and falls back to in-process limiters.
func buildLimiters(cfg *config.Config) (ratelimit.Limiter, ratelimit.Limiter) {
	if cfg.Redis.Addr != "" {
		client, err := redisinfra.NewClient(cfg.Redis)
		if err == nil {
			return ratelimit.NewRedisLimiter(client, "ratelimit:global", cfg.RateLimit.Window, cfg.RateLimit.GlobalMaxHits),
				ratelimit.NewRedisLimiter(client, "ratelimit:chat", cfg.RateLimit.Window, cfg.RateLimit.ChatMaxHits)
		}
		log.Warn().Err(err).Msg("Falling back to in-memory rate limiting")
	}

	return ratelimit.NewMemoryLimiter(cfg.RateLimit.Window, cfg.RateLimit.GlobalMaxHits),
		ratelimit.NewMemoryLimiter(cfg.RateLimit.Window, cfg.RateLimit.ChatMaxHits)
}
