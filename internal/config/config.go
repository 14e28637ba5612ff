package config

import (
	"fmt"
	"strings"
	"time"
)

// Config holds everything the server needs, resolved once at startup.
// Request handling never reads the environment directly.
type Config struct {
	Port           string
	Environment    string
	AllowedOrigins []string

	OpenAIKey string

	RateLimit RateLimitConfig
	Redis     RedisConfig
}

type RateLimitConfig struct {
	Enabled bool
	// Per-minute budgets keyed by route
	GlobalMaxHits int
	ChatMaxHits   int
	Window        time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
}

// Load resolves the full configuration from the environment. It fails when
// the upstream credential is absent so a misconfigured deploy dies at boot
// instead of on the first request.
func Load() (*Config, error) {
	key := GetEnvOrDefault("OPENAI_KEY", "")
	if key == "" {
		return nil, fmt.Errorf("OPENAI_KEY environment variable not set")
	}

	cfg := &Config{
		Port:           GetEnvOrDefault("PORT", "8080"),
		Environment:    GetEnvOrDefault("ENVIRONMENT", "development"),
		AllowedOrigins: splitOrigins(GetEnvOrDefault("ALLOWED_ORIGINS", "*")),
		OpenAIKey:      key,
		RateLimit: RateLimitConfig{
			Enabled:       GetEnvOrDefault("RATELIMIT_ENABLED", "false") == "true",
			GlobalMaxHits: parseEnvInt("RATELIMIT_GLOBAL", 1000),
			ChatMaxHits:   parseEnvInt("RATELIMIT_CHAT", 60),
			Window:        time.Minute,
		},
		Redis: RedisConfig{
			Addr:     GetEnvOrDefault("REDIS_ADDR", ""),
			Password: GetEnvOrDefault("REDIS_PASSWORD", ""),
		},
	}

	return cfg, nil
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
