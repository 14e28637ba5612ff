package middleware

import (
	"net"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/promptlab/promptlab/pkg/httpext"
	"github.com/promptlab/promptlab/pkg/ratelimit"
)

// RateLimit rejects callers that exceed the limiter's budget with a 429
// rate_limit_exceeded envelope. Callers are keyed by IP.
func RateLimit(limiter ratelimit.Limiter, enabled bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !enabled {
				next.ServeHTTP(w, r)
				return
			}

			// Use X-Forwarded-For if behind proxy, otherwise remote address
			ip := r.Header.Get("X-Forwarded-For")
			if ip == "" {
				if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
					ip = host
				} else {
					ip = r.RemoteAddr
				}
			}

			if !limiter.Allow(r.Context(), ip) {
				log.Warn().Str("ip", ip).Str("path", r.URL.Path).Msg("Rate limit exceeded")
				httpext.JsonError(w, "Too many requests, please try again later", "rate_limit_exceeded", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
