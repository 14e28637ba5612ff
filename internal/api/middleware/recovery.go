package middleware

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/promptlab/promptlab/pkg/httpext"
)

// Recovery converts handler panics into a sanitized 500 so that no stack
// detail reaches the client.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error().
					Interface("panic", rec).
					Str("path", r.URL.Path).
					Msg("Recovered from handler panic")
				httpext.JsonError(w, "Internal server error", "server_error", http.StatusInternalServerError)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
