package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init configures the global zerolog logger. Level comes from LOG_LEVEL;
// development gets a human-readable console writer, everything else JSON.
func Init(environment string) {
	zerolog.SetGlobalLevel(parseLevel(os.Getenv("LOG_LEVEL")))

	if environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

func parseLevel(raw string) zerolog.Level {
	switch strings.ToLower(raw) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
