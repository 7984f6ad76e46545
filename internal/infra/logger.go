package infra

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const serviceName = "promptlab"

// NewLogger builds the service logger from cfg. A nil cfg yields the
// production logger, which is what commands use before config has loaded.
func NewLogger(cfg *Config) zerolog.Logger {
	if cfg == nil {
		return newLogger(os.Stdout, "production", "")
	}
	return newLogger(os.Stdout, cfg.AppEnv, cfg.LogLevel)
}

// newLogger writes JSON to w, or console lines in development. level
// overrides the per-environment default when it parses.
func newLogger(w io.Writer, appEnv, level string) zerolog.Logger {
	lvl := zerolog.InfoLevel
	if appEnv == "development" {
		lvl = zerolog.DebugLevel
	}
	if level != "" {
		if parsed, err := zerolog.ParseLevel(strings.ToLower(level)); err == nil && parsed != zerolog.NoLevel {
			lvl = parsed
		}
	}

	out := w
	if appEnv == "development" {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: w != os.Stdout}
	}

	return zerolog.New(out).
		Level(lvl).
		With().
		Timestamp().
		Str("service", serviceName).
		Str("env", appEnv).
		Logger()
}
