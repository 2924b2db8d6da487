// Package logging configures the CLI's zerolog logger once per process.
// The core roman package is pure and never logs; only the command surface
// does.
package logging

import (
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

var (
	configureOnce sync.Once
	logger        zerolog.Logger
)

// Configure installs a console logger on stderr at the given level. Only
// the first call has any effect. Unknown level names fall back to info.
func Configure(level string) {
	configureOnce.Do(func() {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(parseLevel(level)).
			With().Timestamp().Logger()
	})
}

// L returns the process logger, configuring it at info level if nothing
// configured it yet.
func L() *zerolog.Logger {
	Configure("info")

	return &logger
}

func parseLevel(raw string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off", "none":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}
