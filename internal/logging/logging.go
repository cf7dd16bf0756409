// Package logging configures zerolog for the calculator's CLI and server
// surfaces.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Output formats.
const (
	// FormatConsole selects the human-readable console writer.
	FormatConsole = "console"

	// FormatJSON selects structured JSON output.
	FormatJSON = "json"
)

// NewLogger builds a logger writing to w at the given level and format.
// An unparseable level falls back to info; an unknown format falls back to
// JSON.
func NewLogger(w io.Writer, level, format string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	if format == FormatConsole {
		w = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
		}
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

// NewStderrLogger builds a logger writing to stderr.
func NewStderrLogger(level, format string) zerolog.Logger {
	return NewLogger(os.Stderr, level, format)
}

// ComponentLogger returns a child logger tagged with a component name so
// log lines can be attributed to the subsystem that emitted them.
func ComponentLogger(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}
