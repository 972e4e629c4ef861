// Package evaluator holds the ambient pieces shared by the evaluator
// packages and command.
package evaluator

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger creates a logger writing console output to w at level.
func NewLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	return newLogger(w, level, true)
}

// NewColorLogger is NewLogger with colored output.
func NewColorLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	return newLogger(w, level, false)
}

func newLogger(w io.Writer, level zerolog.Level, noColor bool) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    noColor,
	}
	return zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Str("lib", "evaluator").
		Logger()
}

// NewTestLogger creates a logger for tests; higher verbose means more output.
func NewTestLogger(w io.Writer, verbose int) zerolog.Logger {
	var level zerolog.Level
	switch verbose {
	case 0:
		level = zerolog.WarnLevel
	case 1:
		level = zerolog.InfoLevel
	case 2:
		level = zerolog.DebugLevel
	default:
		level = zerolog.TraceLevel
	}
	return NewLogger(w, level)
}

// LogLevelFromString parses a string to a zerolog.Level.
func LogLevelFromString(levelStr string) (zerolog.Level, error) {
	return zerolog.ParseLevel(strings.ToLower(levelStr))
}

// DefaultLogger returns a logger with default settings (warn level, stderr output).
func DefaultLogger() zerolog.Logger {
	return NewLogger(os.Stderr, zerolog.WarnLevel)
}
