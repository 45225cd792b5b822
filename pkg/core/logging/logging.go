// Package logging provides structured logging setup using Go's standard library log/slog package.
//
// The logging package configures slog with logfmt format (human-readable key=value pairs)
// and maps the numeric verbosity used in configuration (0=WARNING, 1=INFO, 2=DEBUG)
// as well as string log levels (ERROR, WARNING, INFO, DEBUG) to slog levels.
package logging

import (
	"log/slog"
	"os"
	"strings"
)

// NewLogger creates a new structured logger with the specified log level.
// Supported levels (case-insensitive): ERROR, WARNING, INFO, DEBUG.
// Invalid levels default to INFO. Uses logfmt format for output.
func NewLogger(level string) *slog.Logger {
	return NewLoggerAtLevel(ParseLogLevel(level))
}

// NewLoggerAtLevel creates a new structured logger at the given slog level.
func NewLoggerAtLevel(level slog.Level) *slog.Logger {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})

	return slog.New(handler)
}

// ParseLogLevel converts a string log level to slog.Level.
// Returns slog.LevelInfo for invalid or empty levels (safe default).
func ParseLogLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "ERROR":
		return slog.LevelError
	case "WARNING", "WARN":
		return slog.LevelWarn
	case "INFO":
		return slog.LevelInfo
	case "DEBUG":
		return slog.LevelDebug
	default:
		// Default to INFO for invalid or empty levels
		return slog.LevelInfo
	}
}

// VerboseLevel maps the numeric verbosity from configuration to a slog
// level: 0 = WARNING, 2 = DEBUG, anything else = INFO.
func VerboseLevel(verbose int) slog.Level {
	switch verbose {
	case 0:
		return slog.LevelWarn
	case 2:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}
