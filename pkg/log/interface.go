// Package log provides the structured logging interface used across pimastat.
//
// The Logger interface is slog-compatible in shape (message plus alternating
// key/value fields) so callers never depend on a concrete backend. The default
// backend is zerolog; tests use TestLogger to capture entries as JSON lines.
//
// Example usage:
//
//	logger := log.GetLogger().With(
//	    log.DatasetNameKey, "Pima Indian Diabetes Dataset",
//	)
//	logger.Info("Dataset loaded",
//	    log.SamplesKey, 768,
//	    log.FeaturesKey, 8,
//	)
package log

import (
	"context"
)

// Logger defines a structured logging interface compatible with Go's log/slog.
type Logger interface {
	// Debug logs a debug-level message with optional structured fields.
	Debug(msg string, fields ...any)

	// Info logs an info-level message with optional structured fields.
	Info(msg string, fields ...any)

	// Warn logs a warning-level message with optional structured fields.
	Warn(msg string, fields ...any)

	// Error logs an error-level message. Error values passed as fields are
	// rendered with their stack trace under StacktraceAttrKey when one was
	// recorded by pkg/errors.
	Error(msg string, fields ...any)

	// With returns a new Logger with the given fields pre-populated.
	//
	// Example:
	//   contextLogger := logger.With(log.ComponentKey, "selection")
	//   contextLogger.Info("Partition computed")
	With(fields ...any) Logger

	// Enabled reports whether the logger emits log records at the given level.
	Enabled(ctx context.Context, level Level) bool
}

// Level represents a logging level, compatible with slog.Level.
type Level int

// Standard logging levels, values are compatible with slog.Level.
const (
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}
