package indexedset

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with indexedset-specific helpers.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithSet adds a set name field to the logger (useful when one process
// hosts several collections).
func (l *Logger) WithSet(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("set", name),
	}
}

// LogAdd logs an add operation.
func (l *Logger) LogAdd(added bool, size int) {
	l.Debug("add completed",
		"added", added,
		"size", size,
	)
}

// LogRemove logs a remove operation.
func (l *Logger) LogRemove(removed bool, size int) {
	l.Debug("remove completed",
		"removed", removed,
		"size", size,
	)
}

// LogRemoveByField logs a by-field removal.
func (l *Logger) LogRemoveByField(index string, removed int) {
	l.Debug("remove by field completed",
		"index", index,
		"removed", removed,
	)
}

// LogClear logs a clear operation.
func (l *Logger) LogClear(removed int) {
	l.Debug("clear completed",
		"removed", removed,
	)
}
