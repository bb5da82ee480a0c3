package sievego

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with sievego-specific context.
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

// WithN adds the counted limit n to the logger.
func (l *Logger) WithN(n uint64) *Logger {
	return &Logger{
		Logger: l.Logger.With("n", n),
	}
}

// WithWorkers adds a worker-count field to the logger.
func (l *Logger) WithWorkers(workers int) *Logger {
	return &Logger{
		Logger: l.Logger.With("workers", workers),
	}
}

// LogCount logs a completed (or failed) counting run.
func (l *Logger) LogCount(ctx context.Context, res Result, err error) {
	if err != nil {
		l.ErrorContext(ctx, "count failed",
			"n", res.N,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "count completed",
		"n", res.N,
		"count", res.Count,
		"segments", res.Segments,
		"workers", res.Workers,
		"elapsed", res.Elapsed,
	)
}
