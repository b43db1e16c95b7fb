package primecount

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with primecount-specific context.
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
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithN adds the run bound to the logger.
func (l *Logger) WithN(n uint64) *Logger {
	return &Logger{
		Logger: l.Logger.With("n", n),
	}
}

// LogBase logs the factor-base phase of a run.
func (l *Logger) LogBase(ctx context.Context, n, bound, primes, last uint64) {
	l.DebugContext(ctx, "factor base built",
		"n", n,
		"bound", bound,
		"primes", primes,
		"last", last,
	)
}

// LogRun logs a completed or failed run.
func (l *Logger) LogRun(ctx context.Context, res Result, err error) {
	if err != nil {
		l.ErrorContext(ctx, "run failed",
			"n", res.N,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "run completed",
			"n", res.N,
			"primes", res.Count,
			"last", res.LastPrime,
			"slices", res.Slices,
			"workers", res.Workers,
			"elapsed", res.Elapsed,
		)
	}
}
