package boltzvec

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with solver-specific field helpers, so every
// solve, time-step and operator log line carries the same field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger on the given handler. A nil handler falls back
// to an info-level text handler on stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NoopLogger creates a Logger that discards all output. It is the default
// for solvers constructed without WithLogger.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{Logger: slog.New(handler)}
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// LogSolve logs a full solve.
func (l *Logger) LogSolve(ctx context.Context, steps int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "solve failed",
			"steps", steps,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "solve completed",
			"steps", steps,
		)
	}
}

// LogTimeSteps logs an incremental time-stepping request.
func (l *Logger) LogTimeSteps(ctx context.Context, n, produced int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "time stepping failed",
			"requested", n,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "time stepping completed",
			"requested", n,
			"produced", produced,
		)
	}
}

// LogApply logs an operator application over an array.
func (l *Logger) LogApply(ctx context.Context, op string, count int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "operator application failed",
			"operator", op,
			"count", count,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "operator applied",
			"operator", op,
			"count", count,
		)
	}
}
