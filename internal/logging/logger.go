// Package logging provides structured logging configuration using log/slog.
//
// Each dispatched menu operation carries an operation ID in its context,
// which the loggers returned by FromContext include in every entry. That
// lets the store-level log lines of one operation be correlated even
// though the operator only sees the final message.
package logging

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
)

// Setup configures the global slog logger based on level and format.
//
// Level values: "debug", "info", "warn", "error" (default: "info")
// Format values: "text", "json" (default: "text")
func Setup(level, format string) {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}

	var handler slog.Handler
	if strings.ToLower(format) == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	slog.SetDefault(slog.New(handler))
}

// parseLevel converts a string log level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type opIDKey struct{}

// WithOperationID returns a context tagged with a fresh operation ID.
// The menu loop calls this once per dispatched operation.
func WithOperationID(ctx context.Context) context.Context {
	return context.WithValue(ctx, opIDKey{}, uuid.NewString())
}

// OperationID returns the operation ID stored in ctx, or "" if none is set.
func OperationID(ctx context.Context) string {
	id, _ := ctx.Value(opIDKey{}).(string)
	return id
}

// FromContext returns a logger enriched with the context's operation ID.
//
// Usage:
//
//	logger := logging.FromContext(ctx)
//	logger.Debug("inserting student", "email", email)
func FromContext(ctx context.Context) *slog.Logger {
	logger := slog.Default()

	if id := OperationID(ctx); id != "" {
		logger = logger.With("op_id", id)
	}

	return logger
}
