package logger

import (
	"context"
	"log/slog"
)

// contextKey is an unexported type used as a context key for loggers, so that
// values stored by this package cannot collide with keys from other packages.
type contextKey struct{}

// WithLogger returns a copy of ctx carrying the given logger. Request-scoped
// middleware uses this to thread a logger enriched with request attributes
// (trace ID, method, path) down into stores and services.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext retrieves the logger carried by ctx.
// Returns nil if the context carries no logger.
func FromContext(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(contextKey{}).(*slog.Logger)
	return logger
}

// FromContextOrDefault retrieves the logger carried by ctx, falling back to
// the given default when the context carries none. If the default is also
// nil, the process-wide slog default logger is returned.
func FromContextOrDefault(ctx context.Context, def *slog.Logger) *slog.Logger {
	if logger := FromContext(ctx); logger != nil {
		return logger
	}
	if def != nil {
		return def
	}
	return slog.Default()
}
