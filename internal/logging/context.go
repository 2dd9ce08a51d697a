package logging

import (
	"context"

	"github.com/charmbracelet/log"
)

// loggerKeyType keeps the context key private to this package.
type loggerKeyType struct{}

//nolint:gochecknoglobals // Package-level context key is idiomatic
var loggerKey = loggerKeyType{}

// FromContext returns the logger stamped into ctx, falling back to the
// package default. Handlers and checkers call this instead of carrying a
// logger parameter through the pipeline.
func FromContext(ctx context.Context) *log.Logger {
	if ctx == nil {
		return Default()
	}
	if logger, ok := ctx.Value(loggerKey).(*log.Logger); ok && logger != nil {
		return logger
	}
	return Default()
}

// WithLogger stamps logger into ctx for later retrieval by FromContext.
func WithLogger(ctx context.Context, logger *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey, logger)
}

// With stamps a child of the context's logger carrying the given fields,
// so downstream log lines share request-scoped attributes.
func With(ctx context.Context, keyvals ...any) context.Context {
	return WithLogger(ctx, FromContext(ctx).With(keyvals...))
}
