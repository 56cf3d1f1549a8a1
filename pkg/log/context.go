package log

import (
	"context"
)

type logCtxKey struct{}

// Context returns a copy of ctx carrying log. The package level functions log
// through it.
func Context(ctx context.Context, log Logger) context.Context {
	return context.WithValue(ctx, logCtxKey{}, log)
}

// FromContext returns the logger set with Context, or nil.
func FromContext(ctx context.Context) Logger {
	l, _ := ctx.Value(logCtxKey{}).(Logger)
	return l
}

// Named adds a segment to the name of the logger in ctx.
func Named(ctx context.Context, s string) context.Context {
	return Context(ctx, getLogger(ctx).Named(s))
}

// With returns a context whose logger carries fields.
func With(ctx context.Context, fields ...Field) context.Context {
	return Context(ctx, getLogger(ctx).With(fields...))
}

// Debug logs a message at DebugLevel with the logger of ctx.
func Debug(ctx context.Context, msg string, fields ...Field) {
	getLogger(ctx).Debug(msg, fields...)
}

// Info logs a message at InfoLevel with the logger of ctx.
func Info(ctx context.Context, msg string, fields ...Field) {
	getLogger(ctx).Info(msg, fields...)
}

// Warn logs a message at WarnLevel with the logger of ctx.
func Warn(ctx context.Context, msg string, fields ...Field) {
	getLogger(ctx).Warn(msg, fields...)
}

// Error logs a message at ErrorLevel with the logger of ctx.
func Error(ctx context.Context, msg string, fields ...Field) {
	getLogger(ctx).Error(msg, fields...)
}

func getLogger(ctx context.Context) Logger {
	if l, ok := ctx.Value(logCtxKey{}).(Logger); ok {
		return l
	}
	return DefaultLogger
}
