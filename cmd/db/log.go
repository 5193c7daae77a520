package db

import (
	"context"
	"log/slog"
)

type symbolLoggerKey struct{}

// ContextWithLogger returns ctx carrying l, usually a logger with symbol
// attached.
func ContextWithLogger(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, symbolLoggerKey{}, l)
}

// ContextLogger returns logger from ctx or def if ctx has no logger.
func ContextLogger(ctx context.Context, def *slog.Logger) *slog.Logger {
	if l, ok := ctx.Value(symbolLoggerKey{}).(*slog.Logger); ok && l != nil {
		return l
	}
	return def
}
