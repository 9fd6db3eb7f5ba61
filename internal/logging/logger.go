// Package logging provides structured logging configuration using log/slog.
//
// Every CLI invocation gets a session ID carried through the context, so all
// entries of one run, across every parsed column, can be correlated.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

type contextKey string

const sessionIDKey contextKey = "session_id"

// Setup configures the global slog logger based on level and format.
// Logs go to stderr so that rendered tables on stdout stay clean.
//
// Level values: "debug", "info", "warn", "error" (default: "info")
// Format values: "text", "json" (default: "text")
func Setup(level, format string) {
	slog.SetDefault(New(os.Stderr, level, format))
}

// New builds a logger writing to w.
func New(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}

	var handler slog.Handler
	if strings.ToLower(format) == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
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

// WithSessionID stores a session ID in the context.
func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionIDKey, id)
}

// SessionID returns the session ID stored in ctx, or "".
func SessionID(ctx context.Context) string {
	id, _ := ctx.Value(sessionIDKey).(string)
	return id
}

// FromContext returns the default logger, enriched with the session ID when
// the context carries one.
//
// Usage:
//
//	ctx = logging.WithSessionID(ctx, uuid.NewString())
//	logger := logging.FromContext(ctx)
//	logger.Info("parsing", "file", path)
func FromContext(ctx context.Context) *slog.Logger {
	logger := slog.Default()

	if id := SessionID(ctx); id != "" {
		logger = logger.With(string(sessionIDKey), id)
	}

	return logger
}

// WithFields returns a logger with additional structured fields.
//
// Usage:
//
//	columnLogger := logging.WithFields(ctx, "column", name, "type", typeName)
//	columnLogger.Info("column registered")
func WithFields(ctx context.Context, args ...any) *slog.Logger {
	return FromContext(ctx).With(args...)
}
