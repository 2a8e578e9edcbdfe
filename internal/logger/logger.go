package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"pusaka-newsletter/internal/domain"
)

var defaultLogger *slog.Logger

func init() {
	// JSON on stdout until Configure is called with the configured level
	defaultLogger = New(os.Stdout, "info")
}

// New builds a JSON logger writing to w at the given level (debug, info, warn, error).
// Unknown levels fall back to info.
func New(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	}))
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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

// Configure replaces the default logger with one at the given level and
// makes it the slog default as well.
func Configure(level string) {
	defaultLogger = New(os.Stdout, level)
	slog.SetDefault(defaultLogger)
}

// SetLogger allows setting a custom logger (useful for testing)
func SetLogger(logger *slog.Logger) {
	defaultLogger = logger
}

// GetLogger returns the default logger
func GetLogger() *slog.Logger {
	return defaultLogger
}

// Default returns the default logger (alias for GetLogger)
func Default() *slog.Logger {
	return defaultLogger
}

// Info logs an info message with optional attributes
func Info(msg string, args ...any) {
	defaultLogger.Info(msg, args...)
}

// InfoContext logs an info message with context
func InfoContext(ctx context.Context, msg string, args ...any) {
	defaultLogger.InfoContext(ctx, msg, args...)
}

// Error logs an error message with optional attributes
func Error(msg string, args ...any) {
	defaultLogger.Error(msg, args...)
}

// ErrorContext logs an error message with context
func ErrorContext(ctx context.Context, msg string, args ...any) {
	defaultLogger.ErrorContext(ctx, msg, args...)
}

// Warn logs a warning message with optional attributes
func Warn(msg string, args ...any) {
	defaultLogger.Warn(msg, args...)
}

// WarnContext logs a warning message with context
func WarnContext(ctx context.Context, msg string, args ...any) {
	defaultLogger.WarnContext(ctx, msg, args...)
}

// Debug logs a debug message with optional attributes
func Debug(msg string, args ...any) {
	defaultLogger.Debug(msg, args...)
}

// Fatal logs a fatal message and exits
func Fatal(msg string, args ...any) {
	defaultLogger.Error(msg, args...)
	os.Exit(1)
}

// WithRequestID adds request_id to logger context
func WithRequestID(requestID string) *slog.Logger {
	return defaultLogger.With(slog.String("request_id", requestID))
}

// WithActor adds the acting user and role to logger context
func WithActor(actor domain.Actor) *slog.Logger {
	return defaultLogger.With(
		slog.String("actor_id", actor.UserID),
		slog.String("actor_role", string(actor.Role)),
	)
}

// WithFields creates a logger with multiple fields
func WithFields(attrs ...slog.Attr) *slog.Logger {
	args := make([]any, len(attrs))
	for i, attr := range attrs {
		args[i] = attr
	}
	return defaultLogger.With(args...)
}
