package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"pusaka-newsletter/internal/domain"
	"pusaka-newsletter/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_Info(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	testLogger := slog.New(handler)
	logger.SetLogger(testLogger)

	logger.Info("test message",
		slog.String("key", "value"),
		slog.Int("count", 42),
	)

	output := buf.String()
	assert.Contains(t, output, "test message")
	assert.Contains(t, output, "key")
	assert.Contains(t, output, "value")
	assert.Contains(t, output, "count")
	assert.Contains(t, output, "42")
}

func TestLogger_Error(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelError,
	})
	testLogger := slog.New(handler)
	logger.SetLogger(testLogger)

	logger.Error("error occurred",
		slog.String("error", "test error"),
	)

	output := buf.String()
	assert.Contains(t, output, "error occurred")
	assert.Contains(t, output, "test error")
}

func TestLogger_WithRequestID(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	testLogger := slog.New(handler)
	logger.SetLogger(testLogger)

	reqLogger := logger.WithRequestID("req-123")
	reqLogger.Info("processing request")

	output := buf.String()
	assert.Contains(t, output, "processing request")
	assert.Contains(t, output, "request_id")
	assert.Contains(t, output, "req-123")
}

func TestLogger_WithActor(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	testLogger := slog.New(handler)
	logger.SetLogger(testLogger)

	actorLogger := logger.WithActor(domain.Actor{UserID: "user-456", Role: domain.RolePublisher})
	actorLogger.Info("reviewing article")

	output := buf.String()
	assert.Contains(t, output, "reviewing article")
	assert.Contains(t, output, "actor_id")
	assert.Contains(t, output, "user-456")
	assert.Contains(t, output, "PUBLISHER")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.ParseLevel(tt.in))
		})
	}
}

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.New(&buf, "warn")

	lg.Info("hidden")
	lg.Warn("shown")

	output := buf.String()
	assert.NotContains(t, output, "hidden")
	assert.Contains(t, output, "shown")
}

func TestLogger_InfoContext(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	testLogger := slog.New(handler)
	logger.SetLogger(testLogger)

	ctx := context.Background()
	logger.InfoContext(ctx, "context message",
		slog.String("key", "value"),
	)

	output := buf.String()
	assert.Contains(t, output, "context message")
	assert.Contains(t, output, "key")
	assert.Contains(t, output, "value")
}

func TestLogger_GetLogger(t *testing.T) {
	lg := logger.GetLogger()
	require.NotNil(t, lg)
}

func TestLogger_Default(t *testing.T) {
	lg := logger.Default()
	require.NotNil(t, lg)
	// Default() should return the same instance as GetLogger()
	assert.Equal(t, logger.GetLogger(), lg)
}

func TestLogger_WithFields(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	testLogger := slog.New(handler)
	logger.SetLogger(testLogger)

	fieldsLogger := logger.WithFields(
		slog.String("service", "editorial"),
		slog.Int("page_size", 50),
	)
	fieldsLogger.Info("listing articles")

	output := buf.String()
	assert.Contains(t, output, "listing articles")
	assert.Contains(t, output, "service")
	assert.Contains(t, output, "editorial")
	assert.Contains(t, output, "page_size")
	assert.Contains(t, output, "50")
}
