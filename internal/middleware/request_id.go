package middleware

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pusaka-newsletter/internal/logger"
)

const (
	// RequestIDHeader is the header name for request ID
	RequestIDHeader = "X-Request-ID"
	// RequestIDKey is the context key for request ID
	RequestIDKey = "request_id"
	// LoggerKey is the context key for the request scoped logger
	LoggerKey = "logger"

	maxRequestIDLength = 128
)

// RequestID middleware adds a unique request ID to each request.
// A client supplied X-Request-ID is reused when it is non-empty and short enough;
// otherwise a new UUID is generated. A logger carrying the id is stored alongside it.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" || len(requestID) > maxRequestIDLength {
			requestID = uuid.New().String()
		}

		c.Set(RequestIDKey, requestID)
		c.Set(LoggerKey, logger.WithRequestID(requestID))
		c.Header(RequestIDHeader, requestID)

		c.Next()
	}
}

// GetRequestID retrieves the request ID from the gin context.
func GetRequestID(c *gin.Context) string {
	if requestID, exists := c.Get(RequestIDKey); exists {
		if id, ok := requestID.(string); ok {
			return id
		}
	}
	return ""
}

// Logger returns the request scoped logger, enriched with the actor when the
// request is authenticated. Falls back to the process logger.
func Logger(c *gin.Context) *slog.Logger {
	l := logger.Default()
	if v, exists := c.Get(LoggerKey); exists {
		if scoped, ok := v.(*slog.Logger); ok {
			l = scoped
		}
	}
	if actor, ok := GetActor(c); ok {
		l = l.With(slog.String("actor_id", actor.UserID), slog.String("actor_role", string(actor.Role)))
	}
	return l
}
