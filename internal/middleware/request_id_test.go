package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pusaka-newsletter/internal/logger"
	"pusaka-newsletter/internal/middleware"
)

func TestRequestID_GeneratesNewID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.RequestID())

	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": middleware.GetRequestID(c)})
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	requestID := w.Header().Get(middleware.RequestIDHeader)
	assert.NotEmpty(t, requestID)
	assert.Len(t, requestID, 36)
}

func TestRequestID_UsesClientProvidedID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.RequestID())

	var seen string
	router.GET("/test", func(c *gin.Context) {
		seen = middleware.GetRequestID(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(middleware.RequestIDHeader, "client-provided-id-12345")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "client-provided-id-12345", seen)
	assert.Equal(t, "client-provided-id-12345", w.Header().Get(middleware.RequestIDHeader))
}

func TestRequestID_ReplacesOversizedID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.RequestID())
	router.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(middleware.RequestIDHeader, strings.Repeat("x", 500))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Len(t, w.Header().Get(middleware.RequestIDHeader), 36)
}

func TestGetRequestID_NotSet(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Empty(t, middleware.GetRequestID(c))
}

func TestRequestID_UniquePerRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.RequestID())
	router.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

	var requestIDs []string
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
		requestIDs = append(requestIDs, w.Header().Get(middleware.RequestIDHeader))
	}

	require.Len(t, requestIDs, 3)
	assert.NotEqual(t, requestIDs[0], requestIDs[1])
	assert.NotEqual(t, requestIDs[1], requestIDs[2])
	assert.NotEqual(t, requestIDs[0], requestIDs[2])
}

func TestLogger_CarriesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	original := logger.GetLogger()
	logger.SetLogger(slog.New(slog.NewJSONHandler(&buf, nil)))
	defer logger.SetLogger(original)

	router := gin.New()
	router.Use(middleware.RequestID())
	router.GET("/test", func(c *gin.Context) {
		middleware.Logger(c).Info("handled")
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-42")
	router.ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"request_id":"req-42"`)
	assert.Contains(t, buf.String(), `"msg":"handled"`)
}
