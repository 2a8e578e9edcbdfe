// Package middleware provides HTTP middleware for the Gin framework.
package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"pusaka-newsletter/internal/metrics"
)

// unobserved routes are scraped or polled too often to be worth a series.
var unobserved = map[string]bool{
	"/metrics": true,
	"/live":    true,
	"/ready":   true,
}

// Metrics records request count, latency and in-flight requests per route.
// Requests refused with 401 or 403 are also counted by the caller's role,
// which is "anonymous" when no token was accepted.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		if unobserved[c.FullPath()] {
			c.Next()
			return
		}

		start := time.Now()
		metrics.HTTPRequestsInFlight.Inc()
		defer metrics.HTTPRequestsInFlight.Dec()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		code := c.Writer.Status()
		status := strconv.Itoa(code)

		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())

		if code == http.StatusUnauthorized || code == http.StatusForbidden {
			role := "anonymous"
			if actor, ok := GetActor(c); ok {
				role = string(actor.Role)
			}
			metrics.HTTPAccessDeniedTotal.WithLabelValues(path, status, role).Inc()
		}
	}
}
