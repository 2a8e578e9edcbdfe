package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/cors"
)

// CORS adapts go-chi/cors to gin. Preflight requests are answered by the cors
// handler and the rest of the chain is skipped.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	handler := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", RequestIDHeader},
		ExposedHeaders:   []string{RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}).Handler

	return func(c *gin.Context) {
		passed := false
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			passed = true
			c.Request = r
			c.Next()
		})
		handler(next).ServeHTTP(c.Writer, c.Request)
		if !passed {
			c.Abort()
		}
	}
}
