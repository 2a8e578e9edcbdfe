package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pusaka-newsletter/internal/middleware"
)

// SessionResponse describes the caller's authenticated session.
type SessionResponse struct {
	UserID    string `json:"userId"`
	Email     string `json:"email,omitempty"`
	Role      string `json:"role"`
	ExpiresAt string `json:"expiresAt"`
}

// Session handles GET /api/v1/auth/session
func Session(c *gin.Context) {
	session, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	c.JSON(http.StatusOK, SessionResponse{
		UserID:    session.Actor.UserID,
		Email:     session.Actor.Email,
		Role:      string(session.Actor.Role),
		ExpiresAt: session.ExpiresAt.UTC().Format(TimeFormat),
	})
}
