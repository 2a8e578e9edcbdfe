package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pusaka-newsletter/internal/domain"
	"pusaka-newsletter/internal/middleware"
	"pusaka-newsletter/internal/workflow"
)

// respondError maps service errors to HTTP responses.
func respondError(c *gin.Context, err error) {
	var (
		verr *domain.ValidationError
		terr *workflow.TransitionError
	)

	status := http.StatusInternalServerError
	body := gin.H{"error": "internal server error"}

	switch {
	case errors.As(err, &verr):
		status = http.StatusBadRequest
		body = gin.H{"error": "validation failed", "fields": verr.Fields}
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrConfirmationRequired):
		status = http.StatusBadRequest
		body = gin.H{"error": err.Error()}
	case errors.As(err, &terr):
		status = http.StatusForbidden
		body = gin.H{"error": "transition not allowed", "from": terr.From, "to": terr.To}
	case errors.Is(err, domain.ErrForbidden):
		status = http.StatusForbidden
		body = gin.H{"error": "forbidden"}
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
		body = gin.H{"error": "not found"}
	case errors.Is(err, domain.ErrArchiveInstead):
		status = http.StatusConflict
		body = gin.H{"error": "archive instead"}
	case errors.Is(err, domain.ErrPlanUnavailable):
		status = http.StatusConflict
		body = gin.H{"error": "plan not available"}
	case errors.Is(err, domain.ErrConflict):
		status = http.StatusConflict
		body = gin.H{"error": "conflict"}
	case errors.Is(err, domain.ErrUpstream):
		status = http.StatusBadGateway
		body = gin.H{"error": "payment gateway unavailable"}
	}

	log := middleware.Logger(c).With(
		slog.String("path", c.FullPath()),
		slog.Int("status", status),
		slog.String("error", err.Error()),
	)
	if status >= http.StatusInternalServerError {
		log.ErrorContext(c.Request.Context(), "Request failed")
	} else {
		log.InfoContext(c.Request.Context(), "Request rejected")
	}

	c.JSON(status, body)
}

// respondBadRequest answers a body or query that could not be parsed.
func respondBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// requireActor returns the authenticated actor or writes 401.
func requireActor(c *gin.Context) (domain.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return domain.Actor{}, false
	}
	return actor, true
}

// idParam returns the :id path parameter. Stored ids are UUIDs, so anything
// else is answered like an unknown id.
func idParam(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if err := uuid.Validate(id); err != nil {
		respondError(c, fmt.Errorf("id %q: %w", id, domain.ErrNotFound))
		return "", false
	}
	return id, true
}
