package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pusaka-newsletter/internal/domain"
)

func TestSession(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, editorActor, http.MethodGet, "/api/v1/auth/session", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, editorActor.UserID, body["userId"])
	assert.Equal(t, editorActor.Email, body["email"])
	assert.Equal(t, "EDITOR", body["role"])

	expiresAt, err := time.Parse(TimeFormat, body["expiresAt"].(string))
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)
}

func TestSession_Anonymous(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, domain.Actor{}, http.MethodGet, "/api/v1/auth/session", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "unauthorized", decode(t, w)["error"])
}
