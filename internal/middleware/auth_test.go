package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pusaka-newsletter/internal/domain"
	"pusaka-newsletter/internal/middleware"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims middleware.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func validClaims(role domain.Role) middleware.Claims {
	return middleware.Claims{
		Role:  string(role),
		Email: "editor@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			Issuer:    "pusaka-auth",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func newAuthRouter(v *middleware.TokenVerifier, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handlers := append([]gin.HandlerFunc{middleware.Authenticate(v)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		actor, _ := middleware.GetActor(c)
		session, _ := middleware.GetSession(c)
		c.JSON(http.StatusOK, gin.H{
			"user_id":    actor.UserID,
			"role":       actor.Role,
			"expires_at": session.ExpiresAt.Unix(),
		})
	})
	router.GET("/protected", handlers...)
	return router
}

func TestAuthenticate(t *testing.T) {
	verifier := middleware.NewTokenVerifier(testSecret, "pusaka-auth")

	t.Run("valid token sets actor and session expiry", func(t *testing.T) {
		claims := validClaims(domain.RoleEditor)
		router := newAuthRouter(verifier)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, claims))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "user-1", body["user_id"])
		assert.Equal(t, "EDITOR", body["role"])
		assert.Equal(t, float64(claims.ExpiresAt.Unix()), body["expires_at"])
	})

	tests := []struct {
		name   string
		header func(t *testing.T) string
	}{
		{"missing header", func(t *testing.T) string { return "" }},
		{"not bearer", func(t *testing.T) string { return "Basic dXNlcjpwdw==" }},
		{"wrong secret", func(t *testing.T) string {
			return "Bearer " + signToken(t, "other-secret", validClaims(domain.RoleEditor))
		}},
		{"expired", func(t *testing.T) string {
			c := validClaims(domain.RoleEditor)
			c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
			return "Bearer " + signToken(t, testSecret, c)
		}},
		{"no expiry", func(t *testing.T) string {
			c := validClaims(domain.RoleEditor)
			c.ExpiresAt = nil
			return "Bearer " + signToken(t, testSecret, c)
		}},
		{"wrong issuer", func(t *testing.T) string {
			c := validClaims(domain.RoleEditor)
			c.Issuer = "someone-else"
			return "Bearer " + signToken(t, testSecret, c)
		}},
		{"unknown role", func(t *testing.T) string {
			c := validClaims(domain.RoleEditor)
			c.Role = "JANITOR"
			return "Bearer " + signToken(t, testSecret, c)
		}},
		{"no subject", func(t *testing.T) string {
			c := validClaims(domain.RoleEditor)
			c.Subject = ""
			return "Bearer " + signToken(t, testSecret, c)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newAuthRouter(verifier)
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if h := tt.header(t); h != "" {
				req.Header.Set("Authorization", h)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), "unauthorized")
		})
	}
}

func TestRequireRoles(t *testing.T) {
	verifier := middleware.NewTokenVerifier(testSecret, "")

	tests := []struct {
		name     string
		role     domain.Role
		expected int
	}{
		{"admin allowed", domain.RoleAdmin, http.StatusOK},
		{"super admin allowed", domain.RoleSuperAdmin, http.StatusOK},
		{"editor forbidden", domain.RoleEditor, http.StatusForbidden},
		{"customer forbidden", domain.RoleCustomer, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newAuthRouter(verifier, middleware.RequireRoles(domain.RoleAdmin, domain.RoleSuperAdmin))
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, validClaims(tt.role)))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expected, w.Code)
		})
	}
}

func TestOptionalAuthenticate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	verifier := middleware.NewTokenVerifier(testSecret, "")

	router := gin.New()
	router.GET("/public", middleware.OptionalAuthenticate(verifier), func(c *gin.Context) {
		_, ok := middleware.GetActor(c)
		c.JSON(http.StatusOK, gin.H{"authenticated": ok})
	})

	t.Run("anonymous passes through", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/public", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"authenticated":false}`, w.Body.String())
	})

	t.Run("valid token is picked up", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/public", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, validClaims(domain.RoleEditor)))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"authenticated":true}`, w.Body.String())
	})

	t.Run("invalid token is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/public", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestGetActor_NotSet(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := middleware.GetActor(c)
	assert.False(t, ok)
	_, ok = middleware.GetSession(c)
	assert.False(t, ok)
}
