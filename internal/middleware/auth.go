package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"pusaka-newsletter/internal/domain"
)

const (
	// ActorKey is the context key for the authenticated actor
	ActorKey = "actor"
	// SessionKey is the context key for the authenticated session
	SessionKey = "session"

	bearerPrefix = "Bearer "
)

var errMissingToken = errors.New("missing bearer token")

// Claims are the token claims issued by the auth service.
type Claims struct {
	Role  string `json:"role"`
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Session is an authenticated request's identity. ExpiresAt comes from the
// token's exp claim and is the only session expiry the service knows about.
type Session struct {
	Actor     domain.Actor
	ExpiresAt time.Time
}

// TokenVerifier validates HMAC signed bearer tokens.
type TokenVerifier struct {
	secret []byte
	issuer string
	now    func() time.Time
}

// NewTokenVerifier creates a verifier. An empty issuer disables the iss check.
func NewTokenVerifier(secret, issuer string) *TokenVerifier {
	return &TokenVerifier{
		secret: []byte(secret),
		issuer: issuer,
		now:    time.Now,
	}
}

// Verify parses the token and returns the session it describes.
func (v *TokenVerifier) Verify(tokenString string) (*Session, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(v.now),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}
	if claims.Subject == "" {
		return nil, errors.New("token has no subject")
	}
	if !domain.IsValidRole(claims.Role) {
		return nil, fmt.Errorf("token has unknown role %q", claims.Role)
	}

	return &Session{
		Actor: domain.Actor{
			UserID: claims.Subject,
			Email:  claims.Email,
			Role:   domain.Role(claims.Role),
		},
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// Authenticate rejects requests without a valid bearer token with 401 and
// stores the actor and session in the context otherwise.
func Authenticate(v *TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := sessionFromRequest(c, v)
		if err != nil {
			Logger(c).Debug("authentication failed", "error", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		setSession(c, session)
		c.Next()
	}
}

// OptionalAuthenticate lets anonymous requests through. A token that is
// present but invalid is still rejected with 401.
func OptionalAuthenticate(v *TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := sessionFromRequest(c, v)
		if errors.Is(err, errMissingToken) {
			c.Next()
			return
		}
		if err != nil {
			Logger(c).Debug("authentication failed", "error", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		setSession(c, session)
		c.Next()
	}
}

// RequireRoles aborts with 403 unless the authenticated actor has one of roles.
// It must run after Authenticate.
func RequireRoles(roles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		for _, r := range roles {
			if actor.Role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	}
}

// GetActor retrieves the authenticated actor from the gin context.
func GetActor(c *gin.Context) (domain.Actor, bool) {
	if v, exists := c.Get(ActorKey); exists {
		if actor, ok := v.(domain.Actor); ok {
			return actor, true
		}
	}
	return domain.Actor{}, false
}

// GetSession retrieves the authenticated session from the gin context.
func GetSession(c *gin.Context) (*Session, bool) {
	if v, exists := c.Get(SessionKey); exists {
		if s, ok := v.(*Session); ok {
			return s, true
		}
	}
	return nil, false
}

func sessionFromRequest(c *gin.Context, v *TokenVerifier) (*Session, error) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return nil, errMissingToken
	}
	if !strings.HasPrefix(header, bearerPrefix) {
		return nil, errors.New("authorization header is not a bearer token")
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	if token == "" {
		return nil, errMissingToken
	}
	return v.Verify(token)
}

func setSession(c *gin.Context, s *Session) {
	c.Set(ActorKey, s.Actor)
	c.Set(SessionKey, s)
}
