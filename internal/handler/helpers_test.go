package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"pusaka-newsletter/internal/domain"
	"pusaka-newsletter/internal/middleware"
	"pusaka-newsletter/internal/mocks"
	"pusaka-newsletter/internal/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const (
	testSecret = "handler-test-secret"
	articleID  = "3f1c2b0e-7c55-4a8e-9d0f-0b6c1f2a9e11"
	editionID  = "8d5e3c1a-2b4f-4c6d-9e8f-1a2b3c4d5e6f"
)

var (
	editorActor     = domain.Actor{UserID: "editor-1", Email: "editor@example.com", Role: domain.RoleEditor}
	publisherActor  = domain.Actor{UserID: "publisher-1", Role: domain.RolePublisher}
	adminActor      = domain.Actor{UserID: "admin-1", Role: domain.RoleAdmin}
	superAdminActor = domain.Actor{UserID: "root", Role: domain.RoleSuperAdmin}
	customerActor   = domain.Actor{UserID: "reader-1", Email: "reader@example.com", Role: domain.RoleCustomer}
)

type fakePinger struct {
	err error
}

func (p fakePinger) Ping(context.Context) error {
	return p.err
}

type testServer struct {
	router        *gin.Engine
	articles      *mocks.MockArticleServiceInterface
	editions      *mocks.MockEditionServiceInterface
	blogs         *mocks.MockBlogServiceInterface
	subscriptions *mocks.MockSubscriptionServiceInterface
	exports       *mocks.MockExportServiceInterface
	feed          *mocks.MockFeedServiceInterface
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	v := validator.NewValidator()
	s := &testServer{
		router:        gin.New(),
		articles:      mocks.NewMockArticleServiceInterface(t),
		editions:      mocks.NewMockEditionServiceInterface(t),
		blogs:         mocks.NewMockBlogServiceInterface(t),
		subscriptions: mocks.NewMockSubscriptionServiceInterface(t),
		exports:       mocks.NewMockExportServiceInterface(t),
		feed:          mocks.NewMockFeedServiceInterface(t),
	}
	s.router.Use(middleware.RequestID())
	RegisterRoutes(s.router, Handlers{
		Articles:      NewArticleHandler(s.articles, v),
		Editions:      NewEditionHandler(s.editions, v),
		Blogs:         NewBlogHandler(s.blogs, v),
		Subscriptions: NewSubscriptionHandler(s.subscriptions, v),
		Exports:       NewExportHandler(s.exports),
		Feed:          NewFeedHandler(s.feed),
		Health:        NewHealthHandler(fakePinger{}, "test"),
	}, middleware.NewTokenVerifier(testSecret, ""))
	return s
}

func tokenFor(t *testing.T, actor domain.Actor) string {
	t.Helper()
	claims := middleware.Claims{
		Role:  string(actor.Role),
		Email: actor.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actor.UserID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

// do sends a request as actor. A zero actor sends no token.
func (s *testServer) do(t *testing.T, actor domain.Actor, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if actor.UserID != "" {
		req.Header.Set("Authorization", "Bearer "+tokenFor(t, actor))
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func sampleArticle(status domain.ArticleStatus) *domain.Article {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	return &domain.Article{
		ID:        articleID,
		Title:     "Harvest Notes",
		Content:   "<p>Rice fields after the rain.</p>",
		Excerpt:   "Rice fields after the rain.",
		Slug:      "harvest-notes",
		Status:    status,
		AuthorID:  editorActor.UserID,
		ReadTime:  1,
		Version:   2,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
