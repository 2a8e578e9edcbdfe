package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pusaka-newsletter/internal/domain"
	"pusaka-newsletter/internal/workflow"
)

func TestArticleHandler_ListPublished(t *testing.T) {
	s := newTestServer(t)

	s.articles.EXPECT().
		List(mock.Anything, domain.ArticleFilter{Status: domain.ArticleStatusPublished, Limit: DefaultPageSize}).
		Return([]domain.Article{*sampleArticle(domain.ArticleStatusPublished)}, 1, nil)

	// Status and author filters from anonymous readers are ignored.
	w := s.do(t, domain.Actor{}, http.MethodGet, "/api/v1/articles?status=DRAFT&author_id=editor-1", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, float64(1), body["total"])
	data := body["data"].([]any)
	require.Len(t, data, 1)
	item := data[0].(map[string]any)
	assert.Equal(t, "harvest-notes", item["slug"])
	assert.NotContains(t, item, "content")
}

func TestArticleHandler_ListPublished_InvalidStatus(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, domain.Actor{}, http.MethodGet, "/api/v1/articles?status=LIVE", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_status", decode(t, w)["fields"].(map[string]any)["status"])
}

func TestArticleHandler_GetPublished_NotFound(t *testing.T) {
	s := newTestServer(t)

	s.articles.EXPECT().GetPublishedBySlug(mock.Anything, "missing").Return(nil, domain.ErrNotFound)

	w := s.do(t, domain.Actor{}, http.MethodGet, "/api/v1/articles/missing", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "not found", decode(t, w)["error"])
}

func TestArticleHandler_Create(t *testing.T) {
	t.Run("requires a token", func(t *testing.T) {
		s := newTestServer(t)

		w := s.do(t, domain.Actor{}, http.MethodPost, "/api/v1/articles", map[string]any{"title": "A", "content": "B"})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects roles that cannot author", func(t *testing.T) {
		for _, actor := range []domain.Actor{customerActor, publisherActor, adminActor} {
			s := newTestServer(t)

			w := s.do(t, actor, http.MethodPost, "/api/v1/articles", map[string]any{"title": "A", "content": "B"})

			assert.Equal(t, http.StatusForbidden, w.Code, actor.Role)
		}
	})

	t.Run("validates before calling the service", func(t *testing.T) {
		s := newTestServer(t)

		w := s.do(t, editorActor, http.MethodPost, "/api/v1/articles", map[string]any{"title": "   ", "content": ""})

		require.Equal(t, http.StatusBadRequest, w.Code)
		fields := decode(t, w)["fields"].(map[string]any)
		assert.Equal(t, "title_required", fields["title"])
		assert.Equal(t, "content_required", fields["content"])
	})

	t.Run("creates a draft", func(t *testing.T) {
		s := newTestServer(t)

		s.articles.EXPECT().
			Create(mock.Anything, editorActor, domain.ArticleInput{Title: "Harvest Notes", Content: "<p>Rice</p>"}).
			Return(sampleArticle(domain.ArticleStatusDraft), nil)

		w := s.do(t, editorActor, http.MethodPost, "/api/v1/articles", map[string]any{"title": "Harvest Notes", "content": "<p>Rice</p>"})

		require.Equal(t, http.StatusCreated, w.Code)
		body := decode(t, w)
		assert.Equal(t, "DRAFT", body["status"])
		assert.ElementsMatch(t, []any{"UNDER_REVIEW", "ARCHIVED"}, body["available_actions"])
	})
}

func TestArticleHandler_EditorialAccess(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, customerActor, http.MethodGet, "/api/v1/editorial/articles", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.do(t, domain.Actor{}, http.MethodGet, "/api/v1/editorial/articles", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(t, editorActor, http.MethodGet, "/api/v1/publisher/articles", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.do(t, publisherActor, http.MethodPut, "/api/v1/editorial/articles/"+articleID, map[string]any{"title": "x", "content": "y"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestArticleHandler_GetEditorial_AvailableActions(t *testing.T) {
	tests := []struct {
		name   string
		actor  domain.Actor
		status domain.ArticleStatus
		want   []any
	}{
		{"author of draft", editorActor, domain.ArticleStatusDraft, []any{"UNDER_REVIEW", "ARCHIVED"}},
		{"publisher on review", publisherActor, domain.ArticleStatusUnderReview, []any{"APPROVED", "REJECTED", "ARCHIVED"}},
		{"publisher on approved", publisherActor, domain.ArticleStatusApproved, []any{"PUBLISHED", "ARCHIVED"}},
		{"other editor on draft", domain.Actor{UserID: "editor-2", Role: domain.RoleEditor}, domain.ArticleStatusDraft, []any{"ARCHIVED"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			article := sampleArticle(tt.status)
			s.articles.EXPECT().Get(mock.Anything, article.ID).Return(article, nil)

			w := s.do(t, tt.actor, http.MethodGet, "/api/v1/editorial/articles/"+article.ID, nil)

			require.Equal(t, http.StatusOK, w.Code)
			assert.ElementsMatch(t, tt.want, decode(t, w)["available_actions"])
		})
	}
}

func TestArticleHandler_UpdateStatus(t *testing.T) {
	t.Run("rejects unknown status", func(t *testing.T) {
		s := newTestServer(t)

		w := s.do(t, editorActor, http.MethodPatch, "/api/v1/editorial/articles/"+articleID+"/status", map[string]any{"status": "LIVE"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("reports the forbidden transition", func(t *testing.T) {
		s := newTestServer(t)

		s.articles.EXPECT().
			UpdateStatus(mock.Anything, editorActor, articleID, domain.ArticleStatusPublished, 2).
			Return(nil, &workflow.TransitionError{From: "DRAFT", To: "PUBLISHED", Role: domain.RoleEditor})

		w := s.do(t, editorActor, http.MethodPatch, "/api/v1/editorial/articles/"+articleID+"/status", map[string]any{"status": "PUBLISHED", "version": 2})

		require.Equal(t, http.StatusForbidden, w.Code)
		body := decode(t, w)
		assert.Equal(t, "transition not allowed", body["error"])
		assert.Equal(t, "DRAFT", body["from"])
		assert.Equal(t, "PUBLISHED", body["to"])
	})

	t.Run("stale version is a conflict", func(t *testing.T) {
		s := newTestServer(t)

		s.articles.EXPECT().
			UpdateStatus(mock.Anything, publisherActor, articleID, domain.ArticleStatusPublished, 1).
			Return(nil, fmt.Errorf("publish article: %w", domain.ErrConflict))

		w := s.do(t, publisherActor, http.MethodPatch, "/api/v1/editorial/articles/"+articleID+"/status", map[string]any{"status": "PUBLISHED", "version": 1})

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "conflict", decode(t, w)["error"])
	})

	t.Run("rejection without a note", func(t *testing.T) {
		s := newTestServer(t)

		s.articles.EXPECT().
			UpdateStatus(mock.Anything, publisherActor, articleID, domain.ArticleStatusRejected, 0).
			Return(nil, domain.NewValidationError("note", "note_required_for_rejection"))

		w := s.do(t, publisherActor, http.MethodPatch, "/api/v1/editorial/articles/"+articleID+"/status", map[string]any{"status": "REJECTED"})

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "note_required_for_rejection", decode(t, w)["fields"].(map[string]any)["note"])
	})
}

func TestArticleHandler_ArchiveAndUnarchive(t *testing.T) {
	s := newTestServer(t)

	s.articles.EXPECT().Archive(mock.Anything, editorActor, articleID, 0).Return(sampleArticle(domain.ArticleStatusArchived), nil)
	s.articles.EXPECT().Unarchive(mock.Anything, editorActor, articleID, 4).Return(sampleArticle(domain.ArticleStatusDraft), nil)

	w := s.do(t, editorActor, http.MethodPatch, "/api/v1/editorial/articles/"+articleID+"/archive", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ARCHIVED", decode(t, w)["status"])

	w = s.do(t, editorActor, http.MethodPatch, "/api/v1/editorial/articles/"+articleID+"/unarchive", map[string]any{"version": 4})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "DRAFT", decode(t, w)["status"])
}

func TestArticleHandler_Delete(t *testing.T) {
	t.Run("draft is deleted", func(t *testing.T) {
		s := newTestServer(t)
		s.articles.EXPECT().Delete(mock.Anything, editorActor, articleID).Return(nil)

		w := s.do(t, editorActor, http.MethodDelete, "/api/v1/editorial/articles/"+articleID, nil)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("published must be archived", func(t *testing.T) {
		s := newTestServer(t)
		s.articles.EXPECT().Delete(mock.Anything, editorActor, articleID).Return(domain.ErrArchiveInstead)

		w := s.do(t, editorActor, http.MethodDelete, "/api/v1/editorial/articles/"+articleID, nil)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "archive instead", decode(t, w)["error"])
	})
}

func TestArticleHandler_Reviews(t *testing.T) {
	s := newTestServer(t)

	s.articles.EXPECT().Reviews(mock.Anything, articleID).Return([]domain.ReviewNote{
		{ID: "n1", ArticleID: articleID, ReviewerID: publisherActor.UserID, Decision: domain.ReviewDecisionApproved},
		{ID: "n2", ArticleID: articleID, ReviewerID: publisherActor.UserID, Decision: domain.ReviewDecisionRejected, Note: "Cite the source",
			Highlights: []domain.Highlight{{SelectedText: "rice fields"}}},
	}, nil)

	w := s.do(t, editorActor, http.MethodGet, "/api/v1/editorial/articles/"+articleID+"/reviews", nil)

	require.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w)["data"].([]any)
	require.Len(t, data, 2)
	approved := data[0].(map[string]any)
	assert.Equal(t, "APPROVED", approved["decision"])
	assert.Equal(t, []any{}, approved["highlights"])

	rejected := data[1].(map[string]any)
	assert.Equal(t, "REJECTED", rejected["decision"])
	assert.Equal(t, []any{map[string]any{"selectedText": "rice fields"}}, rejected["highlights"])
}

func TestArticleHandler_ReviewQueue(t *testing.T) {
	s := newTestServer(t)

	s.articles.EXPECT().
		List(mock.Anything, domain.ArticleFilter{Status: domain.ArticleStatusUnderReview, Limit: 5, Offset: 10}).
		Return(nil, 0, nil)

	w := s.do(t, publisherActor, http.MethodGet, "/api/v1/publisher/articles?limit=5&offset=10", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []any{}, decode(t, w)["data"])
}

func TestArticleHandler_Review(t *testing.T) {
	t.Run("rejection needs a note", func(t *testing.T) {
		s := newTestServer(t)

		w := s.do(t, publisherActor, http.MethodPost, "/api/v1/publisher/articles/"+articleID+"/review", map[string]any{"decision": "REJECTED", "note": "  "})

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "note_required_for_rejection", decode(t, w)["fields"].(map[string]any)["note"])
	})

	t.Run("highlights need selected text", func(t *testing.T) {
		s := newTestServer(t)

		w := s.do(t, publisherActor, http.MethodPost, "/api/v1/publisher/articles/"+articleID+"/review", map[string]any{
			"decision":   "APPROVED",
			"highlights": []map[string]any{{"selectedText": "", "comment": "unclear"}},
		})

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "selected_text_required", decode(t, w)["fields"].(map[string]any)["highlights.0"])
	})

	t.Run("records the decision", func(t *testing.T) {
		s := newTestServer(t)
		comment := "cite"
		in := domain.ReviewInput{
			Decision:   domain.ReviewDecisionRejected,
			Note:       "Cite the source",
			Highlights: []domain.Highlight{{SelectedText: "rice fields", Comment: &comment}},
		}
		s.articles.EXPECT().Review(mock.Anything, publisherActor, articleID, in, 3).Return(sampleArticle(domain.ArticleStatusRejected), nil)

		w := s.do(t, publisherActor, http.MethodPost, "/api/v1/publisher/articles/"+articleID+"/review", map[string]any{
			"decision":   "REJECTED",
			"note":       "Cite the source",
			"highlights": []map[string]any{{"selectedText": "rice fields", "comment": "cite"}},
			"version":    3,
		})

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "REJECTED", decode(t, w)["status"])
	})

	t.Run("article left review meanwhile", func(t *testing.T) {
		s := newTestServer(t)
		s.articles.EXPECT().Review(mock.Anything, superAdminActor, articleID, mock.Anything, 0).Return(nil, domain.ErrConflict)

		w := s.do(t, superAdminActor, http.MethodPost, "/api/v1/publisher/articles/"+articleID+"/review", map[string]any{"decision": "APPROVED"})

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}
