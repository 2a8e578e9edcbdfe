package workflow_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pusaka-newsletter/internal/domain"
	"pusaka-newsletter/internal/workflow"
)

type move struct {
	from domain.ArticleStatus
	to   domain.ArticleStatus
	role domain.Role
}

// permitted lists every allowed article move, written out longhand.
var permitted = map[move]bool{
	{domain.ArticleStatusDraft, domain.ArticleStatusUnderReview, domain.RoleEditor}:     true,
	{domain.ArticleStatusDraft, domain.ArticleStatusUnderReview, domain.RoleSuperAdmin}: true,
	{domain.ArticleStatusDraft, domain.ArticleStatusArchived, domain.RoleEditor}:        true,
	{domain.ArticleStatusDraft, domain.ArticleStatusArchived, domain.RolePublisher}:     true,
	{domain.ArticleStatusDraft, domain.ArticleStatusArchived, domain.RoleSuperAdmin}:    true,

	{domain.ArticleStatusUnderReview, domain.ArticleStatusUnderReview, domain.RoleEditor}:     true,
	{domain.ArticleStatusUnderReview, domain.ArticleStatusUnderReview, domain.RoleSuperAdmin}: true,
	{domain.ArticleStatusUnderReview, domain.ArticleStatusApproved, domain.RolePublisher}:     true,
	{domain.ArticleStatusUnderReview, domain.ArticleStatusApproved, domain.RoleSuperAdmin}:    true,
	{domain.ArticleStatusUnderReview, domain.ArticleStatusRejected, domain.RolePublisher}:     true,
	{domain.ArticleStatusUnderReview, domain.ArticleStatusRejected, domain.RoleSuperAdmin}:    true,
	{domain.ArticleStatusUnderReview, domain.ArticleStatusArchived, domain.RoleEditor}:        true,
	{domain.ArticleStatusUnderReview, domain.ArticleStatusArchived, domain.RolePublisher}:     true,
	{domain.ArticleStatusUnderReview, domain.ArticleStatusArchived, domain.RoleSuperAdmin}:    true,

	{domain.ArticleStatusApproved, domain.ArticleStatusPublished, domain.RolePublisher}:  true,
	{domain.ArticleStatusApproved, domain.ArticleStatusPublished, domain.RoleSuperAdmin}: true,
	{domain.ArticleStatusApproved, domain.ArticleStatusArchived, domain.RoleEditor}:      true,
	{domain.ArticleStatusApproved, domain.ArticleStatusArchived, domain.RolePublisher}:   true,
	{domain.ArticleStatusApproved, domain.ArticleStatusArchived, domain.RoleSuperAdmin}:  true,

	{domain.ArticleStatusPublished, domain.ArticleStatusArchived, domain.RoleEditor}:     true,
	{domain.ArticleStatusPublished, domain.ArticleStatusArchived, domain.RolePublisher}:  true,
	{domain.ArticleStatusPublished, domain.ArticleStatusArchived, domain.RoleSuperAdmin}: true,

	{domain.ArticleStatusRejected, domain.ArticleStatusDraft, domain.RoleEditor}:           true,
	{domain.ArticleStatusRejected, domain.ArticleStatusDraft, domain.RoleSuperAdmin}:       true,
	{domain.ArticleStatusRejected, domain.ArticleStatusUnderReview, domain.RoleEditor}:     true,
	{domain.ArticleStatusRejected, domain.ArticleStatusUnderReview, domain.RoleSuperAdmin}: true,
	{domain.ArticleStatusRejected, domain.ArticleStatusArchived, domain.RoleEditor}:        true,
	{domain.ArticleStatusRejected, domain.ArticleStatusArchived, domain.RolePublisher}:     true,
	{domain.ArticleStatusRejected, domain.ArticleStatusArchived, domain.RoleSuperAdmin}:    true,

	{domain.ArticleStatusArchived, domain.ArticleStatusDraft, domain.RoleEditor}:     true,
	{domain.ArticleStatusArchived, domain.ArticleStatusDraft, domain.RolePublisher}:  true,
	{domain.ArticleStatusArchived, domain.ArticleStatusDraft, domain.RoleSuperAdmin}: true,
}

func TestArticleTransitionAllowed_FullGrid(t *testing.T) {
	for _, from := range domain.ValidArticleStatuses {
		for _, to := range domain.ValidArticleStatuses {
			for _, role := range domain.ValidRoles {
				m := move{from, to, role}
				name := fmt.Sprintf("%s->%s as %s", from, to, role)
				t.Run(name, func(t *testing.T) {
					assert.Equal(t, permitted[m], workflow.ArticleTransitionAllowed(from, to, role))
				})
			}
		}
	}
}

func TestAuthorizeArticle(t *testing.T) {
	editor := domain.Actor{UserID: "editor-1", Role: domain.RoleEditor}
	otherEditor := domain.Actor{UserID: "editor-2", Role: domain.RoleEditor}
	publisher := domain.Actor{UserID: "pub-1", Role: domain.RolePublisher}
	admin := domain.Actor{UserID: "admin-1", Role: domain.RoleAdmin}

	article := func(status domain.ArticleStatus) *domain.Article {
		return &domain.Article{ID: "a1", AuthorID: "editor-1", Status: status}
	}

	t.Run("author submits draft", func(t *testing.T) {
		assert.NoError(t, workflow.AuthorizeArticle(article(domain.ArticleStatusDraft), domain.ArticleStatusUnderReview, editor))
	})

	t.Run("other editor cannot submit", func(t *testing.T) {
		err := workflow.AuthorizeArticle(article(domain.ArticleStatusDraft), domain.ArticleStatusUnderReview, otherEditor)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrForbidden))
	})

	t.Run("other editor may archive", func(t *testing.T) {
		assert.NoError(t, workflow.AuthorizeArticle(article(domain.ArticleStatusPublished), domain.ArticleStatusArchived, otherEditor))
	})

	t.Run("editor cannot self-approve", func(t *testing.T) {
		err := workflow.AuthorizeArticle(article(domain.ArticleStatusUnderReview), domain.ArticleStatusApproved, editor)
		require.Error(t, err)

		var terr *workflow.TransitionError
		require.True(t, errors.As(err, &terr))
		assert.Equal(t, "UNDER_REVIEW", terr.From)
		assert.Equal(t, "APPROVED", terr.To)
		assert.Equal(t, domain.RoleEditor, terr.Role)
		assert.True(t, errors.Is(err, domain.ErrForbidden))
		assert.Contains(t, err.Error(), "UNDER_REVIEW -> APPROVED")
	})

	t.Run("editor cannot self-reject", func(t *testing.T) {
		err := workflow.AuthorizeArticle(article(domain.ArticleStatusUnderReview), domain.ArticleStatusRejected, editor)
		assert.True(t, errors.Is(err, domain.ErrForbidden))
	})

	t.Run("publisher approves", func(t *testing.T) {
		assert.NoError(t, workflow.AuthorizeArticle(article(domain.ArticleStatusUnderReview), domain.ArticleStatusApproved, publisher))
	})

	t.Run("publisher cannot publish a draft directly", func(t *testing.T) {
		err := workflow.AuthorizeArticle(article(domain.ArticleStatusDraft), domain.ArticleStatusPublished, publisher)
		assert.True(t, errors.Is(err, domain.ErrForbidden))
	})

	t.Run("admin has no article transitions", func(t *testing.T) {
		err := workflow.AuthorizeArticle(article(domain.ArticleStatusDraft), domain.ArticleStatusArchived, admin)
		assert.True(t, errors.Is(err, domain.ErrForbidden))
	})

	t.Run("other editor cannot re-draft a rejected article", func(t *testing.T) {
		err := workflow.AuthorizeArticle(article(domain.ArticleStatusRejected), domain.ArticleStatusDraft, otherEditor)
		assert.True(t, errors.Is(err, domain.ErrForbidden))
	})
}

func TestAllowedArticleTargets(t *testing.T) {
	t.Run("returns a copy", func(t *testing.T) {
		got := workflow.AllowedArticleTargets(domain.ArticleStatusDraft, domain.RoleEditor)
		require.Len(t, got, 2)
		got[0] = domain.ArticleStatusPublished

		again := workflow.AllowedArticleTargets(domain.ArticleStatusDraft, domain.RoleEditor)
		assert.Equal(t, domain.ArticleStatusUnderReview, again[0])
	})

	t.Run("customer gets nothing", func(t *testing.T) {
		for _, s := range domain.ValidArticleStatuses {
			assert.Empty(t, workflow.AllowedArticleTargets(s, domain.RoleCustomer))
		}
	})

	t.Run("only publishers and super admins see review actions", func(t *testing.T) {
		assert.ElementsMatch(t,
			[]domain.ArticleStatus{domain.ArticleStatusUnderReview, domain.ArticleStatusArchived},
			workflow.AllowedArticleTargets(domain.ArticleStatusUnderReview, domain.RoleEditor))
		assert.Contains(t, workflow.AllowedArticleTargets(domain.ArticleStatusUnderReview, domain.RolePublisher), domain.ArticleStatusApproved)
	})
}

func TestCanDeleteArticle(t *testing.T) {
	editor := domain.Actor{UserID: "editor-1", Role: domain.RoleEditor}

	for _, status := range domain.ValidArticleStatuses {
		t.Run(string(status), func(t *testing.T) {
			err := workflow.CanDeleteArticle(&domain.Article{AuthorID: "editor-1", Status: status}, editor)
			if status == domain.ArticleStatusDraft {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, domain.ErrArchiveInstead)
			}
		})
	}

	t.Run("publisher cannot delete", func(t *testing.T) {
		err := workflow.CanDeleteArticle(&domain.Article{Status: domain.ArticleStatusDraft}, domain.Actor{Role: domain.RolePublisher})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("editor cannot delete someone else's draft", func(t *testing.T) {
		err := workflow.CanDeleteArticle(&domain.Article{AuthorID: "x", Status: domain.ArticleStatusDraft}, editor)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("super admin deletes any draft", func(t *testing.T) {
		err := workflow.CanDeleteArticle(&domain.Article{AuthorID: "x", Status: domain.ArticleStatusDraft}, domain.Actor{Role: domain.RoleSuperAdmin})
		assert.NoError(t, err)
	})
}

func TestCanEditArticle(t *testing.T) {
	editor := domain.Actor{UserID: "editor-1", Role: domain.RoleEditor}

	assert.NoError(t, workflow.CanEditArticle(&domain.Article{AuthorID: "editor-1", Status: domain.ArticleStatusDraft}, editor))
	assert.NoError(t, workflow.CanEditArticle(&domain.Article{AuthorID: "editor-1", Status: domain.ArticleStatusRejected}, editor))
	assert.ErrorIs(t, workflow.CanEditArticle(&domain.Article{AuthorID: "editor-1", Status: domain.ArticleStatusPublished}, editor), domain.ErrConflict)
	assert.ErrorIs(t, workflow.CanEditArticle(&domain.Article{AuthorID: "other", Status: domain.ArticleStatusDraft}, editor), domain.ErrForbidden)
	assert.ErrorIs(t, workflow.CanEditArticle(&domain.Article{Status: domain.ArticleStatusDraft}, domain.Actor{Role: domain.RolePublisher}), domain.ErrForbidden)
}

func TestIsNoop(t *testing.T) {
	assert.True(t, workflow.IsNoop(domain.ArticleStatusUnderReview, domain.ArticleStatusUnderReview))
	assert.False(t, workflow.IsNoop(domain.ArticleStatusDraft, domain.ArticleStatusUnderReview))
}

func TestBlogRules(t *testing.T) {
	editor := domain.Actor{UserID: "e", Role: domain.RoleEditor}
	customer := domain.Actor{UserID: "c", Role: domain.RoleCustomer}

	for _, from := range domain.ValidBlogStatuses {
		for _, to := range domain.ValidBlogStatuses {
			assert.NoError(t, workflow.AuthorizeBlog(from, to, editor), "%s -> %s", from, to)
			assert.ErrorIs(t, workflow.AuthorizeBlog(from, to, customer), domain.ErrForbidden)
		}
	}

	assert.ErrorIs(t, workflow.AuthorizeBlog(domain.BlogStatusDraft, "UNDER_REVIEW", editor), domain.ErrValidation)
	assert.ErrorIs(t, workflow.CanDeleteBlog(editor, false), domain.ErrConfirmationRequired)
	assert.NoError(t, workflow.CanDeleteBlog(editor, true))
	assert.ErrorIs(t, workflow.CanDeleteBlog(domain.Actor{Role: domain.RolePublisher}, true), domain.ErrForbidden)
}

func TestEditionRules(t *testing.T) {
	assert.NoError(t, workflow.CanCreateEdition(domain.Actor{Role: domain.RoleEditor}))
	assert.ErrorIs(t, workflow.CanCreateEdition(domain.Actor{Role: domain.RoleCustomer}), domain.ErrForbidden)

	assert.NoError(t, workflow.CanPublishEdition(domain.Actor{Role: domain.RoleAdmin}))
	assert.NoError(t, workflow.CanPublishEdition(domain.Actor{Role: domain.RoleSuperAdmin}))
	assert.ErrorIs(t, workflow.CanPublishEdition(domain.Actor{Role: domain.RoleEditor}), domain.ErrForbidden)
	assert.ErrorIs(t, workflow.CanPublishEdition(domain.Actor{Role: domain.RolePublisher}), domain.ErrForbidden)
}
