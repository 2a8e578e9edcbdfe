package workflow

import (
	"fmt"

	"pusaka-newsletter/internal/domain"
)

type targets map[domain.Role][]domain.ArticleStatus

// articleTransitions maps (current status, role) to the statuses that role may move an article to.
// Anything absent is forbidden.
var articleTransitions = map[domain.ArticleStatus]targets{
	domain.ArticleStatusDraft: {
		domain.RoleEditor:     {domain.ArticleStatusUnderReview, domain.ArticleStatusArchived},
		domain.RoleSuperAdmin: {domain.ArticleStatusUnderReview, domain.ArticleStatusArchived},
		domain.RolePublisher:  {domain.ArticleStatusArchived},
	},
	domain.ArticleStatusUnderReview: {
		// Re-submitting an article already under review is accepted as a no-op.
		domain.RoleEditor:     {domain.ArticleStatusUnderReview, domain.ArticleStatusArchived},
		domain.RolePublisher:  {domain.ArticleStatusApproved, domain.ArticleStatusRejected, domain.ArticleStatusArchived},
		domain.RoleSuperAdmin: {domain.ArticleStatusUnderReview, domain.ArticleStatusApproved, domain.ArticleStatusRejected, domain.ArticleStatusArchived},
	},
	domain.ArticleStatusApproved: {
		domain.RoleEditor:     {domain.ArticleStatusArchived},
		domain.RolePublisher:  {domain.ArticleStatusPublished, domain.ArticleStatusArchived},
		domain.RoleSuperAdmin: {domain.ArticleStatusPublished, domain.ArticleStatusArchived},
	},
	domain.ArticleStatusPublished: {
		domain.RoleEditor:     {domain.ArticleStatusArchived},
		domain.RolePublisher:  {domain.ArticleStatusArchived},
		domain.RoleSuperAdmin: {domain.ArticleStatusArchived},
	},
	domain.ArticleStatusRejected: {
		domain.RoleEditor:     {domain.ArticleStatusDraft, domain.ArticleStatusUnderReview, domain.ArticleStatusArchived},
		domain.RoleSuperAdmin: {domain.ArticleStatusDraft, domain.ArticleStatusUnderReview, domain.ArticleStatusArchived},
		domain.RolePublisher:  {domain.ArticleStatusArchived},
	},
	domain.ArticleStatusArchived: {
		domain.RoleEditor:     {domain.ArticleStatusDraft},
		domain.RolePublisher:  {domain.ArticleStatusDraft},
		domain.RoleSuperAdmin: {domain.ArticleStatusDraft},
	},
}

// TransitionError reports a status change the actor's role may not make.
type TransitionError struct {
	From string
	To   string
	Role domain.Role
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("transition %s -> %s is not allowed for role %s", e.From, e.To, e.Role)
}

// Unwrap lets callers match the error with errors.Is(err, domain.ErrForbidden).
func (e *TransitionError) Unwrap() error {
	return domain.ErrForbidden
}

// AllowedArticleTargets returns the statuses role may move an article in status from to.
func AllowedArticleTargets(from domain.ArticleStatus, role domain.Role) []domain.ArticleStatus {
	allowed := articleTransitions[from][role]
	out := make([]domain.ArticleStatus, len(allowed))
	copy(out, allowed)
	return out
}

// ArticleTransitionAllowed reports whether role may move an article from one status to another.
func ArticleTransitionAllowed(from, to domain.ArticleStatus, role domain.Role) bool {
	for _, s := range articleTransitions[from][role] {
		if s == to {
			return true
		}
	}
	return false
}

// AuthorizeArticle checks that actor may move article a to status to.
// Editors may only submit or re-draft articles they wrote.
func AuthorizeArticle(a *domain.Article, to domain.ArticleStatus, actor domain.Actor) error {
	if !ArticleTransitionAllowed(a.Status, to, actor.Role) {
		return &TransitionError{From: string(a.Status), To: string(to), Role: actor.Role}
	}
	if actor.Role == domain.RoleEditor && a.AuthorID != actor.UserID {
		if to == domain.ArticleStatusUnderReview || (to == domain.ArticleStatusDraft && a.Status == domain.ArticleStatusRejected) {
			return fmt.Errorf("%w: only the author may submit this article", domain.ErrForbidden)
		}
	}
	return nil
}

// IsNoop reports whether applying to on an article in from changes nothing.
func IsNoop(from, to domain.ArticleStatus) bool {
	return from == to
}

// CanEditArticle checks that actor may change the content of article a.
// Content is frozen once the article has entered review, unless it was rejected.
func CanEditArticle(a *domain.Article, actor domain.Actor) error {
	switch actor.Role {
	case domain.RoleSuperAdmin:
	case domain.RoleEditor:
		if a.AuthorID != actor.UserID {
			return fmt.Errorf("%w: only the author may edit this article", domain.ErrForbidden)
		}
	default:
		return fmt.Errorf("%w: role %s may not edit articles", domain.ErrForbidden, actor.Role)
	}
	if a.Status != domain.ArticleStatusDraft && a.Status != domain.ArticleStatusRejected {
		return fmt.Errorf("%w: article in status %s cannot be edited", domain.ErrConflict, a.Status)
	}
	return nil
}

// CanCreateArticle checks that actor may author articles.
func CanCreateArticle(actor domain.Actor) error {
	if actor.Role != domain.RoleEditor && actor.Role != domain.RoleSuperAdmin {
		return fmt.Errorf("%w: role %s may not create articles", domain.ErrForbidden, actor.Role)
	}
	return nil
}

// CanDeleteArticle checks that actor may permanently delete article a. Only drafts can be
// deleted; everything else has to be archived.
func CanDeleteArticle(a *domain.Article, actor domain.Actor) error {
	if actor.Role != domain.RoleEditor && actor.Role != domain.RoleSuperAdmin {
		return fmt.Errorf("%w: role %s may not delete articles", domain.ErrForbidden, actor.Role)
	}
	if a.Status != domain.ArticleStatusDraft {
		return domain.ErrArchiveInstead
	}
	if actor.Role == domain.RoleEditor && a.AuthorID != actor.UserID {
		return fmt.Errorf("%w: only the author may delete this article", domain.ErrForbidden)
	}
	return nil
}
