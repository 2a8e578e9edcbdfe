package workflow

import (
	"fmt"

	"pusaka-newsletter/internal/domain"
)

func canManageBlogs(role domain.Role) bool {
	return role == domain.RoleEditor || role == domain.RoleSuperAdmin
}

// CanEditBlog checks that actor may create or edit blogs.
func CanEditBlog(actor domain.Actor) error {
	if !canManageBlogs(actor.Role) {
		return fmt.Errorf("%w: role %s may not manage blogs", domain.ErrForbidden, actor.Role)
	}
	return nil
}

// AuthorizeBlog checks a blog status change. Blogs move freely among their three states.
func AuthorizeBlog(from, to domain.BlogStatus, actor domain.Actor) error {
	if !canManageBlogs(actor.Role) {
		return &TransitionError{From: string(from), To: string(to), Role: actor.Role}
	}
	if !domain.IsValidBlogStatus(string(to)) {
		return fmt.Errorf("%w: unknown blog status %q", domain.ErrValidation, to)
	}
	return nil
}

// CanDeleteBlog checks a blog deletion. Any state may be deleted once the caller confirmed.
func CanDeleteBlog(actor domain.Actor, confirmed bool) error {
	if !canManageBlogs(actor.Role) {
		return fmt.Errorf("%w: role %s may not delete blogs", domain.ErrForbidden, actor.Role)
	}
	if !confirmed {
		return domain.ErrConfirmationRequired
	}
	return nil
}
