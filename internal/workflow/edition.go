package workflow

import (
	"fmt"

	"pusaka-newsletter/internal/domain"
)

// CanCreateEdition checks that actor may create editions. Created editions are never published.
func CanCreateEdition(actor domain.Actor) error {
	if !actor.Role.IsStaff() {
		return fmt.Errorf("%w: role %s may not create editions", domain.ErrForbidden, actor.Role)
	}
	return nil
}

// CanPublishEdition checks that actor may change whether an edition is published.
func CanPublishEdition(actor domain.Actor) error {
	if actor.Role != domain.RoleAdmin && actor.Role != domain.RoleSuperAdmin {
		return fmt.Errorf("%w: only admins may publish editions", domain.ErrForbidden)
	}
	return nil
}
