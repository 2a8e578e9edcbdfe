package domain

// Role is the role of an authenticated actor, as issued by the auth provider.
type Role string

const (
	RoleCustomer   Role = "CUSTOMER"
	RoleEditor     Role = "EDITOR"
	RolePublisher  Role = "PUBLISHER"
	RoleAdmin      Role = "ADMIN"
	RoleSuperAdmin Role = "SUPER_ADMIN"
)

// ValidRoles contains all valid user roles.
var ValidRoles = []Role{RoleCustomer, RoleEditor, RolePublisher, RoleAdmin, RoleSuperAdmin}

// IsValidRole checks if a role is valid.
func IsValidRole(role string) bool {
	for _, r := range ValidRoles {
		if string(r) == role {
			return true
		}
	}
	return false
}

// IsStaff reports whether the role belongs to the editorial staff.
func (r Role) IsStaff() bool {
	return r == RoleEditor || r == RolePublisher || r == RoleAdmin || r == RoleSuperAdmin
}

// Actor is the caller of an operation. Users themselves live with the auth provider.
type Actor struct {
	UserID string `json:"user_id"`
	Email  string `json:"email,omitempty"`
	Role   Role   `json:"role"`
}
