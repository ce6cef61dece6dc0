// File: internal/permission/role.go
package permission

// Role is the closed set of membership roles an authenticated user can hold
// within an organization.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleMember  Role = "MEMBER"
	RoleBilling Role = "BILLING"
)

// Roles returns every value of the role enumeration.
func Roles() []Role {
	return []Role{RoleAdmin, RoleMember, RoleBilling}
}

// Valid reports whether r is part of the role enumeration.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleMember, RoleBilling:
		return true
	}
	return false
}
