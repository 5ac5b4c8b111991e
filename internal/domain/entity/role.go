package entity

import "slices"

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleUser indicates a regular user role.
	RoleUser Role = "user"
	// RoleAdmin indicates an administrator role.
	RoleAdmin Role = "admin"
)

// Permission is a named right checked by route guards.
type Permission string

const (
	PermGetUsers       Permission = "getUsers"
	PermManageUsers    Permission = "manageUsers"
	PermManageMessages Permission = "manageMessages"
)

var roleRights = map[Role][]Permission{
	RoleUser:  {},
	RoleAdmin: {PermGetUsers, PermManageUsers, PermManageMessages},
}

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	_, ok := roleRights[r]

	return ok
}

// Rights returns the permissions granted to the role. Unknown roles have none.
func (r Role) Rights() []Permission {
	return slices.Clone(roleRights[r])
}

// Grants reports whether the role holds every permission in required.
func (r Role) Grants(required ...Permission) bool {
	rights := roleRights[r]
	for _, p := range required {
		if !slices.Contains(rights, p) {
			return false
		}
	}

	return true
}

// Roles lists every known role.
func Roles() []Role {
	return []Role{RoleUser, RoleAdmin}
}
