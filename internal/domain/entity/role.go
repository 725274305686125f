// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a profile can have in the system.
// It is a closed set: an unknown string never round-trips into a valid Role.
type Role string

const (
	// RoleAdmin indicates a platform administrator.
	RoleAdmin Role = "admin"
	// RoleCustomer indicates a regular customer, the default for new profiles.
	RoleCustomer Role = "customer"
	// RoleSalon indicates a salon owner. This role is only ever assigned as a
	// side effect of being granted ownership of a salon, never by a
	// self-service write.
	RoleSalon Role = "salon"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleCustomer, RoleSalon:
		return true
	default:
		return false
	}
}

// RoleFromString converts a stored string into a Role, reporting whether the
// value is part of the closed set.
func RoleFromString(s string) (Role, bool) {
	role := Role(s)

	return role, role.IsValid()
}
