// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents a named permission group an account can hold.
type Role string

const (
	// RoleViewer is the default role assigned on registration.
	RoleViewer Role = "Viewer"
	// RoleAdministrator grants access to account administration endpoints.
	RoleAdministrator Role = "Administrator"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleViewer, RoleAdministrator:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// Intersects reports whether at least one role in rs appears in required.
// Authorization is role-intersection based: holding any one of an
// endpoint's required roles grants access.
func (rs Roles) Intersects(required Roles) bool {
	for _, r := range required {
		if rs.Contains(r) {
			return true
		}
	}

	return false
}

// ToStrings converts Roles to []string for JWT compatibility.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings converts []string to Roles, filtering out invalid role strings.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}
