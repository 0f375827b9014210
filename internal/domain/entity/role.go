// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "github.com/google/uuid"

// Role represents the single role an authenticated principal holds.
type Role string

const (
	// RoleAdmin indicates a platform administrator.
	RoleAdmin Role = "admin"
	// RoleProvider indicates an account that registers and distributes boxes.
	RoleProvider Role = "provider"
	// RoleUser indicates a regular end user who claims and owns boxes.
	RoleUser Role = "user"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleProvider, RoleUser:
		return true
	default:
		return false
	}
}

// Principal is an authenticated actor. The role is loaded once per request
// from the access token and never changes mid-request.
type Principal struct {
	ID   uuid.UUID
	Role Role
}

// IsAdmin reports whether the principal holds the admin role.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// IsProvider reports whether the principal holds the provider role.
func (p Principal) IsProvider() bool {
	return p.Role == RoleProvider
}

// IsUser reports whether the principal holds the user role.
func (p Principal) IsUser() bool {
	return p.Role == RoleUser
}
