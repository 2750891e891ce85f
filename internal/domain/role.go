package domain

import "slices"

// Role represents a tenant role in the platform
type Role string

const (
	// RoleAdmin operates the platform and can manage users, settings, and schedules
	RoleAdmin Role = "admin"

	// RoleStudent is a classroom participant with a capped budget and rate limits
	RoleStudent Role = "student"
)

// ValidRoles contains all valid roles in the system
var ValidRoles = []Role{RoleAdmin, RoleStudent}

// IsValidRole checks if a given role is valid
func IsValidRole(role string) bool {
	return slices.Contains(ValidRoles, Role(role))
}
