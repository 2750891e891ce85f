package domain

import "strconv"

// Tenant is a logical account that needs exactly one gateway credential and
// one persisted user row. Tenants exist only in memory during a seeding run.
type Tenant struct {
	UserID   string
	Role     Role
	Override *Policy
}

// NewRoster returns the fixed provisioning roster: the admin tenant first,
// then students "1".."N" in increasing numeric order.
func NewRoster(studentCount int) []Tenant {
	roster := make([]Tenant, 0, studentCount+1)
	roster = append(roster, Tenant{UserID: "admin", Role: RoleAdmin})
	for i := 1; i <= studentCount; i++ {
		roster = append(roster, Tenant{UserID: strconv.Itoa(i), Role: RoleStudent})
	}
	return roster
}
