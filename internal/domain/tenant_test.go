package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoster_AdminFirstThenStudentsInOrder(t *testing.T) {
	roster := NewRoster(3)

	require.Len(t, roster, 4)
	assert.Equal(t, Tenant{UserID: "admin", Role: RoleAdmin}, roster[0])
	assert.Equal(t, Tenant{UserID: "1", Role: RoleStudent}, roster[1])
	assert.Equal(t, Tenant{UserID: "2", Role: RoleStudent}, roster[2])
	assert.Equal(t, Tenant{UserID: "3", Role: RoleStudent}, roster[3])
}

func TestNewRoster_ZeroStudents(t *testing.T) {
	roster := NewRoster(0)

	require.Len(t, roster, 1)
	assert.Equal(t, RoleAdmin, roster[0].Role)
}

func TestPolicyCatalog_ForTenant(t *testing.T) {
	catalog := PolicyCatalog{
		Admin:   Policy{RPMLimit: 1000},
		Student: Policy{RPMLimit: 10},
	}
	override := Policy{RPMLimit: 77}

	assert.Equal(t, 1000, catalog.ForTenant(Tenant{UserID: "admin", Role: RoleAdmin}).RPMLimit)
	assert.Equal(t, 10, catalog.ForTenant(Tenant{UserID: "5", Role: RoleStudent}).RPMLimit)
	assert.Equal(t, 77, catalog.ForTenant(Tenant{UserID: "5", Role: RoleStudent, Override: &override}).RPMLimit)
}

func TestHasAdmin(t *testing.T) {
	assert.False(t, HasAdmin(nil))
	assert.False(t, HasAdmin([]MintedCredential{
		{Tenant: Tenant{UserID: "1", Role: RoleStudent}},
	}))
	assert.True(t, HasAdmin([]MintedCredential{
		{Tenant: Tenant{UserID: "1", Role: RoleStudent}},
		{Tenant: Tenant{UserID: "admin", Role: RoleAdmin}},
	}))
}

func TestIsValidRole(t *testing.T) {
	assert.True(t, IsValidRole("admin"))
	assert.True(t, IsValidRole("student"))
	assert.False(t, IsValidRole("auditor"))
	assert.False(t, IsValidRole(""))
}
