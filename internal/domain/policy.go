package domain

// Policy is the rate-limit/budget/quota bundle applied when minting a
// credential and mirrored into the persisted user row.
type Policy struct {
	RPMLimit        int
	TPMLimit        int
	MaxBudget       float64
	DailyTokenLimit int64
	DisplayName     string
	ClassName       string
}

// PolicyCatalog maps roles to their provisioning policy. All fields must be
// positive; admin values are expected to dominate student values, though
// that is an operational convention rather than an enforced invariant.
type PolicyCatalog struct {
	Admin   Policy
	Student Policy
}

// ForTenant resolves a tenant's effective policy: an explicit override wins,
// otherwise the role default applies.
func (c PolicyCatalog) ForTenant(t Tenant) Policy {
	if t.Override != nil {
		return *t.Override
	}
	if t.Role == RoleAdmin {
		return c.Admin
	}
	return c.Student
}
