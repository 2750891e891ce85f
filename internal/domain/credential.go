package domain

// MintedCredential pairs a tenant with the opaque bearer token the gateway
// issued for it and the policy the mint was performed with. The gateway is
// authoritative for the key; the seeder holds it only until it is persisted.
type MintedCredential struct {
	Tenant Tenant
	Policy Policy
	Key    string
}

// HasAdmin reports whether the minted set contains an admin credential.
// A seed without one is degraded and must be called out to operators.
func HasAdmin(minted []MintedCredential) bool {
	for _, cred := range minted {
		if cred.Tenant.Role == RoleAdmin {
			return true
		}
	}
	return false
}
