package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/classroom-llm/gateway-seeder/internal/domain"
	"github.com/classroom-llm/gateway-seeder/internal/gateway"
	"github.com/classroom-llm/gateway-seeder/pkg/logger"
)

// Provisioner purges stale gateway credentials and mints one fresh credential
// per tenant. Gateway failures inside either step are contained: they degrade
// the outcome but never abort the run.
type Provisioner struct {
	gw      gateway.Client
	catalog domain.PolicyCatalog
	models  []string
	runID   string
	logger  *logger.Logger
}

func NewProvisioner(gw gateway.Client, catalog domain.PolicyCatalog, models []string, log *logger.Logger) *Provisioner {
	return &Provisioner{
		gw:      gw,
		catalog: catalog,
		models:  models,
		runID:   uuid.NewString(),
		logger:  log,
	}
}

// Purge deletes every credential the gateway currently holds, looping
// list-then-delete until the list comes back empty. The loop handles a
// paginating or rate-limited list endpoint; total work stays bounded by the
// number of keys that existed before the run. A failed list or delete call
// is logged and ends the purge, leaving stale keys behind, which is
// acceptable because the mint step does not depend on prior gateway state.
func (p *Provisioner) Purge(ctx context.Context) {
	for {
		keys, err := p.gw.ListKeys(ctx)
		if err != nil {
			p.logger.Warnf("listing gateway keys failed, treating as empty: %v", err)
			return
		}
		if len(keys) == 0 {
			return
		}
		if err := p.gw.DeleteKeys(ctx, keys); err != nil {
			p.logger.Warnf("deleting %d gateway keys failed, leaving them for the next run: %v", len(keys), err)
			return
		}
		p.logger.Infof("deleted %d stale gateway keys", len(keys))
	}
}

// ProvisionAll mints one credential per roster tenant, admin first. A tenant
// whose mint fails is omitted entirely from the result, so no partial record
// ever reaches persistence; the omission is logged and the run continues.
func (p *Provisioner) ProvisionAll(ctx context.Context, roster []domain.Tenant) []domain.MintedCredential {
	minted := make([]domain.MintedCredential, 0, len(roster))
	for _, tenant := range roster {
		policy := p.catalog.ForTenant(tenant)
		key, err := p.gw.GenerateKey(ctx, p.keyRequest(tenant, policy))
		if err != nil {
			if tenant.Role == domain.RoleAdmin {
				p.logger.Warnf("ADMIN key mint failed, the seeded database will have no admin account: %v", err)
			} else {
				p.logger.Warnf("key mint failed for tenant %s, skipping: %v", tenant.UserID, err)
			}
			continue
		}
		minted = append(minted, domain.MintedCredential{Tenant: tenant, Policy: policy, Key: key})
	}
	return minted
}

func (p *Provisioner) keyRequest(tenant domain.Tenant, policy domain.Policy) gateway.KeyRequest {
	return gateway.KeyRequest{
		Models:    p.models,
		Aliases:   map[string]string{"user_email": tenant.UserID + "@example.com"},
		Duration:  nil,
		MaxBudget: policy.MaxBudget,
		TPMLimit:  policy.TPMLimit,
		RPMLimit:  policy.RPMLimit,
		Metadata: gateway.KeyMetadata{
			UserID:     tenant.UserID,
			Role:       string(tenant.Role),
			TrackUsage: true,
			SeedRun:    p.runID,
		},
		KeyAlias: "key-" + tenant.UserID,
	}
}
