package service

import (
	"context"
	"fmt"

	"github.com/classroom-llm/gateway-seeder/internal/domain"
	"github.com/classroom-llm/gateway-seeder/internal/gateway"
	"github.com/classroom-llm/gateway-seeder/internal/repository"
	"github.com/classroom-llm/gateway-seeder/pkg/logger"
)

// Outcome classifies how a seeding run ended.
type Outcome string

const (
	// OutcomeSeeded means credentials were minted and persisted.
	OutcomeSeeded Outcome = "seeded"

	// OutcomeSkipped means student accounts already existed and the run
	// performed zero gateway or database mutation.
	OutcomeSkipped Outcome = "skipped"
)

// Result summarizes a successful run for the exit report.
type Result struct {
	Outcome   Outcome
	Minted    int
	Persisted int
}

// Seeder drives the provisioning protocol end to end: sentinel check,
// readiness wait, purge, mint, transactional persistence.
type Seeder struct {
	repo         repository.Repository
	gw           gateway.Client
	provisioner  *Provisioner
	studentCount int
	defaults     domain.SeedDefaults
	logger       *logger.Logger
}

func NewSeeder(repo repository.Repository, gw gateway.Client, provisioner *Provisioner, studentCount int, defaults domain.SeedDefaults, log *logger.Logger) *Seeder {
	return &Seeder{
		repo:         repo,
		gw:           gw,
		provisioner:  provisioner,
		studentCount: studentCount,
		defaults:     defaults,
		logger:       log,
	}
}

// Run executes one seeding pass. Only a readiness timeout or a failed seed
// transaction produce an error; every gateway failure inside purge and mint
// is contained and converted into a skip-and-continue decision.
func (s *Seeder) Run(ctx context.Context) (Result, error) {
	switch state := s.repo.Users().SeedState(ctx); state {
	case domain.SeedStateSeeded:
		s.logger.Infof("student accounts already exist, skipping seed (remove the postgres volume and redeploy to re-seed)")
		return Result{Outcome: OutcomeSkipped}, nil
	default:
		s.logger.Infof("seed sentinel reports %s database, proceeding", state)
	}

	if err := s.gw.WaitUntilReady(ctx); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}

	s.logger.Infof("cleaning up existing gateway keys")
	s.provisioner.Purge(ctx)

	roster := domain.NewRoster(s.studentCount)
	s.logger.Infof("minting %d keys (1 admin, %d students)", len(roster), s.studentCount)
	minted := s.provisioner.ProvisionAll(ctx, roster)
	if !domain.HasAdmin(minted) {
		s.logger.Warnf("no admin credential was minted; seeding continues but the deployment has no admin account")
	}

	statements := BuildSeedPlan(minted, s.defaults)
	if err := s.repo.Seed().ExecuteSeed(ctx, statements); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrSeedPersistence, err)
	}

	s.logger.Warnf("initial password for all seeded accounts is %q, change it after first login", s.defaults.InitialPassword)
	s.logger.Infof("seeding completed: %d keys minted, %d accounts persisted", len(minted), len(minted))
	return Result{Outcome: OutcomeSeeded, Minted: len(minted), Persisted: len(minted)}, nil
}
