package repository

import (
	"context"

	"github.com/classroom-llm/gateway-seeder/internal/domain"
)

// Statement is one parameterized SQL statement in a seed plan. Every value
// sourced from network input or configuration travels in Args; only fixed
// schema text is inlined in SQL.
type Statement struct {
	SQL  string
	Args []any
}

//go:generate mockery --name UserRepository --output ../mocks
type UserRepository interface {
	SeedState(ctx context.Context) domain.SeedState
}

//go:generate mockery --name SeedExecutor --output ../mocks
type SeedExecutor interface {
	ExecuteSeed(ctx context.Context, statements []Statement) error
}

//go:generate mockery --name Repository --output ../mocks
type Repository interface {
	Users() UserRepository
	Seed() SeedExecutor
}
