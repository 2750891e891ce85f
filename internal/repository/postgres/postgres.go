package postgres

import (
	"gorm.io/gorm"

	"github.com/classroom-llm/gateway-seeder/internal/repository"
	"github.com/classroom-llm/gateway-seeder/pkg/logger"
)

type postgresRepository struct {
	userRepo repository.UserRepository
	seedRepo repository.SeedExecutor
}

func NewPostgresRepository(db *gorm.DB, log *logger.Logger) repository.Repository {
	return &postgresRepository{
		userRepo: NewUserRepository(db, log),
		seedRepo: NewSeedRepository(db, log),
	}
}

func (r *postgresRepository) Users() repository.UserRepository {
	return r.userRepo
}

func (r *postgresRepository) Seed() repository.SeedExecutor {
	return r.seedRepo
}
