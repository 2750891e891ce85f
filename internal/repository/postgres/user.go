package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/classroom-llm/gateway-seeder/internal/domain"
	"github.com/classroom-llm/gateway-seeder/pkg/logger"
)

// SQLSTATE for a relation that does not exist.
const pgUndefinedTable = "42P01"

type UserRepository struct {
	db     *gorm.DB
	logger *logger.Logger
}

func NewUserRepository(db *gorm.DB, log *logger.Logger) *UserRepository {
	return &UserRepository{db: db, logger: log}
}

// SeedState probes llm_app.users for existing student rows. A failed probe
// maps to not-migrated so a first deploy without the schema still seeds;
// only an affirmative student count short-circuits the run.
func (r *UserRepository) SeedState(ctx context.Context) domain.SeedState {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.User{}).
		Where("role = ?", string(domain.RoleStudent)).
		Count(&count).Error
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUndefinedTable {
			r.logger.Infof("users table does not exist yet, treating database as unseeded")
		} else {
			r.logger.Warnf("seed sentinel probe failed, treating database as unseeded: %v", err)
		}
		return domain.SeedStateNotMigrated
	}
	if count > 0 {
		return domain.SeedStateSeeded
	}
	return domain.SeedStateEmpty
}
