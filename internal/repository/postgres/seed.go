package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/classroom-llm/gateway-seeder/internal/repository"
	"github.com/classroom-llm/gateway-seeder/pkg/logger"
)

type SeedRepository struct {
	db     *gorm.DB
	logger *logger.Logger
}

func NewSeedRepository(db *gorm.DB, log *logger.Logger) *SeedRepository {
	return &SeedRepository{db: db, logger: log}
}

// ExecuteSeed runs the whole plan inside a single transaction so the
// database never observes truncated accounts without their replacement rows.
// Any statement failure rolls back everything.
func (r *SeedRepository) ExecuteSeed(ctx context.Context, statements []repository.Statement) error {
	r.logger.Infof("executing %d seed statements in one transaction", len(statements))
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, stmt := range statements {
			if err := tx.Exec(stmt.SQL, stmt.Args...).Error; err != nil {
				return fmt.Errorf("seed statement %d failed: %w", i+1, err)
			}
		}
		return nil
	})
}
