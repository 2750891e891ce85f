package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classroom-llm/gateway-seeder/internal/repository"
	"github.com/classroom-llm/gateway-seeder/pkg/logger"
)

func seedPlanFixture() []repository.Statement {
	insertSQL := `INSERT INTO llm_app.users (api_key, username, password_hash, role, is_active, daily_token_limit, display_name, class_name)
VALUES (?, ?, crypt(?, gen_salt('bf', 12)), ?, true, ?, ?, ?)`

	return []repository.Statement{
		{SQL: `TRUNCATE TABLE llm_app.users CASCADE`},
		{SQL: insertSQL, Args: []any{"sk-admin", "admin", "1234", "admin", int64(999999999), "admin", "admin"}},
		{SQL: insertSQL, Args: []any{"sk-1", "1", "1234", "student", int64(100000), "test", "test"}},
		{SQL: insertSQL, Args: []any{"sk-2", "2", "1234", "student", int64(100000), "test", "test"}},
	}
}

func TestExecuteSeed_RunsPlanInOneTransaction(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSeedRepository(db, logger.NewLogger("test"))

	mock.ExpectBegin()
	mock.ExpectExec(`TRUNCATE TABLE llm_app\.users CASCADE`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO llm_app\.users`).
		WithArgs("sk-admin", "admin", "1234", "admin", int64(999999999), "admin", "admin").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO llm_app\.users`).
		WithArgs("sk-1", "1", "1234", "student", int64(100000), "test", "test").
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectExec(`INSERT INTO llm_app\.users`).
		WithArgs("sk-2", "2", "1234", "student", int64(100000), "test", "test").
		WillReturnResult(sqlmock.NewResult(3, 1))
	mock.ExpectCommit()

	err := repo.ExecuteSeed(context.Background(), seedPlanFixture())

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExecuteSeed_FailureRollsBackEverything(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSeedRepository(db, logger.NewLogger("test"))

	// The failure hits after the truncate and the first insert; the rollback
	// must restore the pre-run state, and no later statement may run.
	mock.ExpectBegin()
	mock.ExpectExec(`TRUNCATE TABLE llm_app\.users CASCADE`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO llm_app\.users`).
		WithArgs("sk-admin", "admin", "1234", "admin", int64(999999999), "admin", "admin").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO llm_app\.users`).
		WithArgs("sk-1", "1", "1234", "student", int64(100000), "test", "test").
		WillReturnError(errors.New("duplicate key value violates unique constraint"))
	mock.ExpectRollback()

	err := repo.ExecuteSeed(context.Background(), seedPlanFixture())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "seed statement 3 failed")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExecuteSeed_UpsertsPreserveOperatorEdits(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSeedRepository(db, logger.NewLogger("test"))

	plan := []repository.Statement{
		{SQL: `INSERT INTO llm_app.system_settings (key, value, description, updated_by) VALUES ('default_daily_limit', ?, 'Default daily token limit for new users', (SELECT id FROM llm_app.users WHERE username = 'admin')) ON CONFLICT (key) DO NOTHING`, Args: []any{"100000"}},
	}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO llm_app\.system_settings .+ ON CONFLICT \(key\) DO NOTHING`).
		WithArgs("100000").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.ExecuteSeed(context.Background(), plan)

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
