package service

import (
	"strconv"

	"github.com/classroom-llm/gateway-seeder/internal/domain"
	"github.com/classroom-llm/gateway-seeder/internal/repository"
)

// Only fixed schema text lives in these templates. Anything that came from
// the gateway or from configuration is bound as a parameter, including the
// initial password, which PostgreSQL hashes in place via pgcrypto.
const (
	truncateUsersSQL = `TRUNCATE TABLE llm_app.users CASCADE`

	insertUserSQL = `INSERT INTO llm_app.users (api_key, username, password_hash, role, is_active, daily_token_limit, display_name, class_name)
VALUES (?, ?, crypt(?, gen_salt('bf', 12)), ?, true, ?, ?, ?)`

	// updated_by is resolved against the admin row inserted earlier in the
	// same transaction. ON CONFLICT keeps operator edits that survived the
	// cascade (settings rows not referencing a truncated user).
	upsertSystemSettingsSQL = `INSERT INTO llm_app.system_settings (key, value, description, updated_by)
VALUES
    ('llm_enabled', 'true', 'Whether LLM inference is enabled (false = emergency stop, GPU idle)',
        (SELECT id FROM llm_app.users WHERE username = 'admin')),
    ('schedule_enabled', 'false', 'Whether the operating schedule is enforced (false = always open)',
        (SELECT id FROM llm_app.users WHERE username = 'admin')),
    ('max_context_tokens', '4096', 'Maximum context tokens included in an LLM prompt',
        (SELECT id FROM llm_app.users WHERE username = 'admin')),
    ('default_daily_limit', ?, 'Default daily token limit for new users',
        (SELECT id FROM llm_app.users WHERE username = 'admin'))
ON CONFLICT (key) DO NOTHING`

	upsertSchedulesSQL = `INSERT INTO llm_app.operation_schedules (day_of_week, start_time, end_time, is_active)
VALUES
    (0, '00:00', '23:59', true),
    (1, '00:00', '23:59', true),
    (2, '00:00', '23:59', true),
    (3, '00:00', '23:59', true),
    (4, '00:00', '23:59', true),
    (5, '00:00', '23:59', true),
    (6, '00:00', '23:59', true)
ON CONFLICT (day_of_week) DO NOTHING`
)

// BuildSeedPlan translates minted credentials and baseline defaults into the
// ordered statement sequence the seed transaction executes: truncate, one
// insert per credential, then the conflict-preserving settings and schedule
// upserts. The settings upsert must run after the account inserts so its
// admin lookup resolves inside the same transaction.
func BuildSeedPlan(minted []domain.MintedCredential, defaults domain.SeedDefaults) []repository.Statement {
	statements := make([]repository.Statement, 0, len(minted)+3)

	statements = append(statements, repository.Statement{SQL: truncateUsersSQL})

	for _, cred := range minted {
		statements = append(statements, repository.Statement{
			SQL: insertUserSQL,
			Args: []any{
				cred.Key,
				cred.Tenant.UserID,
				defaults.InitialPassword,
				string(cred.Tenant.Role),
				cred.Policy.DailyTokenLimit,
				cred.Policy.DisplayName,
				cred.Policy.ClassName,
			},
		})
	}

	statements = append(statements, repository.Statement{
		SQL:  upsertSystemSettingsSQL,
		Args: []any{strconv.FormatInt(defaults.DefaultDailyTokenLimit, 10)},
	})
	statements = append(statements, repository.Statement{SQL: upsertSchedulesSQL})

	return statements
}
