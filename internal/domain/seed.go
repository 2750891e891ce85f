package domain

// SeedState is the outcome of probing the account database before a run.
type SeedState int

const (
	// SeedStateNotMigrated means the probe itself failed, typically because
	// the schema has not been created yet. A first deploy must still seed.
	SeedStateNotMigrated SeedState = iota

	// SeedStateEmpty means the users table exists but holds no student rows.
	SeedStateEmpty

	// SeedStateSeeded means student rows already exist and the run is a no-op.
	SeedStateSeeded
)

func (s SeedState) String() string {
	switch s {
	case SeedStateEmpty:
		return "empty"
	case SeedStateSeeded:
		return "seeded"
	default:
		return "not-migrated"
	}
}

// SeedDefaults carries the baseline values written alongside the minted
// credentials: the shared initial password (hashed in-database, disclosed
// once to operators) and the default daily token limit restored into the
// system settings.
type SeedDefaults struct {
	InitialPassword        string
	DefaultDailyTokenLimit int64
}
