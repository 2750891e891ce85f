package gateway

import "context"

//go:generate mockery --name Client --output ../mocks
type Client interface {
	// WaitUntilReady polls the readiness endpoint with a bounded attempt
	// count and a fixed interval. An error means the gateway never became
	// ready inside the budget; the caller must treat that as fatal.
	WaitUntilReady(ctx context.Context) error

	// ListKeys fetches every credential currently issued by the gateway.
	ListKeys(ctx context.Context) ([]string, error)

	// DeleteKeys bulk-deletes the given credentials. A nil or empty slice
	// is a no-op.
	DeleteKeys(ctx context.Context, keys []string) error

	// GenerateKey mints one credential with the policy carried by req.
	GenerateKey(ctx context.Context, req KeyRequest) (string, error)
}

// KeyRequest mirrors the gateway's /key/generate payload. Duration is always
// serialized, null meaning a non-expiring key.
type KeyRequest struct {
	Models    []string          `json:"models"`
	Aliases   map[string]string `json:"aliases"`
	Duration  *string           `json:"duration"`
	MaxBudget float64           `json:"max_budget"`
	TPMLimit  int               `json:"tpm_limit"`
	RPMLimit  int               `json:"rpm_limit"`
	Metadata  KeyMetadata       `json:"metadata"`
	KeyAlias  string            `json:"key_alias"`
}

// KeyMetadata tags a minted key with the tenant it belongs to so gateway-side
// usage records can be attributed back to an account.
type KeyMetadata struct {
	UserID     string `json:"user_id"`
	Role       string `json:"role"`
	TrackUsage bool   `json:"track_usage"`
	SeedRun    string `json:"seed_run,omitempty"`
}
