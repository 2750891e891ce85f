package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/classroom-llm/gateway-seeder/internal/domain"
)

// Admin accounts are effectively unmetered; students get classroom defaults.
const (
	defaultStudentRPM        = 10
	defaultStudentTPM        = 100000
	defaultStudentBudget     = 1.0
	defaultStudentDailyLimit = 100000
	defaultAdminRPM          = 1000
	defaultAdminTPM          = 1000000
	defaultAdminBudget       = 1000.0
	defaultAdminDailyLimit   = 999999999
)

type Config struct {
	GatewayURL            string
	GatewayMasterKey      string
	GatewayModels         []string
	DatabaseURL           string
	StudentCount          int
	InitialPassword       string
	ReadinessMaxAttempts  int
	ReadinessPollInterval time.Duration
	Policies              domain.PolicyCatalog
}

// Load reads the seeder configuration from environment variables. The gateway
// master key and the database URL have no safe default, so a missing value is
// a fatal configuration error raised before any network or database activity.
func Load() (*Config, error) {
	masterKey := os.Getenv("LITELLM_MASTER_KEY")
	if masterKey == "" {
		return nil, errors.New("LITELLM_MASTER_KEY environment variable is required")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return nil, errors.New("DATABASE_URL environment variable is required")
	}

	return &Config{
		GatewayURL:            getEnvWithDefault("LITELLM_URL", "http://localhost:4000"),
		GatewayMasterKey:      masterKey,
		GatewayModels:         []string{getEnvWithDefault("LITELLM_MODEL_NAME", "Local LLM")},
		DatabaseURL:           databaseURL,
		StudentCount:          getEnvIntWithDefault("STUDENT_COUNT", 100),
		InitialPassword:       getEnvWithDefault("INITIAL_PASSWORD", "1234"),
		ReadinessMaxAttempts:  getEnvIntWithDefault("READINESS_MAX_ATTEMPTS", 30),
		ReadinessPollInterval: getEnvDurationWithDefault("READINESS_POLL_INTERVAL", 2*time.Second),
		Policies: domain.PolicyCatalog{
			Admin: domain.Policy{
				RPMLimit:        getEnvIntWithDefault("ADMIN_RATE_LIMIT_RPM", defaultAdminRPM),
				TPMLimit:        getEnvIntWithDefault("ADMIN_RATE_LIMIT_TPM", defaultAdminTPM),
				MaxBudget:       getEnvFloatWithDefault("ADMIN_MAX_BUDGET", defaultAdminBudget),
				DailyTokenLimit: defaultAdminDailyLimit,
				DisplayName:     "admin",
				ClassName:       "admin",
			},
			Student: domain.Policy{
				RPMLimit:        getEnvIntWithDefault("DEFAULT_RATE_LIMIT_RPM", defaultStudentRPM),
				TPMLimit:        getEnvIntWithDefault("DEFAULT_RATE_LIMIT_TPM", defaultStudentTPM),
				MaxBudget:       getEnvFloatWithDefault("DEFAULT_STUDENT_MAX_BUDGET", defaultStudentBudget),
				DailyTokenLimit: int64(getEnvIntWithDefault("DEFAULT_DAILY_TOKEN_LIMIT", defaultStudentDailyLimit)),
				DisplayName:     "test",
				ClassName:       "test",
			},
		},
	}, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatWithDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvDurationWithDefault returns environment variable as duration or default if not set
func getEnvDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
