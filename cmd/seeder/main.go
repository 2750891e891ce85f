package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/classroom-llm/gateway-seeder/internal/config"
	"github.com/classroom-llm/gateway-seeder/internal/domain"
	"github.com/classroom-llm/gateway-seeder/internal/gateway"
	"github.com/classroom-llm/gateway-seeder/internal/repository/postgres"
	"github.com/classroom-llm/gateway-seeder/internal/service"
	"github.com/classroom-llm/gateway-seeder/pkg/logger"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	// Initialize logger
	appLogger := logger.NewLogger(os.Getenv("APP_ENV"))
	defer appLogger.Sync()

	cfg, err := config.Load()
	if err != nil {
		appLogger.Fatal("Invalid configuration", err)
	}

	db, err := config.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		appLogger.Fatal("Failed to open PostgreSQL connection", err)
	}
	defer config.CloseDatabase(db)

	// A signal during the readiness wait or the mint loop just stops the
	// process; the next run's purge cleans up anything already minted.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gatewayClient := gateway.NewHTTPClient(
		cfg.GatewayURL,
		cfg.GatewayMasterKey,
		cfg.ReadinessMaxAttempts,
		cfg.ReadinessPollInterval,
		appLogger,
	)
	provisioner := service.NewProvisioner(gatewayClient, cfg.Policies, cfg.GatewayModels, appLogger)
	seeder := service.NewSeeder(
		postgres.NewPostgresRepository(db, appLogger),
		gatewayClient,
		provisioner,
		cfg.StudentCount,
		domain.SeedDefaults{
			InitialPassword:        cfg.InitialPassword,
			DefaultDailyTokenLimit: cfg.Policies.Student.DailyTokenLimit,
		},
		appLogger,
	)

	result, err := seeder.Run(ctx)
	if err != nil {
		appLogger.Fatal("Seeding failed", err)
	}

	switch result.Outcome {
	case service.OutcomeSkipped:
		appLogger.Info("Seed skipped, database already provisioned")
	default:
		appLogger.Infof("Seed complete: %d credentials minted, %d accounts persisted", result.Minted, result.Persisted)
	}
}
