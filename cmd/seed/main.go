// Command seed creates the default admin account, categories and sample courses.
package main

import (
	"context"
	"log"
	"os"

	"github.com/dambastudy/backend/internal/seed"
	"github.com/dambastudy/backend/internal/server"
	"github.com/dambastudy/backend/libs/config"
	"github.com/dambastudy/backend/libs/logger"
	"go.uber.org/zap"
)

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}

	if err := run(cfg); err != nil {
		logger.Logger.Error("Seeding failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Sync()
}

func run(cfg *config.Config) error {
	ctx := context.Background()

	stores, closeStores, err := server.OpenStores(ctx, cfg, logger.Logger)
	if err != nil {
		return err
	}
	defer closeStores()

	admin := seed.Admin{
		Name:     envOr("ADMIN_NAME", "Admin"),
		Email:    envOr("ADMIN_EMAIL", "admin@example.com"),
		Password: envOr("ADMIN_PASSWORD", "admin123"),
	}

	seeder := seed.NewSeeder(stores.Users, stores.Categories, stores.Courses, logger.Logger)
	result, err := seeder.Run(ctx, admin)
	if err != nil {
		return err
	}

	logger.Logger.Info("Seeding finished",
		zap.Bool("admin_created", result.AdminCreated),
		zap.Int("categories_created", result.Categories),
		zap.Int("courses_created", result.Courses),
	)
	return nil
}
