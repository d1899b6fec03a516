// Command provision creates the admin user and its role grant out-of-band.
// Credentials come from ADMIN_EMAIL and ADMIN_PASSWORD; the command is
// idempotent, so re-running it only reconciles the role grant.
package main

import (
	"context"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/LUISFELIPE01010/secure-haven-agency/internal/auth"
	"github.com/LUISFELIPE01010/secure-haven-agency/internal/config"
	"github.com/LUISFELIPE01010/secure-haven-agency/internal/observability"
	"github.com/LUISFELIPE01010/secure-haven-agency/internal/persistence"
	"github.com/LUISFELIPE01010/secure-haven-agency/internal/repository"
	"github.com/LUISFELIPE01010/secure-haven-agency/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		logger.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD are required")
	}

	ctx := context.Background()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	adminRepo := repository.NewAdminRepository(pg.PoolHandle())
	authService := service.NewAuthService(cfg.Auth, service.AuthDependencies{
		AdminRepo:    adminRepo,
		SessionStore: auth.NewRedisSessionStore(redis.Client),
		Logger:       logger,
	})

	user, err := authService.ProvisionAdmin(ctx, email, password)
	if err != nil {
		logger.Fatal("failed to provision admin", zap.Error(err))
	}

	logger.Info("admin provisioned", zap.String("user_id", user.ID), zap.String("email", user.Email))
}
