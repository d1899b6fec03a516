package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/LUISFELIPE01010/secure-haven-agency/internal/api/http"
	"github.com/LUISFELIPE01010/secure-haven-agency/internal/api/http/handlers"
	"github.com/LUISFELIPE01010/secure-haven-agency/internal/auth"
	"github.com/LUISFELIPE01010/secure-haven-agency/internal/config"
	"github.com/LUISFELIPE01010/secure-haven-agency/internal/events"
	"github.com/LUISFELIPE01010/secure-haven-agency/internal/i18n"
	"github.com/LUISFELIPE01010/secure-haven-agency/internal/observability"
	"github.com/LUISFELIPE01010/secure-haven-agency/internal/persistence"
	"github.com/LUISFELIPE01010/secure-haven-agency/internal/repository"
	"github.com/LUISFELIPE01010/secure-haven-agency/internal/service"
	"github.com/LUISFELIPE01010/secure-haven-agency/internal/worker"
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

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

	pool := pg.PoolHandle()
	quoteRepo := repository.NewQuoteRepository(pool)
	contactRepo := repository.NewContactRepository(pool)
	adminRepo := repository.NewAdminRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	sessions := auth.NewRedisSessionStore(redis.Client)

	authService := service.NewAuthService(cfg.Auth, service.AuthDependencies{
		AdminRepo:    adminRepo,
		SessionStore: sessions,
		Dispatcher:   dispatcher,
		Logger:       logger,
	})
	submissionService := service.NewSubmissionService(quoteRepo, contactRepo, dispatcher, logger)
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	guard := auth.NewGuard(authService.TokenManager(), sessions, adminRepo)

	app := fiber.New()
	metrics := observability.NewMetrics()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:      handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Pages:       handlers.NewPagesHandler(i18n.NewCatalog(), cfg.App.DefaultLanguage),
		Submissions: handlers.NewSubmissionsHandler(submissionService),
		Auth:        handlers.NewAuthHandler(authService),
		Admin:       handlers.NewAdminHandler(submissionService),
		Guard:       guard,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
