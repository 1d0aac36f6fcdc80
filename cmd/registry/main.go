package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/hr-platform/internal/api/docs"
	httptransport "github.com/spec-kit/hr-platform/internal/api/http"
	"github.com/spec-kit/hr-platform/internal/api/http/handlers"
	"github.com/spec-kit/hr-platform/internal/config"
	"github.com/spec-kit/hr-platform/internal/observability"
	"github.com/spec-kit/hr-platform/internal/persistence"
	"github.com/spec-kit/hr-platform/internal/repository"
	"github.com/spec-kit/hr-platform/internal/service"
)

func main() {
	cfg, err := config.Load("registry-service", "3005")
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

	if cfg.Postgres.RunMigrations && pg.PoolHandle() != nil {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	repos := repository.NewSet(pg.PoolHandle())
	registryService := service.NewRegistryService(repos.Employees, repos.Counselors)
	beneficiaryService := service.NewBeneficiaryService(repos.Beneficiaries)

	metrics := observability.NewMetrics()
	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRegistryRoutes(app, httptransport.RegistryRoutes{
		Health:        handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, nil),
		Employees:     handlers.NewEmployeesHandler(registryService),
		Beneficiaries: handlers.NewBeneficiariesHandler(beneficiaryService),
		Counselors:    handlers.NewCounselorsHandler(registryService),
		Docs:          handlers.NewDocsHandler(docs.Registry(cfg.App.Version)),
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
