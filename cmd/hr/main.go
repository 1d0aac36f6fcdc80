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
	"github.com/spec-kit/hr-platform/internal/events"
	"github.com/spec-kit/hr-platform/internal/observability"
	"github.com/spec-kit/hr-platform/internal/outbox"
	"github.com/spec-kit/hr-platform/internal/persistence"
	"github.com/spec-kit/hr-platform/internal/remote"
	"github.com/spec-kit/hr-platform/internal/repository"
	"github.com/spec-kit/hr-platform/internal/service"
	"github.com/spec-kit/hr-platform/internal/worker"
)

func main() {
	cfg, err := config.Load("hr-service", "3001")
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

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	repos := repository.NewSet(pg.PoolHandle())
	remoteClient := remote.NewClient(cfg.Remote, logger)

	var queue outbox.Queue
	if redis.Ping(ctx) == nil {
		queue = outbox.NewRedisQueue(redis.Client, cfg.Notification.OutboxKey)
	} else {
		logger.Warn("redis unavailable; using in-memory outbox")
		queue = outbox.NewMemoryQueue(0)
	}

	hrService := service.NewHRService(cfg.Collaborators, service.HRDependencies{
		EmployeeRepo: repos.Employees,
		CompanyRepo:  repos.Companies,
		Remote:       remoteClient,
		Outbox:       queue,
	}, logger)
	beneficiaryService := service.NewBeneficiaryService(repos.Beneficiaries)

	dispatcher := events.NewInMemoryDispatcher()
	mailer := service.NewLogMailer(cfg.Notification, logger)
	relay := service.NewRelayService(dispatcher, remoteClient, mailer, cfg.Collaborators, logger)
	relay.RegisterHandlers()

	sideline := worker.NewSideline(queue, dispatcher, logger)
	go sideline.Run(ctx)

	metrics := observability.NewMetrics()
	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterHRRoutes(app, httptransport.HRRoutes{
		Health:        handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		HR:            handlers.NewHRHandler(hrService),
		Beneficiaries: handlers.NewBeneficiariesHandler(beneficiaryService),
		Docs:          handlers.NewDocsHandler(docs.HR(cfg.App.Version)),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	cancel()
	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
