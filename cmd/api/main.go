package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/helpdesk-kit/request-service/internal/api/http"
	"github.com/helpdesk-kit/request-service/internal/api/http/handlers"
	"github.com/helpdesk-kit/request-service/internal/config"
	"github.com/helpdesk-kit/request-service/internal/events"
	"github.com/helpdesk-kit/request-service/internal/observability"
	"github.com/helpdesk-kit/request-service/internal/persistence"
	"github.com/helpdesk-kit/request-service/internal/repository"
	"github.com/helpdesk-kit/request-service/internal/service"
	"github.com/helpdesk-kit/request-service/internal/worker"
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
	contactRepo := repository.NewContactRepository(pool)
	ticketRepo := repository.NewTicketRepository(pool)
	requestRepo := repository.NewRequestRepository(pool)
	commsRepo := repository.NewCommsRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()

	contactService := service.NewContactService(contactRepo, dispatcher)
	requestService := service.NewRequestService(requestRepo)
	commsService := service.NewCommsService(commsRepo, contactRepo, dispatcher)
	ticketWorkflow := service.NewTicketWorkflow(service.WorkflowDependencies{
		TicketRepo:  ticketRepo,
		RequestRepo: requestRepo,
		CommsRepo:   commsRepo,
		ContactRepo: contactRepo,
		Dispatcher:  dispatcher,
		Logger:      logger,
	})

	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:   handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Contacts: handlers.NewContactsHandler(contactService),
		Tickets:  handlers.NewTicketsHandler(ticketWorkflow),
		Requests: handlers.NewRequestsHandler(requestService),
		Comms:    handlers.NewCommsHandler(commsService),
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
