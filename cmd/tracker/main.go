package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/ticket-tracker/internal/api/http"
	"github.com/spec-kit/ticket-tracker/internal/api/http/handlers"
	"github.com/spec-kit/ticket-tracker/internal/config"
	"github.com/spec-kit/ticket-tracker/internal/events"
	"github.com/spec-kit/ticket-tracker/internal/observability"
	"github.com/spec-kit/ticket-tracker/internal/persistence"
	"github.com/spec-kit/ticket-tracker/internal/repository"
	"github.com/spec-kit/ticket-tracker/internal/service"
	"github.com/spec-kit/ticket-tracker/internal/store"
	"github.com/spec-kit/ticket-tracker/internal/viewstate"
	"github.com/spec-kit/ticket-tracker/internal/worker"
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

	slot, err := persistence.Open(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to open storage", zap.Error(err))
	}
	defer slot.Close()

	ticketRepo := repository.NewTicketRepository(slot, cfg.Storage.TicketsKey, logger)
	var registryRepo repository.RegistryRepository
	if cfg.Storage.PersistStatuses {
		registryRepo = repository.NewRegistryRepository(slot, cfg.Storage.StatusesKey, logger)
	}

	ticketStore := store.NewTicketStore(ticketRepo, logger)
	ticketStore.Load(ctx)

	registry := store.NewStatusRegistry(registryRepo, logger)
	registry.Load(ctx)

	dispatcher := events.NewInMemoryDispatcher()
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notify)
	worker.StartNotificationWorker(notificationService)

	ticketService := service.NewTicketService(service.TicketDependencies{
		Store:      ticketStore,
		Registry:   registry,
		Alerts:     cfg.Alerts,
		Dispatcher: dispatcher,
	})

	views := viewstate.NewController()
	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:    handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, slot),
		Dashboard: handlers.NewDashboardHandler(ticketService),
		Tickets:   handlers.NewTicketsHandler(ticketService, views),
		Statuses:  handlers.NewStatusesHandler(ticketService),
		Views:     handlers.NewViewHandler(ticketService, views),
		Guide:     handlers.NewGuideHandler(),
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
