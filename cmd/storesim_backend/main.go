package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/storefront_sim/internal/adapters/presenter"
	"github.com/SscSPs/storefront_sim/internal/adapters/random"
	"github.com/SscSPs/storefront_sim/internal/adapters/telemetry"
	"github.com/SscSPs/storefront_sim/internal/core/domain"
	portsrepo "github.com/SscSPs/storefront_sim/internal/core/ports/repositories"
	"github.com/SscSPs/storefront_sim/internal/core/services"
	"github.com/SscSPs/storefront_sim/internal/engine"
	"github.com/SscSPs/storefront_sim/internal/handlers"
	"github.com/SscSPs/storefront_sim/internal/middleware"
	"github.com/SscSPs/storefront_sim/internal/platform/config"
	"github.com/SscSPs/storefront_sim/internal/platform/eventbus"
	"github.com/SscSPs/storefront_sim/internal/repositories/database/pgsql"
	"github.com/SscSPs/storefront_sim/internal/repositories/memory"
	"github.com/SscSPs/storefront_sim/internal/utils"
	"github.com/SscSPs/storefront_sim/pkg/database"
	"github.com/gin-gonic/gin"
)

// @title Storefront Sim API
// @version 1.0
// @description Checkout and finance backend of the storefront simulation.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("Server stopped with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, closeRepos, err := setupRepositories(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeRepos()

	seed := cfg.RandomSeed
	if seed == 0 {
		if seed, err = utils.GenerateSeed(); err != nil {
			return fmt.Errorf("failed to generate random seed: %w", err)
		}
	}
	logger.Info("Simulation seeded", slog.Uint64("seed", seed))

	bus := eventbus.New(logger)
	bus.SubscribeAll(func(event domain.Event) {
		logger.Debug("Domain event", slog.String("event", event.EventName()), slog.Any("payload", event))
	})
	bus.Subscribe(domain.DayAdvanced{}.EventName(), func(event domain.Event) {
		logger.Info("Day advanced", slog.Int("day", event.(domain.DayAdvanced).Day))
	})

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
	defer posthogClient.Close()

	progress := telemetry.NewProgressCounters()
	trackers := telemetry.Multi{progress}
	if posthogClient.IsInitialized() {
		trackers = append(trackers, telemetry.NewPosthogTracker(posthogClient, "storefront"))
	}

	container, err := services.NewServiceContainer(cfg, repos, services.Collaborators{
		Random:    random.NewSource(seed),
		Events:    bus,
		Progress:  trackers,
		Presenter: presenter.NewSlogPresenter(logger),
	})
	if err != nil {
		return fmt.Errorf("failed to create services: %w", err)
	}

	// the loop is not running yet, so this goroutine still owns the state
	if err := container.Staff.RestoreStaffing(ctx); err != nil {
		return fmt.Errorf("failed to restore staffing: %w", err)
	}

	loop := engine.NewLoop(cfg.TickInterval, cfg.DayLength, logger)
	loop.OnTick = container.Checkout.Tick
	loop.OnDay = func(ctx context.Context) {
		if _, err := container.Day.AdvanceDay(ctx); err != nil {
			logger.Error("Automatic day advance failed", slog.String("error", err.Error()))
		}
	}
	loopDone := make(chan struct{})
	go func() {
		defer close(loopDone)
		loop.Run(ctx)
	}()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	if err := r.SetTrustedProxies(nil); err != nil {
		return fmt.Errorf("failed to set trusted proxies: %w", err)
	}

	err = handlers.RegisterRoutes(r, cfg, handlers.Dependencies{
		Services: container,
		Runner:   loop,
		Progress: progress,
		Posthog:  posthogClient,
	})
	if err != nil {
		return fmt.Errorf("failed to register routes: %w", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-serveErr:
		if err != nil {
			stop()
			<-loopDone
			return fmt.Errorf("server failed to run: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", slog.String("error", err.Error()))
	}
	stop()
	<-loopDone
	logger.Info("Server stopped")
	return nil
}

// setupRepositories opens the configured storage. The returned func releases it.
func setupRepositories(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	if cfg.StorageDriver == config.StorageMemory {
		logger.Info("Using in-memory storage")
		return memory.NewRepositoryProvider(cfg.StartingBalance, cfg.Catalog.Products), func() {}, nil
	}

	if err := database.RunMigrations(cfg.DatabaseURL, database.DefaultMigrationsPath, logger); err != nil {
		return portsrepo.RepositoryProvider{}, nil, err
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, logger)
	if err != nil {
		return portsrepo.RepositoryProvider{}, nil, fmt.Errorf("failed to initialize database pool: %w", err)
	}
	if err := pgsql.SeedStore(ctx, dbPool, cfg.StartingBalance, cfg.Catalog.Products); err != nil {
		dbPool.Close()
		return portsrepo.RepositoryProvider{}, nil, err
	}

	return pgsql.NewRepositoryProvider(dbPool), func() { database.ClosePgxPool(dbPool, logger) }, nil
}
