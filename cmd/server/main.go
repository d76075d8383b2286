package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpAdapter "github.com/exchangethb/exchange-data-service/internal/adapters/http"
	"github.com/exchangethb/exchange-data-service/internal/adapters/memory"
	"github.com/exchangethb/exchange-data-service/internal/adapters/postgres"
	redisAdapter "github.com/exchangethb/exchange-data-service/internal/adapters/redis"
	"github.com/exchangethb/exchange-data-service/internal/config"
	"github.com/exchangethb/exchange-data-service/internal/domain"
	"github.com/exchangethb/exchange-data-service/internal/ports"
	"github.com/exchangethb/exchange-data-service/internal/repository"
	"github.com/exchangethb/exchange-data-service/internal/services"
)

func main() {
	// Initialize logger
	logger := initLogger()
	slog.SetDefault(logger)

	logger.Info("starting exchange data service")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	if err := domain.SetDisplayLocation(cfg.Display.Timezone); err != nil {
		logger.Error("invalid display timezone", "timezone", cfg.Display.Timezone, "error", err)
		os.Exit(1)
	}

	// Create root context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Build and start application
	app, err := buildApplication(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to build application", "error", err)
		os.Exit(1)
	}

	app.Start()

	// Wait for shutdown signal
	waitForShutdown(ctx, cancel, app, logger)
}

func initLogger() *slog.Logger {
	logLevel := os.Getenv("LOG_LEVEL")
	logFormat := os.Getenv("LOG_FORMAT")

	var level slog.Level
	switch logLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	if logFormat == "text" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}

// Application holds all components
type Application struct {
	db         *postgres.DB
	redis      *redisAdapter.KVStore
	httpServer *httpAdapter.Server
	logger     *slog.Logger
}

func buildApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Application, error) {
	logger.Info("building application", "storage_driver", cfg.Storage.Driver)

	app := &Application{logger: logger}

	// 1. Infrastructure Layer - Key-Value Store
	var store ports.KeyValueStore
	switch cfg.Storage.Driver {
	case "postgres":
		db, err := postgres.NewDB(ctx, cfg.Database, logger)
		if err != nil {
			return nil, err
		}
		if err := db.Migrate(); err != nil {
			db.Close()
			return nil, err
		}
		app.db = db
		store = postgres.NewKVStore(db)

	case "redis":
		kv, err := redisAdapter.NewKVStore(ctx, cfg.Redis, logger)
		if err != nil {
			return nil, err
		}
		app.redis = kv
		store = kv

	case "memory":
		logger.Warn("using in-memory storage, data will not survive a restart")
		store = memory.NewStore()

	default:
		return nil, fmt.Errorf("unknown storage driver: %s", cfg.Storage.Driver)
	}

	// 2. Infrastructure Layer - Typed Repositories
	priceRepo := repository.NewPriceRepository(store)
	exchangeRepo := repository.NewExchangeRepository(store)
	historyRepo := repository.NewHistoryRepository(store)
	prefRepo := repository.NewPreferenceRepository(store)

	// 3. Service Layer
	metricsService := services.NewMetricsService(store, logger)
	priceService := services.NewPriceService(priceRepo, metricsService, logger)
	exchangeService := services.NewExchangeService(exchangeRepo, metricsService, logger)
	historyService := services.NewHistoryService(historyRepo, metricsService, logger)
	prefService := services.NewPreferenceService(prefRepo, logger)
	seedService := services.NewSeedService(priceRepo, exchangeRepo, historyRepo, logger)

	// 4. Transport Layer - HTTP Server
	app.httpServer = httpAdapter.NewServer(
		cfg.Server,
		priceService,
		exchangeService,
		historyService,
		prefService,
		seedService,
		metricsService,
		store,
		logger,
	)

	logger.Info("application built successfully")
	return app, nil
}

func (a *Application) Start() {
	a.logger.Info("starting application components")

	// Start HTTP server in background (will block until shutdown)
	go func() {
		if err := a.httpServer.Start(); err != nil {
			a.logger.Error("http server error", "error", err)
		}
	}()

	a.logger.Info("application started", "http_addr", a.httpServer.Addr())
}

func (a *Application) Shutdown() {
	a.logger.Info("shutting down application")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.logger.Error("failed to shutdown http server", "error", err)
	}

	if a.db != nil {
		a.db.Close()
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Error("failed to close redis connection", "error", err)
		}
	}

	a.logger.Info("application shutdown complete")
}

func waitForShutdown(ctx context.Context, cancel context.CancelFunc, app *Application, logger *slog.Logger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
		app.Shutdown()
	case <-ctx.Done():
		app.Shutdown()
	}
}
