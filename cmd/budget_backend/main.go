package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	portsrepo "github.com/mknzz/budget_tracker_app/internal/core/ports/repositories"
	"github.com/mknzz/budget_tracker_app/internal/core/services"
	"github.com/mknzz/budget_tracker_app/internal/handlers"
	"github.com/mknzz/budget_tracker_app/internal/middleware"
	"github.com/mknzz/budget_tracker_app/internal/platform/config"
	"github.com/mknzz/budget_tracker_app/internal/repositories/kvstore"
	ledgerrepo "github.com/mknzz/budget_tracker_app/internal/repositories/ledger"
	"github.com/mknzz/budget_tracker_app/internal/repositories/rates"
)

// @title Budget Tracker API
// @version 1.0
// @description Personal finance tracker backend: transaction ledger, budget goals and currency conversion.

// @host localhost:8080
// @BasePath /

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

	// Open the key-value store backing all persistence
	var store portsrepo.KVStore
	if cfg.DataFile != "" {
		fileStore, err := kvstore.NewFileStore(cfg.DataFile)
		if err != nil {
			logger.Error("Failed to open data file", slog.String("error", err.Error()))
			os.Exit(1)
		}
		store = fileStore
		logger.Info("Using file-backed storage", slog.String("path", cfg.DataFile))
	} else {
		store = kvstore.NewMemoryStore()
		logger.Info("Using in-memory storage")
	}

	repos := &portsrepo.RepositoryProvider{
		LedgerRepo: ledgerrepo.NewLedgerRepository(store),
		UserRepo:   ledgerrepo.NewUserRepository(store),
	}

	// Rate sources in priority order; the fixed fallback table is the
	// guaranteed terminal state.
	rateSources := []portsrepo.RateSource{
		rates.NewPrimarySource(cfg.RatesPrimaryURL, cfg.RatesFetchTimeout),
		rates.NewBackupSource(cfg.RatesBackupURL, cfg.RatesFetchTimeout),
		rates.NewFallbackSource(),
	}

	serviceContainer := services.NewServiceContainer(repos, rateSources)

	// Warm the rate table in the background so a slow provider does not
	// hold up serving ledger requests.
	go func() {
		_, provenance := serviceContainer.ExchangeRate.RefreshRates(context.Background())
		logger.Info("Initial rate table loaded", slog.String("source", string(provenance)))
	}()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
