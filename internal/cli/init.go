// Package cli provides common initialization for the driveledger
// command: environment loading, logging, configuration and wiring of
// the store, ledger, aggregator and exporter.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/hassankh203/drive-smart-finance-flow/internal/backend"
	"github.com/hassankh203/drive-smart-finance-flow/internal/config"
	"github.com/hassankh203/drive-smart-finance-flow/internal/log"
	"github.com/hassankh203/drive-smart-finance-flow/internal/report"
	"github.com/hassankh203/drive-smart-finance-flow/internal/services"
	"github.com/hassankh203/drive-smart-finance-flow/internal/storage"
)

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// SetupLogger initializes structured logging at the configured level
// and installs it as the process default. An unknown level name falls
// back to info; Validate reports it to the user beforehand.
func SetupLogger(cfg *config.Config) *log.Logger {
	level, err := cfg.SlogLevel()
	if err != nil {
		level = slog.LevelInfo
	}
	logger := log.New(level, log.ComponentApp)
	log.SetDefault(logger)
	return logger
}

// LoadAndValidateConfig loads configuration from the environment and
// validates it.
func LoadAndValidateConfig() (*config.Config, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// App bundles the wired application collaborators for one command
// invocation.
type App struct {
	Config     *config.Config
	Logger     *log.Logger
	Store      storage.DocumentStore
	Ledger     *services.Ledger
	Aggregator *services.Aggregator
	Exporter   *report.Exporter
}

// InitApp opens the configured backend and wires the ledger and its
// read-side collaborators on top of it. Callers own the returned App
// and must Close it.
func InitApp(ctx context.Context, cfg *config.Config, logger *log.Logger) (*App, error) {
	store, err := backend.Open(backend.Config{
		Type:         backend.Type(cfg.DataBackend),
		SQLiteDBPath: cfg.SQLiteDBPath,
	}, logger.WithComponent(log.ComponentStorage).Logger)
	if err != nil {
		return nil, fmt.Errorf("open %s backend: %w", cfg.DataBackend, err)
	}

	ledger, err := services.NewLedger(ctx, store, services.LedgerOptions{
		PersistPlatforms: cfg.PersistPlatforms,
	})
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("initialize ledger: %w", err)
	}

	agg := services.NewAggregator(ledger, time.Now)
	exporter := report.NewExporter(cfg.ExportDir, ledger, agg,
		logger.WithComponent(log.ComponentReport), report.ExporterOptions{})

	return &App{
		Config:     cfg,
		Logger:     logger,
		Store:      store,
		Ledger:     ledger,
		Aggregator: agg,
		Exporter:   exporter,
	}, nil
}

// Close releases the App's backend resources.
func (a *App) Close() {
	if err := a.Store.Close(); err != nil {
		a.Logger.Error("closing store", "error", err)
	}
}

// SignalContext returns a context cancelled on SIGINT or SIGTERM, so
// long exports can be interrupted cleanly.
func SignalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
