// Package main implements the entry point for the news API server.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/harwoodm/newsdesk/internal/config"
	"github.com/harwoodm/newsdesk/internal/platform/logger"
)

func main() {
	migrateCmd := flag.String("migrate", "", "run a migration command (up, down, status) and exit")
	migrationsDir := flag.String("migrations-dir", "migrations", "path to the goose migrations directory")
	flag.Parse()

	// A local .env is a development convenience; absence is not an error.
	if err := godotenv.Load(); err == nil {
		slog.Debug("loaded environment from .env")
	}

	app, err := newApplication()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.cleanup()

	if *migrateCmd != "" {
		if err := app.runMigrations(*migrateCmd, *migrationsDir); err != nil {
			app.logger.Error("Migration failed", "command", *migrateCmd, "error", err)
			os.Exit(1)
		}
		return
	}

	if err := app.startHTTPServer(context.Background(), app.setupRouter()); err != nil {
		app.logger.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

// newApplication loads configuration, sets up logging and connects to the
// database, returning the assembled application.
func newApplication() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger := logger.Setup(cfg.Server)
	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := setupDatabase(cfg, appLogger)
	if err != nil {
		return nil, err
	}

	return &application{
		config: cfg,
		logger: appLogger,
		db:     db,
	}, nil
}
