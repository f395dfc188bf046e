// Package main implements the entry point for the course library API
// server. It loads configuration, sets up logging, opens the database when
// one is configured, and either serves HTTP or runs a migration command.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"

	"github.com/phrazzld/course-library-api/internal/config"
	"github.com/phrazzld/course-library-api/internal/platform/logger"
)

func main() {
	migrateCmd := flag.String("migrate", "", "Run a migration command: up, down, reset, status, version or create")
	migrationName := flag.String("name", "", "Name of the migration to create (with -migrate=create)")
	flag.Parse()

	if err := run(context.Background(), *migrateCmd, *migrationName); err != nil {
		log.Fatalf("course library API: %v", err)
	}
}

func run(ctx context.Context, migrateCmd, migrationName string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"database_configured", cfg.Database.URL != "",
		"patch_profile", cfg.Validation.PatchProfile,
		"validation_status", cfg.API.ValidationStatus)

	if migrateCmd != "" {
		return handleMigrations(ctx, cfg, migrateCmd, migrationName)
	}

	db, err := setupAppDatabase(ctx, cfg, l)
	if err != nil {
		return err
	}

	app, err := newApplication(cfg, l, db)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.startHTTPServer(ctx, app.setupRouter())
}
