package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/course-library-api/internal/config"
	"github.com/phrazzld/course-library-api/internal/platform/postgres"
	"github.com/pressly/goose/v3"
)

// migrationsSourceDir is where -migrate=create writes new files, relative
// to the repository root.
const migrationsSourceDir = "internal/platform/postgres/migrations"

// slogGooseLogger adapts goose logging to slog.
type slogGooseLogger struct{}

// Printf forwards goose messages to slog.Info.
func (l *slogGooseLogger) Printf(format string, v ...interface{}) {
	slog.Info(fmt.Sprintf(format, v...))
}

// Fatalf forwards goose errors to slog.Error. It does not exit; the error
// is returned to main.
func (l *slogGooseLogger) Fatalf(format string, v ...interface{}) {
	slog.Error(fmt.Sprintf(format, v...))
}

// handleMigrations runs one goose command against the configured database.
// Migrations are read from the files embedded in the postgres package.
func handleMigrations(ctx context.Context, cfg *config.Config, command, name string) error {
	migrationLogger := slog.Default().With(
		"correlation_id", uuid.New().String(),
		"component", "migrations",
		"command", command,
	)
	startTime := time.Now()

	goose.SetLogger(&slogGooseLogger{})
	goose.SetTableName(postgres.MigrationTableName)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	if command == "create" {
		if name == "" {
			return fmt.Errorf("migration name is required for 'create' command")
		}
		// New files go to the source tree, not the embedded copy
		goose.SetBaseFS(nil)
		if err := goose.Create(nil, migrationsSourceDir, name, "sql"); err != nil {
			return fmt.Errorf("migration command 'create' failed: %w", err)
		}
		migrationLogger.Info("Migration created", "name", name, "directory", migrationsSourceDir)
		return nil
	}

	if cfg.Database.URL == "" {
		return fmt.Errorf("database URL is empty: set COURSELIB_DATABASE_URL")
	}

	db, err := openDatabase(ctx, cfg.Database, migrationLogger)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			migrationLogger.Error("Error closing database connection", "error", err)
		}
	}()

	goose.SetBaseFS(postgres.Migrations)
	defer goose.SetBaseFS(nil)

	if err := runGooseCommand(ctx, db, command); err != nil {
		migrationLogger.Error("Migration command failed",
			"error", err,
			"duration_ms", time.Since(startTime).Milliseconds())
		return fmt.Errorf("migration command '%s' failed: %w", command, err)
	}

	migrationLogger.Info("Migration command executed successfully",
		"duration_ms", time.Since(startTime).Milliseconds())
	return nil
}

func runGooseCommand(ctx context.Context, db *sql.DB, command string) error {
	dir := postgres.MigrationsDir
	switch command {
	case "up":
		return goose.UpContext(ctx, db, dir)
	case "down":
		return goose.DownContext(ctx, db, dir)
	case "reset":
		return goose.ResetContext(ctx, db, dir)
	case "status":
		return goose.StatusContext(ctx, db, dir)
	case "version":
		return goose.VersionContext(ctx, db, dir)
	default:
		return fmt.Errorf(
			"unknown migration command: %s (expected up, down, reset, status, version, or create)",
			command,
		)
	}
}
