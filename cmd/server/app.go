package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/course-library-api/internal/api"
	"github.com/phrazzld/course-library-api/internal/config"
	"github.com/phrazzld/course-library-api/internal/platform/memory"
	"github.com/phrazzld/course-library-api/internal/platform/metrics"
	"github.com/phrazzld/course-library-api/internal/platform/postgres"
	"github.com/phrazzld/course-library-api/internal/reconcile"
	"github.com/phrazzld/course-library-api/internal/service"
	"github.com/phrazzld/course-library-api/internal/store"
	"github.com/phrazzld/course-library-api/internal/validation"
)

// application holds the shared dependencies of the server and releases
// them on shutdown.
type application struct {
	config  *config.Config
	logger  *slog.Logger
	db      *sql.DB // nil when running on the in-memory store
	metrics *metrics.Metrics

	authorService service.AuthorService
	courseService service.CourseService
}

// newApplication wires stores, services and metrics. A nil db selects the
// in-memory store.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config:  cfg,
		logger:  logger,
		db:      db,
		metrics: metrics.New(),
	}

	var (
		authors store.AuthorStore
		courses store.CourseStore
		tx      store.Transactor
	)
	if db != nil {
		authors = postgres.NewPostgresAuthorStore(db, logger)
		courses = postgres.NewPostgresCourseStore(db, logger)
		tx = postgres.NewTransactor(db, logger)
		logger.Info("Using PostgreSQL store")
	} else {
		mem := memory.New(logger)
		authors, courses, tx = mem, mem, mem
		logger.Warn("No database configured, using in-memory store")
	}

	patchProfile, err := validation.ProfileByName(cfg.Validation.PatchProfile)
	if err != nil {
		return nil, fmt.Errorf("invalid patch profile: %w", err)
	}

	app.authorService, err = service.NewAuthorService(authors, tx, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create author service: %w", err)
	}

	reconciler := reconcile.New(logger, app.metrics)
	app.courseService, err = service.NewCourseService(authors, courses, tx, reconciler, patchProfile, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create course service: %w", err)
	}

	return app, nil
}

// apiOptions returns the handler options derived from configuration.
func (app *application) apiOptions() api.Options {
	status := app.config.API.ValidationStatus
	if status == 0 {
		status = http.StatusBadRequest
	}
	return api.Options{ValidationStatus: status}
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db == nil {
		return
	}
	if err := app.db.Close(); err != nil {
		app.logger.Error("Failed to close database connection", "error", err)
		return
	}
	app.logger.Info("Database connection closed")
}
