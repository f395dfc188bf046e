package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/course-library-api/internal/api"
	apiMiddleware "github.com/phrazzld/course-library-api/internal/api/middleware"
)

// setupRouter creates the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.GetHead)
	r.Use(apiMiddleware.NewMetricsMiddleware(app.metrics))
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))

	opts := app.apiOptions()
	authorHandler := api.NewAuthorHandler(app.authorService, opts, app.logger)
	courseHandler := api.NewCourseHandler(app.courseService, opts, app.logger)

	r.Route("/api/authors", func(r chi.Router) {
		r.Get("/", authorHandler.ListAuthors)
		r.Head("/", authorHandler.ListAuthors)
		r.Post("/", authorHandler.CreateAuthor)
		r.Get("/{authorId}", authorHandler.GetAuthor)

		r.Route("/{authorId}/courses", func(r chi.Router) {
			r.Get("/", courseHandler.ListCourses)
			r.Post("/", courseHandler.CreateCourse)
			r.Get("/{courseId}", courseHandler.GetCourse)
			r.Put("/{courseId}", courseHandler.ReplaceCourse)
			r.Patch("/{courseId}", courseHandler.PatchCourse)
			r.Delete("/{courseId}", courseHandler.DeleteCourse)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	r.Method(http.MethodGet, "/metrics", app.metrics.Handler())

	return r
}
