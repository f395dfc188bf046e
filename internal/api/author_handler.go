package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/course-library-api/internal/api/shared"
	"github.com/phrazzld/course-library-api/internal/patch"
	"github.com/phrazzld/course-library-api/internal/platform/logger"
	"github.com/phrazzld/course-library-api/internal/service"
)

// AuthorHandler handles author-related HTTP requests.
type AuthorHandler struct {
	responder
	authors service.AuthorService
	opts    Options
	logger  *slog.Logger
}

// NewAuthorHandler creates a new AuthorHandler.
func NewAuthorHandler(authors service.AuthorService, opts Options, logger *slog.Logger) *AuthorHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for AuthorHandler")
	}

	opts = opts.withDefaults()
	return &AuthorHandler{
		responder: responder{validationStatus: opts.ValidationStatus},
		authors:   authors,
		opts:      opts,
		logger:    logger.With(slog.String("component", "author_handler")),
	}
}

// ListAuthors handles GET and HEAD /api/authors.
func (h *AuthorHandler) ListAuthors(w http.ResponseWriter, r *http.Request) {
	authors, err := h.authors.ListAuthors(r.Context())
	if err != nil {
		h.handleAPIError(w, r, err, "Failed to list authors")
		return
	}

	now := h.opts.Now()
	response := make([]AuthorResponse, 0, len(authors))
	for _, a := range authors {
		response = append(response, authorToResponse(a, now))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// GetAuthor handles GET /api/authors/{authorId}.
func (h *AuthorHandler) GetAuthor(w http.ResponseWriter, r *http.Request) {
	ids, ok := h.pathUUIDs(w, r, authorIDParam)
	if !ok {
		return
	}

	author, err := h.authors.GetAuthor(r.Context(), ids[0])
	if err != nil {
		h.handleAPIError(w, r, err, "Failed to get author")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, authorToResponse(author, h.opts.Now()))
}

// CreateAuthor handles POST /api/authors. Courses listed in the body are
// created with the author; any invalid course rejects the whole request.
func (h *AuthorHandler) CreateAuthor(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateAuthorRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		log.Debug("invalid author request body", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		h.handleAPIError(w, r, err, "")
		return
	}

	courses := make([]patch.Document, 0, len(req.Courses))
	for _, c := range req.Courses {
		courses = append(courses, c.Document())
	}

	author, created, err := h.authors.CreateAuthor(r.Context(), service.CreateAuthorInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		DateOfBirth:  req.DateOfBirth,
		MainCategory: req.MainCategory,
		Courses:      courses,
	})
	if err != nil {
		h.handleAPIError(w, r, err, "Failed to create author")
		return
	}

	log.Debug("author created",
		slog.String("author_id", author.ID.String()),
		slog.Int("course_count", len(created)))

	w.Header().Set("Location", authorLocation(author.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, authorToResponse(author, h.opts.Now()))
}

func authorLocation(authorID string) string {
	return "/api/authors/" + authorID
}
