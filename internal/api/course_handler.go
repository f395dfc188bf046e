package api

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/phrazzld/course-library-api/internal/api/shared"
	"github.com/phrazzld/course-library-api/internal/domain"
	"github.com/phrazzld/course-library-api/internal/patch"
	"github.com/phrazzld/course-library-api/internal/platform/logger"
	"github.com/phrazzld/course-library-api/internal/reconcile"
	"github.com/phrazzld/course-library-api/internal/service"
)

// CourseHandler handles course-related HTTP requests under
// /api/authors/{authorId}/courses.
type CourseHandler struct {
	responder
	courses service.CourseService
	logger  *slog.Logger
}

// NewCourseHandler creates a new CourseHandler.
func NewCourseHandler(courses service.CourseService, opts Options, logger *slog.Logger) *CourseHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for CourseHandler")
	}

	opts = opts.withDefaults()
	return &CourseHandler{
		responder: responder{validationStatus: opts.ValidationStatus},
		courses:   courses,
		logger:    logger.With(slog.String("component", "course_handler")),
	}
}

// ListCourses handles GET /api/authors/{authorId}/courses.
func (h *CourseHandler) ListCourses(w http.ResponseWriter, r *http.Request) {
	ids, ok := h.pathUUIDs(w, r, authorIDParam)
	if !ok {
		return
	}

	courses, err := h.courses.ListCourses(r.Context(), ids[0])
	if err != nil {
		h.handleAPIError(w, r, err, "Failed to list courses")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, coursesToResponse(courses))
}

// GetCourse handles GET /api/authors/{authorId}/courses/{courseId}.
func (h *CourseHandler) GetCourse(w http.ResponseWriter, r *http.Request) {
	ids, ok := h.pathUUIDs(w, r, authorIDParam, courseIDParam)
	if !ok {
		return
	}

	course, err := h.courses.GetCourse(r.Context(), ids[0], ids[1])
	if err != nil {
		h.handleAPIError(w, r, err, "Failed to get course")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, courseToResponse(course))
}

// CreateCourse handles POST /api/authors/{authorId}/courses.
func (h *CourseHandler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	ids, ok := h.pathUUIDs(w, r, authorIDParam)
	if !ok {
		return
	}

	req, ok := h.decodeCourse(w, r)
	if !ok {
		return
	}

	course, err := h.courses.CreateCourse(r.Context(), ids[0], req.Document())
	if err != nil {
		h.handleAPIError(w, r, err, "Failed to create course")
		return
	}

	respondCreated(w, r, course)
}

// ReplaceCourse handles PUT /api/authors/{authorId}/courses/{courseId}.
// A missing course is created under the addressed ID.
func (h *CourseHandler) ReplaceCourse(w http.ResponseWriter, r *http.Request) {
	ids, ok := h.pathUUIDs(w, r, authorIDParam, courseIDParam)
	if !ok {
		return
	}

	req, ok := h.decodeCourse(w, r)
	if !ok {
		return
	}

	course, created, err := h.courses.ReplaceCourse(r.Context(), ids[0], ids[1], req.Document())
	if err != nil {
		h.handleAPIError(w, r, err, "Failed to update course")
		return
	}

	if created {
		respondCreated(w, r, course)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// PatchCourse handles PATCH /api/authors/{authorId}/courses/{courseId}.
// The body is a JSON Patch document restricted to the title and
// description fields. A missing course is created from the patch applied
// to an empty document.
func (h *CourseHandler) PatchCourse(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	ids, ok := h.pathUUIDs(w, r, authorIDParam, courseIDParam)
	if !ok {
		return
	}

	body, err := shared.ReadBody(w, r)
	if err != nil {
		log.Debug("failed to read patch body", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	ops, err := patch.ParseJSON(body)
	if err != nil {
		h.handleAPIError(w, r, err, "")
		return
	}

	result, err := h.courses.PatchCourse(r.Context(), ids[0], ids[1], ops)
	if err != nil {
		h.handleAPIError(w, r, err, "Failed to patch course")
		return
	}

	log.Debug("course patched",
		slog.String("course_id", ids[1].String()),
		slog.String("outcome", result.Outcome.String()))

	if result.Outcome == reconcile.OutcomeCreated {
		respondCreated(w, r, result.Course)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteCourse handles DELETE /api/authors/{authorId}/courses/{courseId}.
func (h *CourseHandler) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	ids, ok := h.pathUUIDs(w, r, authorIDParam, courseIDParam)
	if !ok {
		return
	}

	if err := h.courses.DeleteCourse(r.Context(), ids[0], ids[1]); err != nil {
		h.handleAPIError(w, r, err, "Failed to delete course")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *CourseHandler) decodeCourse(w http.ResponseWriter, r *http.Request) (CourseRequest, bool) {
	var req CourseRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		logger.FromContextOrDefault(r.Context(), h.logger).
			Debug("invalid course request body", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return CourseRequest{}, false
	}
	return req, true
}

func respondCreated(w http.ResponseWriter, r *http.Request, course *domain.Course) {
	w.Header().Set("Location", courseLocation(course.AuthorID, course.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, courseToResponse(course))
}

func courseLocation(authorID, courseID uuid.UUID) string {
	return authorLocation(authorID.String()) + "/courses/" + courseID.String()
}
