package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/course-library-api/internal/api/shared"
	"github.com/phrazzld/course-library-api/internal/domain"
	"github.com/phrazzld/course-library-api/internal/platform/logger"
)

// Path parameter names.
const (
	authorIDParam = "authorId"
	courseIDParam = "courseId"
)

// responder writes error responses. Validation problems use the status it
// was built with.
type responder struct {
	validationStatus int
}

// handleAPIError writes the response for err. Validation failures become
// problem documents; everything else becomes an ErrorResponse with a
// sanitized message. fallback replaces the generic message on 500s.
func (rs responder) handleAPIError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	if details, ok := problemDetails(err); ok {
		shared.RespondWithValidationProblem(w, r, rs.validationStatus, details)
		return
	}

	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if status == http.StatusInternalServerError && fallback != "" {
		message = fallback
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}

// getPathUUID parses a UUID path parameter. The nil UUID is rejected.
func getPathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return uuid.Nil, fmt.Errorf("%w: %s is required", domain.ErrInvalidID, paramName)
	}

	id, err := uuid.Parse(pathParam)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, fmt.Errorf("%w: %s has invalid format", domain.ErrInvalidID, paramName)
	}

	return id, nil
}

// pathUUIDs extracts the named UUID path parameters in order, writing a 400
// and returning false on the first malformed one.
func (rs responder) pathUUIDs(w http.ResponseWriter, r *http.Request, names ...string) ([]uuid.UUID, bool) {
	ids := make([]uuid.UUID, 0, len(names))
	for _, name := range names {
		id, err := getPathUUID(r, name)
		if err != nil {
			logger.FromContext(r.Context()).Debug("invalid path parameter",
				slog.String("param_name", name),
				slog.String("value", chi.URLParam(r, name)))
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid "+name)
			return nil, false
		}
		ids = append(ids, id)
	}
	return ids, true
}
