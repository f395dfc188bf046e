package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/course-library-api/internal/api/shared"
	"github.com/phrazzld/course-library-api/internal/domain"
	"github.com/phrazzld/course-library-api/internal/patch"
	"github.com/phrazzld/course-library-api/internal/service"
	"github.com/phrazzld/course-library-api/internal/store"
	"github.com/phrazzld/course-library-api/internal/validation"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. Validation errors map to 400 here; handlers
// replace that with the configured validation status.
func MapErrorToStatusCode(err error) int {
	var (
		malformed *patch.MalformedPatchError
		applyErr  *patch.ApplyError
		invalid   *validation.Error
		fieldErrs validator.ValidationErrors
	)

	switch {
	// Not found errors
	case errors.Is(err, service.ErrAuthorNotFound),
		errors.Is(err, service.ErrCourseNotFound),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	// Bad request errors
	case errors.As(err, &malformed),
		errors.As(err, &applyErr),
		errors.As(err, &invalid),
		errors.As(err, &fieldErrs),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. Patch errors describe the client's own input and
// are returned verbatim.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var (
		malformed *patch.MalformedPatchError
		applyErr  *patch.ApplyError
	)

	switch {
	case errors.Is(err, service.ErrAuthorNotFound), errors.Is(err, store.ErrAuthorNotFound):
		return "Author not found"

	case errors.Is(err, service.ErrCourseNotFound), errors.Is(err, store.ErrCourseNotFound):
		return "Course not found"

	case errors.Is(err, store.ErrCourseExists):
		return "Course already exists"

	case errors.As(err, &malformed):
		return malformed.Error()

	case errors.As(err, &applyErr):
		return applyErr.Error()

	case errors.Is(err, domain.ErrInvalidID):
		return "Invalid ID"

	case errors.Is(err, domain.ErrValidation), errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	default:
		return "An unexpected error occurred"
	}
}

// problemDetails converts a validation failure into problem entries. ok is
// false when err carries no field violations.
func problemDetails(err error) (details []shared.ProblemDetail, ok bool) {
	var invalid *validation.Error
	if errors.As(err, &invalid) {
		for _, v := range invalid.Violations {
			details = append(details, shared.ProblemDetail{
				Field:   v.Field,
				Code:    string(v.Code),
				Message: v.Message,
			})
		}
		return details, true
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			details = append(details, fieldErrorDetail(fe))
		}
		return details, true
	}

	return nil, false
}

// fieldErrorDetail renders one request-body field error with the JSON path
// of the field, e.g. "lastName" or "courses[1].title".
func fieldErrorDetail(fe validator.FieldError) shared.ProblemDetail {
	field := fe.Namespace()
	if i := strings.IndexByte(field, '.'); i >= 0 {
		field = field[i+1:]
	}

	switch fe.Tag() {
	case "required":
		return shared.ProblemDetail{
			Field:   field,
			Code:    string(validation.CodeRequired),
			Message: field + " is required",
		}
	case "max":
		return shared.ProblemDetail{
			Field:   field,
			Code:    string(validation.CodeMaxLength),
			Message: field + " must be at most " + fe.Param() + " characters",
		}
	default:
		return shared.ProblemDetail{
			Field:   field,
			Code:    string(validation.CodeInvalid),
			Message: field + " is invalid",
		}
	}
}
