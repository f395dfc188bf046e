package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/course-library-api/internal/patch"
	"github.com/phrazzld/course-library-api/internal/store"
	"github.com/phrazzld/course-library-api/internal/validation"
)

// Common service errors. The API layer maps them to status codes.
var (
	// ErrAuthorNotFound indicates the author does not exist.
	// API layer should map this to HTTP 404 Not Found.
	ErrAuthorNotFound = errors.New("author not found")

	// ErrCourseNotFound indicates the course does not exist for the author.
	// API layer should map this to HTTP 404 Not Found.
	ErrCourseNotFound = errors.New("course not found")
)

// ServiceError wraps an unexpected failure with the operation it happened in.
type ServiceError struct {
	// Operation is the operation that failed (e.g., "create_course", "patch_course")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError translates err for callers of the service layer.
// Not-found store errors become the service sentinels, client errors are
// returned unchanged and everything else is wrapped in a *ServiceError.
func NewServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrAuthorNotFound), errors.Is(err, store.ErrAuthorNotFound):
		return ErrAuthorNotFound
	case errors.Is(err, ErrCourseNotFound), errors.Is(err, store.ErrCourseNotFound):
		return ErrCourseNotFound
	}

	var (
		malformed *patch.MalformedPatchError
		applyErr  *patch.ApplyError
		invalid   *validation.Error
	)
	if errors.As(err, &malformed) || errors.As(err, &applyErr) || errors.As(err, &invalid) {
		return err
	}

	return &ServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
