package reconcile

import (
	"fmt"

	"github.com/phrazzld/course-library-api/internal/store"
)

// ErrAuthorNotFound is returned when the caller reports that the owning
// author does not exist. It matches store.ErrAuthorNotFound.
var ErrAuthorNotFound = fmt.Errorf("reconcile: %w", store.ErrAuthorNotFound)

// PersistenceError wraps a failure reported by the repository. The
// reconciler never retries.
type PersistenceError struct {
	Op  string
	Err error
}

// Error implements the error interface.
func (e *PersistenceError) Error() string {
	return fmt.Sprintf("reconcile: %s course: %v", e.Op, e.Err)
}

// Unwrap returns the repository error.
func (e *PersistenceError) Unwrap() error {
	return e.Err
}
