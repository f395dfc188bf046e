package patch

import (
	"errors"
	"fmt"
)

// Sentinel causes carried by ApplyError.
var (
	// ErrTestFailed is returned when a test operation finds a different value.
	ErrTestFailed = errors.New("test operation failed")

	// ErrInvalidPath is returned when an operation addresses fields in a way
	// the document shape cannot support.
	ErrInvalidPath = errors.New("invalid path")
)

// MalformedPatchError reports a patch that could not be parsed into typed
// operations: an unknown op, a missing member, or a pointer that does not
// name an editable field. Index is -1 when the body itself is unreadable.
type MalformedPatchError struct {
	Index  int
	Op     string
	Reason string
}

// Error implements the error interface.
func (e *MalformedPatchError) Error() string {
	if e.Index < 0 {
		return "malformed patch: " + e.Reason
	}
	if e.Op == "" {
		return fmt.Sprintf("malformed patch: operation %d: %s", e.Index, e.Reason)
	}
	return fmt.Sprintf("malformed patch: operation %d (%s): %s", e.Index, e.Op, e.Reason)
}

// ApplyError reports an operation that failed while the sequence was being
// applied. The whole application is abandoned when one is returned.
type ApplyError struct {
	Index int
	Op    Kind
	Path  string
	Err   error
}

// Error implements the error interface.
func (e *ApplyError) Error() string {
	return fmt.Sprintf("apply patch: operation %d (%s %s): %v", e.Index, e.Op, e.Path, e.Err)
}

// Unwrap returns the cause, ErrTestFailed or ErrInvalidPath.
func (e *ApplyError) Unwrap() error {
	return e.Err
}
