package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Course-specific validation errors
var (
	// ErrCourseIDEmpty is returned when a course ID is nil.
	ErrCourseIDEmpty = fmt.Errorf("%w: course ID cannot be empty", ErrInvalidID)

	// ErrCourseAuthorIDEmpty is returned when a course has no owning author.
	ErrCourseAuthorIDEmpty = fmt.Errorf("%w: course author ID cannot be empty", ErrInvalidID)
)

// Course is a course owned by exactly one author.
// Title and Description are the only fields clients can edit; the field
// constraints on them live in the validation package.
type Course struct {
	ID          uuid.UUID
	AuthorID    uuid.UUID
	Title       string
	Description string
}

// NewCourse creates a Course for the given author with a freshly generated ID.
func NewCourse(authorID uuid.UUID, title, description string) (*Course, error) {
	return NewCourseWithID(uuid.New(), authorID, title, description)
}

// NewCourseWithID creates a Course using a caller-supplied ID. Upserts use this
// so the resource keeps the ID the client addressed.
func NewCourseWithID(id, authorID uuid.UUID, title, description string) (*Course, error) {
	course := &Course{
		ID:          id,
		AuthorID:    authorID,
		Title:       title,
		Description: description,
	}

	if err := course.Validate(); err != nil {
		return nil, err
	}

	return course, nil
}

// Validate checks the identity invariants of a course.
func (c *Course) Validate() error {
	if c.ID == uuid.Nil {
		return ErrCourseIDEmpty
	}

	if c.AuthorID == uuid.Nil {
		return ErrCourseAuthorIDEmpty
	}

	return nil
}
