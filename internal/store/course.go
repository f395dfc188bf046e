package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/course-library-api/internal/domain"
)

// CourseStore defines persistence operations for courses. Courses are always
// addressed through their owning author.
type CourseStore interface {
	// ListCourses returns the author's courses ordered by title.
	// It does not check that the author exists.
	ListCourses(ctx context.Context, authorID uuid.UUID) ([]*domain.Course, error)

	// GetCourse retrieves one course of an author.
	// Returns ErrCourseNotFound if no such course belongs to the author.
	GetCourse(ctx context.Context, authorID, courseID uuid.UUID) (*domain.Course, error)

	// AddCourse stores a new course for the author. The course keeps its ID
	// if one is set; AuthorID is overwritten with authorID.
	// Returns ErrCourseExists if the ID is taken, ErrInvalidEntity if the
	// author does not exist.
	AddCourse(ctx context.Context, authorID uuid.UUID, course *domain.Course) error

	// UpdateCourse writes the title and description of an existing course.
	// Returns ErrCourseNotFound if the course does not exist.
	UpdateCourse(ctx context.Context, course *domain.Course) error

	// DeleteCourse removes a course.
	// Returns ErrCourseNotFound if the course does not exist.
	DeleteCourse(ctx context.Context, course *domain.Course) error
}

// Stores bundles the stores bound to one transaction.
type Stores struct {
	Authors AuthorStore
	Courses CourseStore
}

// Transactor runs units of work atomically. WithinTx commits when fn returns
// nil and rolls back otherwise; the error returned by fn is passed through.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx Stores) error) error
}
