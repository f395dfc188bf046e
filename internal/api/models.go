package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/course-library-api/internal/domain"
	"github.com/phrazzld/course-library-api/internal/patch"
)

// AuthorResponse is the representation of an author.
type AuthorResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Age          int       `json:"age"`
	MainCategory string    `json:"mainCategory"`
}

// CourseResponse is the representation of a course.
type CourseResponse struct {
	ID          uuid.UUID `json:"id"`
	AuthorID    uuid.UUID `json:"authorId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
}

// CreateAuthorRequest is the payload of POST /api/authors.
type CreateAuthorRequest struct {
	FirstName    string          `json:"firstName"    validate:"required,max=50"`
	LastName     string          `json:"lastName"     validate:"required,max=50"`
	DateOfBirth  time.Time       `json:"dateOfBirth"  validate:"required"`
	MainCategory string          `json:"mainCategory" validate:"required,max=50"`
	Courses      []CourseRequest `json:"courses"`
}

// CourseRequest carries the editable fields of a course for POST and PUT.
// Field rules are enforced by the validation gate, not by tags.
type CourseRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Document returns the request as a course document.
func (c CourseRequest) Document() patch.Document {
	return patch.Document{Title: c.Title, Description: c.Description}
}

func authorToResponse(a *domain.Author, now time.Time) AuthorResponse {
	return AuthorResponse{
		ID:           a.ID,
		Name:         a.Name(),
		Age:          a.AgeAt(now),
		MainCategory: a.MainCategory,
	}
}

func courseToResponse(c *domain.Course) CourseResponse {
	return CourseResponse{
		ID:          c.ID,
		AuthorID:    c.AuthorID,
		Title:       c.Title,
		Description: c.Description,
	}
}

func coursesToResponse(courses []*domain.Course) []CourseResponse {
	out := make([]CourseResponse, 0, len(courses))
	for _, c := range courses {
		out = append(out, courseToResponse(c))
	}
	return out
}
