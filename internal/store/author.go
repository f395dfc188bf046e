package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/course-library-api/internal/domain"
)

// AuthorStore defines persistence operations for authors.
type AuthorStore interface {
	// ListAuthors returns every author, ordered by last then first name.
	ListAuthors(ctx context.Context) ([]*domain.Author, error)

	// GetAuthor retrieves an author by ID.
	// Returns ErrAuthorNotFound if the author does not exist.
	GetAuthor(ctx context.Context, id uuid.UUID) (*domain.Author, error)

	// AuthorExists reports whether an author with the given ID is stored.
	AuthorExists(ctx context.Context, id uuid.UUID) (bool, error)

	// CreateAuthor saves a new author.
	// Returns validation errors from the domain Author if data is invalid.
	CreateAuthor(ctx context.Context, author *domain.Author) error
}
