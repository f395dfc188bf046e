package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/course-library-api/internal/domain"
	"github.com/phrazzld/course-library-api/internal/patch"
	"github.com/phrazzld/course-library-api/internal/platform/logger"
	"github.com/phrazzld/course-library-api/internal/redact"
	"github.com/phrazzld/course-library-api/internal/store"
	"github.com/phrazzld/course-library-api/internal/validation"
)

// CreateAuthorInput holds the fields of a new author and, optionally, the
// courses created with it.
type CreateAuthorInput struct {
	FirstName    string
	LastName     string
	DateOfBirth  time.Time
	MainCategory string
	Courses      []patch.Document
}

// AuthorService provides author operations.
type AuthorService interface {
	// ListAuthors returns every author.
	ListAuthors(ctx context.Context) ([]*domain.Author, error)

	// GetAuthor returns one author or ErrAuthorNotFound.
	GetAuthor(ctx context.Context, id uuid.UUID) (*domain.Author, error)

	// CreateAuthor stores a new author together with its initial courses.
	// Nothing is stored if any course fails validation.
	CreateAuthor(ctx context.Context, input CreateAuthorInput) (*domain.Author, []*domain.Course, error)
}

type authorServiceImpl struct {
	authors store.AuthorStore
	tx      store.Transactor
	logger  *slog.Logger
}

// NewAuthorService creates an AuthorService.
// It returns an error if any of the required dependencies are nil.
func NewAuthorService(authors store.AuthorStore, tx store.Transactor, logger *slog.Logger) (AuthorService, error) {
	if authors == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "authors cannot be nil"}
	}
	if tx == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "transactor cannot be nil"}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &authorServiceImpl{
		authors: authors,
		tx:      tx,
		logger:  logger.With(slog.String("component", "author_service")),
	}, nil
}

// ListAuthors implements AuthorService.
func (s *authorServiceImpl) ListAuthors(ctx context.Context) ([]*domain.Author, error) {
	authors, err := s.authors.ListAuthors(ctx)
	if err != nil {
		return nil, NewServiceError("list_authors", "failed to list authors", err)
	}
	return authors, nil
}

// GetAuthor implements AuthorService.
func (s *authorServiceImpl) GetAuthor(ctx context.Context, id uuid.UUID) (*domain.Author, error) {
	author, err := s.authors.GetAuthor(ctx, id)
	if err != nil {
		return nil, NewServiceError("get_author", "failed to get author", err)
	}
	return author, nil
}

// CreateAuthor implements AuthorService.
func (s *authorServiceImpl) CreateAuthor(
	ctx context.Context,
	input CreateAuthorInput,
) (*domain.Author, []*domain.Course, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	author, err := domain.NewAuthor(input.FirstName, input.LastName, input.DateOfBirth, input.MainCategory)
	if err != nil {
		return nil, nil, err
	}

	// Validate every course up front so a bad one rejects the whole request.
	var violations []validation.Violation
	for i, doc := range input.Courses {
		for _, v := range validation.Validate(doc, validation.ManipulationProfile) {
			v.Field = fmt.Sprintf("courses[%d].%s", i, v.Field)
			violations = append(violations, v)
		}
	}
	if len(violations) > 0 {
		return nil, nil, &validation.Error{Violations: violations}
	}

	courses := make([]*domain.Course, 0, len(input.Courses))
	err = s.tx.WithinTx(ctx, func(ctx context.Context, tx store.Stores) error {
		if err := tx.Authors.CreateAuthor(ctx, author); err != nil {
			return err
		}
		for _, doc := range input.Courses {
			course, err := domain.NewCourse(author.ID, doc.Title, doc.Description)
			if err != nil {
				return err
			}
			if err := tx.Courses.AddCourse(ctx, author.ID, course); err != nil {
				return err
			}
			courses = append(courses, course)
		}
		return nil
	})
	if err != nil {
		log.Error("failed to create author",
			redact.ErrorAttr(err),
			slog.Int("course_count", len(input.Courses)))
		return nil, nil, NewServiceError("create_author", "failed to create author", err)
	}

	log.Info("author created",
		slog.String("author_id", author.ID.String()),
		slog.Int("course_count", len(courses)))
	return author, courses, nil
}
