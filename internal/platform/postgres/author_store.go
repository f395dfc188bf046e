package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/course-library-api/internal/domain"
	"github.com/phrazzld/course-library-api/internal/platform/logger"
	"github.com/phrazzld/course-library-api/internal/redact"
	"github.com/phrazzld/course-library-api/internal/store"
)

// PostgresAuthorStore implements store.AuthorStore.
type PostgresAuthorStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAuthorStore creates an author store over a connection pool or
// transaction managed by the caller. A nil logger falls back to slog.Default.
func NewPostgresAuthorStore(db store.DBTX, logger *slog.Logger) *PostgresAuthorStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresAuthorStore{
		db:     db,
		logger: logger.With(slog.String("component", "author_store")),
	}
}

var _ store.AuthorStore = (*PostgresAuthorStore)(nil)

const authorColumns = `id, first_name, last_name, date_of_birth, main_category`

// ListAuthors implements store.AuthorStore.
func (s *PostgresAuthorStore) ListAuthors(ctx context.Context) ([]*domain.Author, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+authorColumns+` FROM authors ORDER BY last_name, first_name`)
	if err != nil {
		log.Error("failed to list authors", redact.ErrorAttr(err))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	authors := make([]*domain.Author, 0)
	for rows.Next() {
		var a domain.Author
		if err := rows.Scan(&a.ID, &a.FirstName, &a.LastName, &a.DateOfBirth, &a.MainCategory); err != nil {
			log.Error("failed to scan author row", redact.ErrorAttr(err))
			return nil, MapError(err)
		}
		authors = append(authors, &a)
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating author rows", redact.ErrorAttr(err))
		return nil, MapError(err)
	}

	log.Debug("authors listed", slog.Int("count", len(authors)))
	return authors, nil
}

// GetAuthor implements store.AuthorStore.
func (s *PostgresAuthorStore) GetAuthor(ctx context.Context, id uuid.UUID) (*domain.Author, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var a domain.Author
	err := s.db.QueryRowContext(ctx,
		`SELECT `+authorColumns+` FROM authors WHERE id = $1`, id).
		Scan(&a.ID, &a.FirstName, &a.LastName, &a.DateOfBirth, &a.MainCategory)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("author not found", slog.String("author_id", id.String()))
			return nil, store.ErrAuthorNotFound
		}
		log.Error("failed to get author",
			redact.ErrorAttr(err),
			slog.String("author_id", id.String()))
		return nil, MapError(err)
	}

	return &a, nil
}

// AuthorExists implements store.AuthorStore.
func (s *PostgresAuthorStore) AuthorExists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM authors WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to check author existence",
			redact.ErrorAttr(err),
			slog.String("author_id", id.String()))
		return false, MapError(err)
	}
	return exists, nil
}

// CreateAuthor implements store.AuthorStore.
func (s *PostgresAuthorStore) CreateAuthor(ctx context.Context, author *domain.Author) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := author.Validate(); err != nil {
		log.Warn("author validation failed during create",
			slog.String("error", err.Error()),
			slog.String("author_id", author.ID.String()))
		return err
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO authors (`+authorColumns+`) VALUES ($1, $2, $3, $4, $5)`,
		author.ID, author.FirstName, author.LastName, author.DateOfBirth, author.MainCategory)
	if err != nil {
		if IsUniqueViolation(err) {
			return fmt.Errorf("%w: author %s", store.ErrDuplicate, author.ID)
		}
		log.Error("failed to create author",
			redact.ErrorAttr(err),
			slog.String("author_id", author.ID.String()))
		return MapError(err)
	}

	log.Info("author created", slog.String("author_id", author.ID.String()))
	return nil
}
