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

// PostgresCourseStore implements store.CourseStore.
type PostgresCourseStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCourseStore creates a course store over a connection pool or
// transaction managed by the caller. A nil logger falls back to slog.Default.
func NewPostgresCourseStore(db store.DBTX, logger *slog.Logger) *PostgresCourseStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresCourseStore{
		db:     db,
		logger: logger.With(slog.String("component", "course_store")),
	}
}

var _ store.CourseStore = (*PostgresCourseStore)(nil)

const courseColumns = `id, author_id, title, description`

// ListCourses implements store.CourseStore.
func (s *PostgresCourseStore) ListCourses(ctx context.Context, authorID uuid.UUID) ([]*domain.Course, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+courseColumns+` FROM courses WHERE author_id = $1 ORDER BY title`, authorID)
	if err != nil {
		log.Error("failed to list courses",
			redact.ErrorAttr(err),
			slog.String("author_id", authorID.String()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	courses := make([]*domain.Course, 0)
	for rows.Next() {
		var c domain.Course
		if err := rows.Scan(&c.ID, &c.AuthorID, &c.Title, &c.Description); err != nil {
			log.Error("failed to scan course row", redact.ErrorAttr(err))
			return nil, MapError(err)
		}
		courses = append(courses, &c)
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating course rows", redact.ErrorAttr(err))
		return nil, MapError(err)
	}

	return courses, nil
}

// GetCourse implements store.CourseStore.
func (s *PostgresCourseStore) GetCourse(ctx context.Context, authorID, courseID uuid.UUID) (*domain.Course, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var c domain.Course
	err := s.db.QueryRowContext(ctx,
		`SELECT `+courseColumns+` FROM courses WHERE id = $1 AND author_id = $2`, courseID, authorID).
		Scan(&c.ID, &c.AuthorID, &c.Title, &c.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("course not found",
				slog.String("author_id", authorID.String()),
				slog.String("course_id", courseID.String()))
			return nil, store.ErrCourseNotFound
		}
		log.Error("failed to get course",
			redact.ErrorAttr(err),
			slog.String("course_id", courseID.String()))
		return nil, MapError(err)
	}

	return &c, nil
}

// AddCourse implements store.CourseStore.
func (s *PostgresCourseStore) AddCourse(ctx context.Context, authorID uuid.UUID, course *domain.Course) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if course.ID == uuid.Nil {
		course.ID = uuid.New()
	}
	course.AuthorID = authorID
	if err := course.Validate(); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO courses (`+courseColumns+`) VALUES ($1, $2, $3, $4)`,
		course.ID, course.AuthorID, course.Title, course.Description)
	if err != nil {
		switch {
		case IsUniqueViolation(err):
			return store.ErrCourseExists
		case IsForeignKeyViolation(err):
			log.Warn("course references a missing author",
				slog.String("author_id", authorID.String()))
			return fmt.Errorf("%w: author %s does not exist", store.ErrInvalidEntity, authorID)
		}
		log.Error("failed to add course",
			redact.ErrorAttr(err),
			slog.String("course_id", course.ID.String()))
		return MapError(err)
	}

	log.Info("course added",
		slog.String("course_id", course.ID.String()),
		slog.String("author_id", authorID.String()))
	return nil
}

// UpdateCourse implements store.CourseStore.
func (s *PostgresCourseStore) UpdateCourse(ctx context.Context, course *domain.Course) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx,
		`UPDATE courses SET title = $1, description = $2, updated_at = NOW()
		 WHERE id = $3 AND author_id = $4`,
		course.Title, course.Description, course.ID, course.AuthorID)
	if err != nil {
		log.Error("failed to update course",
			redact.ErrorAttr(err),
			slog.String("course_id", course.ID.String()))
		return MapError(err)
	}
	if err := CheckRowsAffected(result, store.ErrCourseNotFound); err != nil {
		return err
	}

	log.Info("course updated", slog.String("course_id", course.ID.String()))
	return nil
}

// DeleteCourse implements store.CourseStore.
func (s *PostgresCourseStore) DeleteCourse(ctx context.Context, course *domain.Course) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx,
		`DELETE FROM courses WHERE id = $1 AND author_id = $2`, course.ID, course.AuthorID)
	if err != nil {
		log.Error("failed to delete course",
			redact.ErrorAttr(err),
			slog.String("course_id", course.ID.String()))
		return MapError(err)
	}
	if err := CheckRowsAffected(result, store.ErrCourseNotFound); err != nil {
		return err
	}

	log.Info("course deleted", slog.String("course_id", course.ID.String()))
	return nil
}
