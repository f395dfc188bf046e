package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/course-library-api/internal/domain"
	"github.com/phrazzld/course-library-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var courseRowColumns = []string{"id", "author_id", "title", "description"}

func newMockCourseStore(t *testing.T) (*PostgresCourseStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return NewPostgresCourseStore(db, nil), mock
}

func TestPostgresCourseStore_ListCourses(t *testing.T) {
	s, mock := newMockCourseStore(t)
	authorID := uuid.New()
	mock.ExpectQuery(`SELECT (.+) FROM courses WHERE author_id = \$1 ORDER BY title`).
		WithArgs(authorID).
		WillReturnRows(sqlmock.NewRows(courseRowColumns).
			AddRow(uuid.New().String(), authorID.String(), "Overthrowing Mutiny", "In this course, the author provides tips to avoid mutiny.").
			AddRow(uuid.New().String(), authorID.String(), "Singalong Pirate Hits", ""))

	courses, err := s.ListCourses(context.Background(), authorID)

	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, authorID, courses[0].AuthorID)
	assert.Equal(t, "Singalong Pirate Hits", courses[1].Title)
}

func TestPostgresCourseStore_GetCourse(t *testing.T) {
	authorID, courseID := uuid.New(), uuid.New()

	t.Run("found", func(t *testing.T) {
		s, mock := newMockCourseStore(t)
		mock.ExpectQuery(`SELECT (.+) FROM courses WHERE id = \$1 AND author_id = \$2`).
			WithArgs(courseID, authorID).
			WillReturnRows(sqlmock.NewRows(courseRowColumns).
				AddRow(courseID.String(), authorID.String(), "Title", "Description"))

		c, err := s.GetCourse(context.Background(), authorID, courseID)

		require.NoError(t, err)
		assert.Equal(t, courseID, c.ID)
		assert.Equal(t, "Description", c.Description)
	})

	t.Run("not found", func(t *testing.T) {
		s, mock := newMockCourseStore(t)
		mock.ExpectQuery(`SELECT (.+) FROM courses`).
			WithArgs(courseID, authorID).
			WillReturnRows(sqlmock.NewRows(courseRowColumns))

		_, err := s.GetCourse(context.Background(), authorID, courseID)

		assert.ErrorIs(t, err, store.ErrCourseNotFound)
	})
}

func TestPostgresCourseStore_AddCourse(t *testing.T) {
	authorID := uuid.New()

	t.Run("keeps caller id", func(t *testing.T) {
		s, mock := newMockCourseStore(t)
		id := uuid.New()
		c := &domain.Course{ID: id, Title: "T", Description: "D"}
		mock.ExpectExec(`INSERT INTO courses`).
			WithArgs(id, authorID, "T", "D").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, s.AddCourse(context.Background(), authorID, c))
		assert.Equal(t, id, c.ID)
		assert.Equal(t, authorID, c.AuthorID)
	})

	t.Run("generates id", func(t *testing.T) {
		s, mock := newMockCourseStore(t)
		c := &domain.Course{Title: "T"}
		mock.ExpectExec(`INSERT INTO courses`).
			WithArgs(sqlmock.AnyArg(), authorID, "T", "").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, s.AddCourse(context.Background(), authorID, c))
		assert.NotEqual(t, uuid.Nil, c.ID)
	})

	tests := []struct {
		name    string
		dbErr   error
		wantErr error
	}{
		{"duplicate id", &pgconn.PgError{Code: uniqueViolationCode}, store.ErrCourseExists},
		{"missing author", &pgconn.PgError{Code: foreignKeyViolationCode}, store.ErrInvalidEntity},
		{"title too long", &pgconn.PgError{Code: stringTooLongCode}, store.ErrInvalidEntity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mock := newMockCourseStore(t)
			mock.ExpectExec(`INSERT INTO courses`).WillReturnError(tt.dbErr)

			err := s.AddCourse(context.Background(), authorID, &domain.Course{Title: "T"})

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPostgresCourseStore_UpdateCourse(t *testing.T) {
	c := &domain.Course{ID: uuid.New(), AuthorID: uuid.New(), Title: "New", Description: "Desc"}

	t.Run("success", func(t *testing.T) {
		s, mock := newMockCourseStore(t)
		mock.ExpectExec(`UPDATE courses SET title = \$1, description = \$2`).
			WithArgs("New", "Desc", c.ID, c.AuthorID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, s.UpdateCourse(context.Background(), c))
	})

	t.Run("no rows", func(t *testing.T) {
		s, mock := newMockCourseStore(t)
		mock.ExpectExec(`UPDATE courses`).WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, s.UpdateCourse(context.Background(), c), store.ErrCourseNotFound)
	})

	t.Run("database error", func(t *testing.T) {
		s, mock := newMockCourseStore(t)
		dbErr := errors.New("deadlock detected")
		mock.ExpectExec(`UPDATE courses`).WillReturnError(dbErr)

		assert.ErrorIs(t, s.UpdateCourse(context.Background(), c), dbErr)
	})
}

func TestPostgresCourseStore_DeleteCourse(t *testing.T) {
	c := &domain.Course{ID: uuid.New(), AuthorID: uuid.New()}

	t.Run("success", func(t *testing.T) {
		s, mock := newMockCourseStore(t)
		mock.ExpectExec(`DELETE FROM courses WHERE id = \$1 AND author_id = \$2`).
			WithArgs(c.ID, c.AuthorID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, s.DeleteCourse(context.Background(), c))
	})

	t.Run("missing", func(t *testing.T) {
		s, mock := newMockCourseStore(t)
		mock.ExpectExec(`DELETE FROM courses`).WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, s.DeleteCourse(context.Background(), c), store.ErrCourseNotFound)
	})
}
