package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/course-library-api/internal/domain"
	"github.com/phrazzld/course-library-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var authorRowColumns = []string{"id", "first_name", "last_name", "date_of_birth", "main_category"}

func newMockAuthorStore(t *testing.T) (*PostgresAuthorStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return NewPostgresAuthorStore(db, nil), mock
}

func TestPostgresAuthorStore_ListAuthors(t *testing.T) {
	s, mock := newMockAuthorStore(t)
	dob := time.Date(1650, time.July, 23, 0, 0, 0, 0, time.UTC)
	first, second := uuid.New(), uuid.New()

	mock.ExpectQuery(`SELECT (.+) FROM authors ORDER BY last_name, first_name`).
		WillReturnRows(sqlmock.NewRows(authorRowColumns).
			AddRow(first.String(), "Berry", "Griffin Beak Eldritch", dob, "Ships").
			AddRow(second.String(), "Nancy", "Rye", dob, "Rum"))

	authors, err := s.ListAuthors(context.Background())

	require.NoError(t, err)
	require.Len(t, authors, 2)
	assert.Equal(t, first, authors[0].ID)
	assert.Equal(t, "Griffin Beak Eldritch", authors[0].LastName)
	assert.Equal(t, second, authors[1].ID)
}

func TestPostgresAuthorStore_ListAuthorsQueryError(t *testing.T) {
	s, mock := newMockAuthorStore(t)
	dbErr := errors.New("connection reset")
	mock.ExpectQuery(`SELECT (.+) FROM authors`).WillReturnError(dbErr)

	_, err := s.ListAuthors(context.Background())

	assert.ErrorIs(t, err, dbErr)
}

func TestPostgresAuthorStore_GetAuthor(t *testing.T) {
	id := uuid.New()
	dob := time.Date(1668, time.May, 21, 0, 0, 0, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		s, mock := newMockAuthorStore(t)
		mock.ExpectQuery(`SELECT (.+) FROM authors WHERE id = \$1`).
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows(authorRowColumns).
				AddRow(id.String(), "Eli", "Ivory Bones Sweet", dob, "Singing"))

		a, err := s.GetAuthor(context.Background(), id)

		require.NoError(t, err)
		assert.Equal(t, id, a.ID)
		assert.Equal(t, "Eli Ivory Bones Sweet", a.Name())
		assert.True(t, dob.Equal(a.DateOfBirth))
	})

	t.Run("not found", func(t *testing.T) {
		s, mock := newMockAuthorStore(t)
		mock.ExpectQuery(`SELECT (.+) FROM authors WHERE id = \$1`).
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows(authorRowColumns))

		_, err := s.GetAuthor(context.Background(), id)

		assert.ErrorIs(t, err, store.ErrAuthorNotFound)
	})
}

func TestPostgresAuthorStore_AuthorExists(t *testing.T) {
	s, mock := newMockAuthorStore(t)
	id := uuid.New()
	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := s.AuthorExists(context.Background(), id)

	require.NoError(t, err)
	assert.True(t, exists)
}

func TestPostgresAuthorStore_CreateAuthor(t *testing.T) {
	newAuthor := func(t *testing.T) *domain.Author {
		a, err := domain.NewAuthor("Rutherford", "Fierce Cutlass", time.Date(1723, time.March, 2, 0, 0, 0, 0, time.UTC), "Maps")
		require.NoError(t, err)
		return a
	}

	t.Run("success", func(t *testing.T) {
		s, mock := newMockAuthorStore(t)
		a := newAuthor(t)
		mock.ExpectExec(`INSERT INTO authors`).
			WithArgs(a.ID, a.FirstName, a.LastName, a.DateOfBirth, a.MainCategory).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, s.CreateAuthor(context.Background(), a))
	})

	t.Run("duplicate", func(t *testing.T) {
		s, mock := newMockAuthorStore(t)
		a := newAuthor(t)
		mock.ExpectExec(`INSERT INTO authors`).
			WillReturnError(&pgconn.PgError{Code: uniqueViolationCode})

		assert.ErrorIs(t, s.CreateAuthor(context.Background(), a), store.ErrDuplicate)
	})

	t.Run("invalid author never reaches the database", func(t *testing.T) {
		s, _ := newMockAuthorStore(t)
		err := s.CreateAuthor(context.Background(), &domain.Author{ID: uuid.New()})
		assert.ErrorIs(t, err, domain.ErrAuthorNameEmpty)
	})
}
