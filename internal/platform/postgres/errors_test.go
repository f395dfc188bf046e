package postgres

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/course-library-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockResult implements sql.Result for testing
type mockResult struct {
	rowsAffected int64
	err          error
}

func (m mockResult) LastInsertId() (int64, error) {
	return 0, nil
}

func (m mockResult) RowsAffected() (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	return m.rowsAffected, nil
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		expectedError error
		expectedMsg   string
	}{
		{
			name:          "nil_error",
			err:           nil,
			expectedError: nil,
		},
		{
			name:          "sql_no_rows",
			err:           sql.ErrNoRows,
			expectedError: store.ErrNotFound,
		},
		{
			name:          "unique_violation",
			err:           &pgconn.PgError{Code: uniqueViolationCode, ConstraintName: "courses_pkey"},
			expectedError: store.ErrDuplicate,
		},
		{
			name:          "foreign_key_violation",
			err:           &pgconn.PgError{Code: foreignKeyViolationCode, ConstraintName: "courses_author_id_fkey"},
			expectedError: store.ErrInvalidEntity,
			expectedMsg:   "foreign key violation (courses_author_id_fkey)",
		},
		{
			name:          "check_constraint_violation",
			err:           &pgconn.PgError{Code: checkViolationCode, ConstraintName: "courses_title_check"},
			expectedError: store.ErrInvalidEntity,
			expectedMsg:   "check constraint violation",
		},
		{
			name:          "not_null_violation",
			err:           &pgconn.PgError{Code: notNullViolationCode, ColumnName: "title"},
			expectedError: store.ErrInvalidEntity,
			expectedMsg:   "not null violation (title)",
		},
		{
			name:          "string_too_long",
			err:           &pgconn.PgError{Code: stringTooLongCode},
			expectedError: store.ErrInvalidEntity,
			expectedMsg:   "value too long",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.err)
			if tt.err == nil {
				assert.NoError(t, got)
				return
			}
			require.Error(t, got)
			assert.ErrorIs(t, got, tt.expectedError)
			assert.ErrorIs(t, got, tt.err, "original error stays in the chain")
			if tt.expectedMsg != "" {
				assert.Contains(t, got.Error(), tt.expectedMsg)
			}
		})
	}

	t.Run("generic_error", func(t *testing.T) {
		original := errors.New("connection refused")
		assert.Equal(t, original, MapError(original))
	})
}

func TestViolationHelpers(t *testing.T) {
	unique := &pgconn.PgError{Code: uniqueViolationCode}
	fk := &pgconn.PgError{Code: foreignKeyViolationCode}

	assert.True(t, IsUniqueViolation(unique))
	assert.False(t, IsUniqueViolation(fk))
	assert.True(t, IsForeignKeyViolation(fk))
	assert.False(t, IsForeignKeyViolation(errors.New("plain")))
}

func TestCheckRowsAffected(t *testing.T) {
	assert.NoError(t, CheckRowsAffected(mockResult{rowsAffected: 1}, store.ErrCourseNotFound))
	assert.ErrorIs(t, CheckRowsAffected(mockResult{}, store.ErrCourseNotFound), store.ErrCourseNotFound)
	assert.ErrorIs(t, CheckRowsAffected(mockResult{}, nil), store.ErrNotFound)
	assert.Error(t, CheckRowsAffected(nil, nil))

	err := CheckRowsAffected(mockResult{err: errors.New("driver failure")}, nil)
	assert.Contains(t, err.Error(), "failed to get rows affected")
}
