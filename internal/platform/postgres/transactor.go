package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/phrazzld/course-library-api/internal/store"
)

// Transactor implements store.Transactor with database transactions.
type Transactor struct {
	db     *sql.DB
	logger *slog.Logger
}

var _ store.Transactor = (*Transactor)(nil)

// NewTransactor creates a Transactor over db.
func NewTransactor(db *sql.DB, logger *slog.Logger) *Transactor {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Transactor{db: db, logger: logger}
}

// WithinTx runs fn with stores bound to a single transaction.
func (t *Transactor) WithinTx(ctx context.Context, fn func(ctx context.Context, tx store.Stores) error) error {
	return store.RunInTransaction(ctx, t.db, func(ctx context.Context, tx *sql.Tx) error {
		return fn(ctx, store.Stores{
			Authors: NewPostgresAuthorStore(tx, t.logger),
			Courses: NewPostgresCourseStore(tx, t.logger),
		})
	})
}
