package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/course-library-api/internal/domain"
	"github.com/phrazzld/course-library-api/internal/store"
)

// mockAuthorStore implements store.AuthorStore with overridable functions.
type mockAuthorStore struct {
	store.AuthorStore

	AuthorExistsFn func(ctx context.Context, id uuid.UUID) (bool, error)
	ListAuthorsFn  func(ctx context.Context) ([]*domain.Author, error)
}

func (m *mockAuthorStore) AuthorExists(ctx context.Context, id uuid.UUID) (bool, error) {
	return m.AuthorExistsFn(ctx, id)
}

func (m *mockAuthorStore) ListAuthors(ctx context.Context) ([]*domain.Author, error) {
	return m.ListAuthorsFn(ctx)
}

// mockTransactor runs fn against fixed stores, or fails before running it.
type mockTransactor struct {
	stores store.Stores
	err    error
	calls  int
}

func (m *mockTransactor) WithinTx(ctx context.Context, fn func(context.Context, store.Stores) error) error {
	m.calls++
	if m.err != nil {
		return m.err
	}
	return fn(ctx, m.stores)
}
