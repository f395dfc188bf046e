package memory

import (
	"context"
	"log/slog"
	"maps"

	"github.com/google/uuid"
	"github.com/phrazzld/course-library-api/internal/domain"
	"github.com/phrazzld/course-library-api/internal/platform/logger"
	"github.com/phrazzld/course-library-api/internal/store"
)

// WithinTx implements store.Transactor. The store's contents are
// snapshotted before fn runs and restored if fn fails or panics. Other
// writers wait until the transaction ends.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, tx store.Stores) error) (err error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	authors, courses := s.snapshot()

	defer func() {
		if p := recover(); p != nil {
			s.restore(authors, courses)
			logger.FromContextOrDefault(ctx, s.logger).ErrorContext(ctx, "panic in transaction, rolled back",
				slog.Any("panic", p))
			panic(p)
		}
		if err != nil {
			s.restore(authors, courses)
			logger.FromContextOrDefault(ctx, s.logger).DebugContext(ctx, "transaction rolled back")
		}
	}()

	view := &txView{s: s}
	return fn(ctx, store.Stores{Authors: view, Courses: view})
}

func (s *Store) snapshot() (map[uuid.UUID]domain.Author, map[uuid.UUID]domain.Course) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.authors), maps.Clone(s.courses)
}

func (s *Store) restore(authors map[uuid.UUID]domain.Author, courses map[uuid.UUID]domain.Course) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authors = authors
	s.courses = courses
}

// txView is handed to a transaction body. Its writes skip writeMu, which
// the enclosing WithinTx already holds.
type txView struct {
	s *Store
}

func (v *txView) ListAuthors(ctx context.Context) ([]*domain.Author, error) {
	return v.s.ListAuthors(ctx)
}

func (v *txView) GetAuthor(ctx context.Context, id uuid.UUID) (*domain.Author, error) {
	return v.s.GetAuthor(ctx, id)
}

func (v *txView) AuthorExists(ctx context.Context, id uuid.UUID) (bool, error) {
	return v.s.AuthorExists(ctx, id)
}

func (v *txView) CreateAuthor(ctx context.Context, author *domain.Author) error {
	return v.s.createAuthor(ctx, author)
}

func (v *txView) ListCourses(ctx context.Context, authorID uuid.UUID) ([]*domain.Course, error) {
	return v.s.ListCourses(ctx, authorID)
}

func (v *txView) GetCourse(ctx context.Context, authorID, courseID uuid.UUID) (*domain.Course, error) {
	return v.s.GetCourse(ctx, authorID, courseID)
}

func (v *txView) AddCourse(ctx context.Context, authorID uuid.UUID, course *domain.Course) error {
	return v.s.addCourse(ctx, authorID, course)
}

func (v *txView) UpdateCourse(ctx context.Context, course *domain.Course) error {
	return v.s.updateCourse(ctx, course)
}

func (v *txView) DeleteCourse(ctx context.Context, course *domain.Course) error {
	return v.s.deleteCourse(ctx, course)
}
