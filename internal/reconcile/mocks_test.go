package reconcile

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/course-library-api/internal/domain"
	"github.com/phrazzld/course-library-api/internal/store"
)

// mockRepository is a Repository whose behaviour is set per test.
type mockRepository struct {
	GetCourseFn    func(ctx context.Context, authorID, courseID uuid.UUID) (*domain.Course, error)
	AddCourseFn    func(ctx context.Context, authorID uuid.UUID, course *domain.Course) error
	UpdateCourseFn func(ctx context.Context, course *domain.Course) error

	added   []*domain.Course
	updated []*domain.Course
}

func (m *mockRepository) GetCourse(ctx context.Context, authorID, courseID uuid.UUID) (*domain.Course, error) {
	if m.GetCourseFn != nil {
		return m.GetCourseFn(ctx, authorID, courseID)
	}
	return nil, store.ErrCourseNotFound
}

func (m *mockRepository) AddCourse(ctx context.Context, authorID uuid.UUID, course *domain.Course) error {
	m.added = append(m.added, course)
	if m.AddCourseFn != nil {
		return m.AddCourseFn(ctx, authorID, course)
	}
	return nil
}

func (m *mockRepository) UpdateCourse(ctx context.Context, course *domain.Course) error {
	m.updated = append(m.updated, course)
	if m.UpdateCourseFn != nil {
		return m.UpdateCourseFn(ctx, course)
	}
	return nil
}

func (m *mockRepository) writes() int {
	return len(m.added) + len(m.updated)
}

type spyRecorder struct {
	results []string
}

func (s *spyRecorder) ObserveReconciliation(result string) {
	s.results = append(s.results, result)
}
