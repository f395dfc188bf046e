package api

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/course-library-api/internal/domain"
	"github.com/phrazzld/course-library-api/internal/patch"
	"github.com/phrazzld/course-library-api/internal/reconcile"
	"github.com/phrazzld/course-library-api/internal/service"
)

type mockAuthorService struct {
	ListAuthorsFn  func(ctx context.Context) ([]*domain.Author, error)
	GetAuthorFn    func(ctx context.Context, id uuid.UUID) (*domain.Author, error)
	CreateAuthorFn func(ctx context.Context, input service.CreateAuthorInput) (*domain.Author, []*domain.Course, error)
}

func (m *mockAuthorService) ListAuthors(ctx context.Context) ([]*domain.Author, error) {
	return m.ListAuthorsFn(ctx)
}

func (m *mockAuthorService) GetAuthor(ctx context.Context, id uuid.UUID) (*domain.Author, error) {
	return m.GetAuthorFn(ctx, id)
}

func (m *mockAuthorService) CreateAuthor(
	ctx context.Context,
	input service.CreateAuthorInput,
) (*domain.Author, []*domain.Course, error) {
	return m.CreateAuthorFn(ctx, input)
}

type mockCourseService struct {
	ListCoursesFn   func(ctx context.Context, authorID uuid.UUID) ([]*domain.Course, error)
	GetCourseFn     func(ctx context.Context, authorID, courseID uuid.UUID) (*domain.Course, error)
	CreateCourseFn  func(ctx context.Context, authorID uuid.UUID, doc patch.Document) (*domain.Course, error)
	ReplaceCourseFn func(ctx context.Context, authorID, courseID uuid.UUID, doc patch.Document) (*domain.Course, bool, error)
	PatchCourseFn   func(ctx context.Context, authorID, courseID uuid.UUID, ops []patch.Operation) (*reconcile.Result, error)
	DeleteCourseFn  func(ctx context.Context, authorID, courseID uuid.UUID) error
}

func (m *mockCourseService) ListCourses(ctx context.Context, authorID uuid.UUID) ([]*domain.Course, error) {
	return m.ListCoursesFn(ctx, authorID)
}

func (m *mockCourseService) GetCourse(ctx context.Context, authorID, courseID uuid.UUID) (*domain.Course, error) {
	return m.GetCourseFn(ctx, authorID, courseID)
}

func (m *mockCourseService) CreateCourse(
	ctx context.Context,
	authorID uuid.UUID,
	doc patch.Document,
) (*domain.Course, error) {
	return m.CreateCourseFn(ctx, authorID, doc)
}

func (m *mockCourseService) ReplaceCourse(
	ctx context.Context,
	authorID, courseID uuid.UUID,
	doc patch.Document,
) (*domain.Course, bool, error) {
	return m.ReplaceCourseFn(ctx, authorID, courseID, doc)
}

func (m *mockCourseService) PatchCourse(
	ctx context.Context,
	authorID, courseID uuid.UUID,
	ops []patch.Operation,
) (*reconcile.Result, error) {
	return m.PatchCourseFn(ctx, authorID, courseID, ops)
}

func (m *mockCourseService) DeleteCourse(ctx context.Context, authorID, courseID uuid.UUID) error {
	return m.DeleteCourseFn(ctx, authorID, courseID)
}
