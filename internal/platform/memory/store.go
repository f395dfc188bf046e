package memory

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/course-library-api/internal/domain"
	"github.com/phrazzld/course-library-api/internal/platform/logger"
	"github.com/phrazzld/course-library-api/internal/store"
)

// Store keeps authors and courses in memory. Writes and transactions are
// serialized; reads run concurrently with each other.
type Store struct {
	// writeMu serializes writers so that a rolled-back transaction cannot
	// discard a concurrent write.
	writeMu sync.Mutex

	mu      sync.RWMutex
	authors map[uuid.UUID]domain.Author
	courses map[uuid.UUID]domain.Course

	logger *slog.Logger
}

// Compile-time checks that Store satisfies the store interfaces.
var (
	_ store.AuthorStore = (*Store)(nil)
	_ store.CourseStore = (*Store)(nil)
	_ store.Transactor  = (*Store)(nil)
)

// New creates an empty Store. A nil logger falls back to slog.Default.
func New(l *slog.Logger) *Store {
	if l == nil {
		l = slog.Default()
	}
	return &Store{
		authors: make(map[uuid.UUID]domain.Author),
		courses: make(map[uuid.UUID]domain.Course),
		logger:  l.With(slog.String("component", "memory_store")),
	}
}

// ListAuthors implements store.AuthorStore.
func (s *Store) ListAuthors(ctx context.Context) ([]*domain.Author, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	authors := make([]*domain.Author, 0, len(s.authors))
	for _, a := range s.authors {
		author := a
		authors = append(authors, &author)
	}
	sort.Slice(authors, func(i, j int) bool {
		if authors[i].LastName != authors[j].LastName {
			return authors[i].LastName < authors[j].LastName
		}
		return authors[i].FirstName < authors[j].FirstName
	})
	return authors, nil
}

// GetAuthor implements store.AuthorStore.
func (s *Store) GetAuthor(ctx context.Context, id uuid.UUID) (*domain.Author, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.authors[id]
	if !ok {
		return nil, store.ErrAuthorNotFound
	}
	return &a, nil
}

// AuthorExists implements store.AuthorStore.
func (s *Store) AuthorExists(ctx context.Context, id uuid.UUID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.authors[id]
	return ok, nil
}

// CreateAuthor implements store.AuthorStore.
func (s *Store) CreateAuthor(ctx context.Context, author *domain.Author) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.createAuthor(ctx, author)
}

func (s *Store) createAuthor(ctx context.Context, author *domain.Author) error {
	if err := author.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.authors[author.ID]; ok {
		return fmt.Errorf("%w: author %s", store.ErrDuplicate, author.ID)
	}
	s.authors[author.ID] = *author

	logger.FromContextOrDefault(ctx, s.logger).DebugContext(ctx, "author created",
		slog.String("author_id", author.ID.String()))
	return nil
}

// ListCourses implements store.CourseStore.
func (s *Store) ListCourses(ctx context.Context, authorID uuid.UUID) ([]*domain.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	courses := make([]*domain.Course, 0)
	for _, c := range s.courses {
		if c.AuthorID != authorID {
			continue
		}
		course := c
		courses = append(courses, &course)
	}
	sort.Slice(courses, func(i, j int) bool {
		return courses[i].Title < courses[j].Title
	})
	return courses, nil
}

// GetCourse implements store.CourseStore.
func (s *Store) GetCourse(ctx context.Context, authorID, courseID uuid.UUID) (*domain.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.courses[courseID]
	if !ok || c.AuthorID != authorID {
		return nil, store.ErrCourseNotFound
	}
	return &c, nil
}

// AddCourse implements store.CourseStore.
func (s *Store) AddCourse(ctx context.Context, authorID uuid.UUID, course *domain.Course) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.addCourse(ctx, authorID, course)
}

func (s *Store) addCourse(ctx context.Context, authorID uuid.UUID, course *domain.Course) error {
	if course.ID == uuid.Nil {
		course.ID = uuid.New()
	}
	course.AuthorID = authorID
	if err := course.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.authors[authorID]; !ok {
		return fmt.Errorf("%w: author %s does not exist", store.ErrInvalidEntity, authorID)
	}
	if _, ok := s.courses[course.ID]; ok {
		return store.ErrCourseExists
	}
	s.courses[course.ID] = *course

	logger.FromContextOrDefault(ctx, s.logger).DebugContext(ctx, "course added",
		slog.String("course_id", course.ID.String()),
		slog.String("author_id", authorID.String()))
	return nil
}

// UpdateCourse implements store.CourseStore.
func (s *Store) UpdateCourse(ctx context.Context, course *domain.Course) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.updateCourse(ctx, course)
}

func (s *Store) updateCourse(ctx context.Context, course *domain.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.courses[course.ID]
	if !ok || current.AuthorID != course.AuthorID {
		return store.ErrCourseNotFound
	}
	current.Title = course.Title
	current.Description = course.Description
	s.courses[course.ID] = current

	logger.FromContextOrDefault(ctx, s.logger).DebugContext(ctx, "course updated",
		slog.String("course_id", course.ID.String()))
	return nil
}

// DeleteCourse implements store.CourseStore.
func (s *Store) DeleteCourse(ctx context.Context, course *domain.Course) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.deleteCourse(ctx, course)
}

func (s *Store) deleteCourse(ctx context.Context, course *domain.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.courses[course.ID]
	if !ok || current.AuthorID != course.AuthorID {
		return store.ErrCourseNotFound
	}
	delete(s.courses, course.ID)

	logger.FromContextOrDefault(ctx, s.logger).DebugContext(ctx, "course deleted",
		slog.String("course_id", course.ID.String()))
	return nil
}
