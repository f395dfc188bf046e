package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/course-library-api/internal/domain"
	"github.com/phrazzld/course-library-api/internal/patch"
	"github.com/phrazzld/course-library-api/internal/platform/logger"
	"github.com/phrazzld/course-library-api/internal/reconcile"
	"github.com/phrazzld/course-library-api/internal/redact"
	"github.com/phrazzld/course-library-api/internal/store"
	"github.com/phrazzld/course-library-api/internal/validation"
)

// CourseService provides course operations. Every operation first checks
// that the author exists and returns ErrAuthorNotFound otherwise.
type CourseService interface {
	// ListCourses returns the author's courses.
	ListCourses(ctx context.Context, authorID uuid.UUID) ([]*domain.Course, error)

	// GetCourse returns one course or ErrCourseNotFound.
	GetCourse(ctx context.Context, authorID, courseID uuid.UUID) (*domain.Course, error)

	// CreateCourse validates doc with the manipulation profile and stores it
	// under a new ID.
	CreateCourse(ctx context.Context, authorID uuid.UUID, doc patch.Document) (*domain.Course, error)

	// ReplaceCourse overwrites the course with doc, validated with the
	// update profile. A missing course is created under courseID; created
	// reports which branch ran.
	ReplaceCourse(
		ctx context.Context,
		authorID, courseID uuid.UUID,
		doc patch.Document,
	) (course *domain.Course, created bool, err error)

	// PatchCourse reconciles ops against the course, creating it under
	// courseID when it does not exist.
	PatchCourse(
		ctx context.Context,
		authorID, courseID uuid.UUID,
		ops []patch.Operation,
	) (*reconcile.Result, error)

	// DeleteCourse removes the course or returns ErrCourseNotFound.
	DeleteCourse(ctx context.Context, authorID, courseID uuid.UUID) error
}

type courseServiceImpl struct {
	authors      store.AuthorStore
	courses      store.CourseStore
	tx           store.Transactor
	reconciler   *reconcile.Reconciler
	patchProfile validation.Profile
	logger       *slog.Logger
}

// NewCourseService creates a CourseService. patchProfile is the validation
// profile applied to documents produced by PatchCourse.
// It returns an error if any of the required dependencies are nil.
func NewCourseService(
	authors store.AuthorStore,
	courses store.CourseStore,
	tx store.Transactor,
	reconciler *reconcile.Reconciler,
	patchProfile validation.Profile,
	logger *slog.Logger,
) (CourseService, error) {
	switch {
	case authors == nil:
		return nil, &ServiceError{Operation: "create_service", Message: "authors cannot be nil"}
	case courses == nil:
		return nil, &ServiceError{Operation: "create_service", Message: "courses cannot be nil"}
	case tx == nil:
		return nil, &ServiceError{Operation: "create_service", Message: "transactor cannot be nil"}
	case reconciler == nil:
		return nil, &ServiceError{Operation: "create_service", Message: "reconciler cannot be nil"}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &courseServiceImpl{
		authors:      authors,
		courses:      courses,
		tx:           tx,
		reconciler:   reconciler,
		patchProfile: patchProfile,
		logger:       logger.With(slog.String("component", "course_service")),
	}, nil
}

func (s *courseServiceImpl) requireAuthor(ctx context.Context, authors store.AuthorStore, authorID uuid.UUID) error {
	exists, err := authors.AuthorExists(ctx, authorID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrAuthorNotFound
	}
	return nil
}

// ListCourses implements CourseService.
func (s *courseServiceImpl) ListCourses(ctx context.Context, authorID uuid.UUID) ([]*domain.Course, error) {
	if err := s.requireAuthor(ctx, s.authors, authorID); err != nil {
		return nil, NewServiceError("list_courses", "failed to check author", err)
	}
	courses, err := s.courses.ListCourses(ctx, authorID)
	if err != nil {
		return nil, NewServiceError("list_courses", "failed to list courses", err)
	}
	return courses, nil
}

// GetCourse implements CourseService.
func (s *courseServiceImpl) GetCourse(ctx context.Context, authorID, courseID uuid.UUID) (*domain.Course, error) {
	if err := s.requireAuthor(ctx, s.authors, authorID); err != nil {
		return nil, NewServiceError("get_course", "failed to check author", err)
	}
	course, err := s.courses.GetCourse(ctx, authorID, courseID)
	if err != nil {
		return nil, NewServiceError("get_course", "failed to get course", err)
	}
	return course, nil
}

// CreateCourse implements CourseService.
func (s *courseServiceImpl) CreateCourse(
	ctx context.Context,
	authorID uuid.UUID,
	doc patch.Document,
) (*domain.Course, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := validation.Check(doc, validation.ManipulationProfile); err != nil {
		return nil, err
	}

	var course *domain.Course
	err := s.tx.WithinTx(ctx, func(ctx context.Context, tx store.Stores) error {
		if err := s.requireAuthor(ctx, tx.Authors, authorID); err != nil {
			return err
		}
		c, err := domain.NewCourse(authorID, doc.Title, doc.Description)
		if err != nil {
			return err
		}
		if err := tx.Courses.AddCourse(ctx, authorID, c); err != nil {
			return err
		}
		course = c
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrAuthorNotFound) {
			log.Error("failed to create course", redact.ErrorAttr(err))
		}
		return nil, NewServiceError("create_course", "failed to create course", err)
	}

	log.Info("course created",
		slog.String("course_id", course.ID.String()),
		slog.String("author_id", authorID.String()))
	return course, nil
}

// ReplaceCourse implements CourseService.
func (s *courseServiceImpl) ReplaceCourse(
	ctx context.Context,
	authorID, courseID uuid.UUID,
	doc patch.Document,
) (*domain.Course, bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var (
		course  *domain.Course
		created bool
	)
	err := s.tx.WithinTx(ctx, func(ctx context.Context, tx store.Stores) error {
		if err := s.requireAuthor(ctx, tx.Authors, authorID); err != nil {
			return err
		}
		// Validation follows the author check so a missing author is a 404
		// whatever the body holds.
		if err := validation.Check(doc, validation.UpdateProfile); err != nil {
			return err
		}

		existing, err := tx.Courses.GetCourse(ctx, authorID, courseID)
		switch {
		case errors.Is(err, store.ErrCourseNotFound):
			c, err := domain.NewCourseWithID(courseID, authorID, doc.Title, doc.Description)
			if err != nil {
				return err
			}
			if err := tx.Courses.AddCourse(ctx, authorID, c); err != nil {
				return err
			}
			course, created = c, true
			return nil
		case err != nil:
			return err
		}

		existing.Title = doc.Title
		existing.Description = doc.Description
		if err := tx.Courses.UpdateCourse(ctx, existing); err != nil {
			return err
		}
		course = existing
		return nil
	})
	if err != nil {
		return nil, false, NewServiceError("replace_course", "failed to replace course", err)
	}

	log.Info("course replaced",
		slog.String("course_id", course.ID.String()),
		slog.Bool("created", created))
	return course, created, nil
}

// PatchCourse implements CourseService.
func (s *courseServiceImpl) PatchCourse(
	ctx context.Context,
	authorID, courseID uuid.UUID,
	ops []patch.Operation,
) (*reconcile.Result, error) {
	var result *reconcile.Result
	err := s.tx.WithinTx(ctx, func(ctx context.Context, tx store.Stores) error {
		exists, err := tx.Authors.AuthorExists(ctx, authorID)
		if err != nil {
			return err
		}
		result, err = s.reconciler.Reconcile(ctx, tx.Courses, reconcile.Request{
			AuthorExists: exists,
			AuthorID:     authorID,
			CourseID:     courseID,
			Operations:   ops,
			Profile:      s.patchProfile,
		})
		return err
	})
	if err != nil {
		return nil, NewServiceError("patch_course", "failed to patch course", err)
	}
	return result, nil
}

// DeleteCourse implements CourseService.
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, authorID, courseID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := s.tx.WithinTx(ctx, func(ctx context.Context, tx store.Stores) error {
		if err := s.requireAuthor(ctx, tx.Authors, authorID); err != nil {
			return err
		}
		course, err := tx.Courses.GetCourse(ctx, authorID, courseID)
		if err != nil {
			return err
		}
		return tx.Courses.DeleteCourse(ctx, course)
	})
	if err != nil {
		return NewServiceError("delete_course", "failed to delete course", err)
	}

	log.Info("course deleted", slog.String("course_id", courseID.String()))
	return nil
}
