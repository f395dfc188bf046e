package reconcile

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/course-library-api/internal/domain"
	"github.com/phrazzld/course-library-api/internal/patch"
	"github.com/phrazzld/course-library-api/internal/platform/logger"
	"github.com/phrazzld/course-library-api/internal/redact"
	"github.com/phrazzld/course-library-api/internal/store"
	"github.com/phrazzld/course-library-api/internal/validation"
)

// Repository is the persistence collaborator. Every write is a single
// atomic call; callers that need a wider unit of work pass a repository
// bound to a transaction.
type Repository interface {
	// GetCourse returns store.ErrCourseNotFound when the course is absent.
	GetCourse(ctx context.Context, authorID, courseID uuid.UUID) (*domain.Course, error)
	AddCourse(ctx context.Context, authorID uuid.UUID, course *domain.Course) error
	UpdateCourse(ctx context.Context, course *domain.Course) error
}

// Outcome is the successful end of a reconciliation.
type Outcome int

// Reconciliation outcomes.
const (
	OutcomeCreated Outcome = iota + 1
	OutcomeUpdated
)

// String returns the outcome label.
func (o Outcome) String() string {
	switch o {
	case OutcomeCreated:
		return "created"
	case OutcomeUpdated:
		return "updated"
	default:
		return "unknown"
	}
}

// Request describes one reconciliation.
type Request struct {
	// AuthorExists is established by the caller; the reconciler never
	// looks authors up itself.
	AuthorExists bool
	AuthorID     uuid.UUID
	CourseID     uuid.UUID
	Operations   []patch.Operation
	Profile      validation.Profile
}

// Result is returned when the patched course was persisted.
type Result struct {
	Outcome Outcome
	Course  *domain.Course
}

// Result labels reported to a Recorder.
const (
	ResultCreated            = "created"
	ResultUpdated            = "updated"
	ResultAuthorNotFound     = "author_not_found"
	ResultApplyFailed        = "apply_failed"
	ResultValidationFailed   = "validation_failed"
	ResultPersistenceFailure = "persistence_failed"
)

// Recorder observes how reconciliations end.
type Recorder interface {
	ObserveReconciliation(result string)
}

type noopRecorder struct{}

func (noopRecorder) ObserveReconciliation(string) {}

// Reconciler runs reconciliations. It holds no per-request state and is
// safe for concurrent use.
type Reconciler struct {
	logger   *slog.Logger
	recorder Recorder
}

// New creates a Reconciler. A nil logger falls back to slog.Default and a
// nil recorder discards observations.
func New(logger *slog.Logger, recorder Recorder) *Reconciler {
	if logger == nil {
		logger = slog.Default()
	}
	if recorder == nil {
		recorder = noopRecorder{}
	}
	return &Reconciler{
		logger:   logger.With(slog.String("component", "reconciler")),
		recorder: recorder,
	}
}

// Reconcile applies req.Operations to the addressed course, or to a blank
// document when the course does not exist, validates the result against
// req.Profile and persists it through repo.
//
// Errors: ErrAuthorNotFound, *patch.ApplyError, *validation.Error,
// *PersistenceError, or a domain validation error for a nil identifier.
// No write happens on any error path before the final add or update.
func (r *Reconciler) Reconcile(ctx context.Context, repo Repository, req Request) (*Result, error) {
	log := logger.FromContextOrDefault(ctx, r.logger).With(
		slog.String("author_id", req.AuthorID.String()),
		slog.String("course_id", req.CourseID.String()),
	)
	m := newMachine(ctx, log)

	if !req.AuthorExists {
		m.enter(StateRejected)
		return r.fail(ResultAuthorNotFound, ErrAuthorNotFound)
	}
	m.enter(StateAuthorChecked)

	existing, err := repo.GetCourse(ctx, req.AuthorID, req.CourseID)
	if err != nil && !errors.Is(err, store.ErrCourseNotFound) {
		m.enter(StateRejected)
		log.ErrorContext(ctx, "course lookup failed", redact.ErrorAttr(err))
		return r.fail(ResultPersistenceFailure, &PersistenceError{Op: "get", Err: err})
	}
	m.enter(StateResourceLookedUp)

	var base patch.Document
	if existing == nil {
		m.enter(StateCreateViaPatch)
	} else {
		m.enter(StateUpdateViaPatch)
		base = patch.Document{Title: existing.Title, Description: existing.Description}
	}

	doc, err := patch.Apply(base, req.Operations)
	if err != nil {
		m.enter(StateRejected)
		log.DebugContext(ctx, "patch could not be applied", slog.Any("error", err))
		return r.fail(ResultApplyFailed, err)
	}
	m.enter(StateApplied)

	if err := validation.Check(doc, req.Profile); err != nil {
		m.enter(StateRejected)
		log.DebugContext(ctx, "patched course failed validation",
			slog.String("profile", req.Profile.Name),
			slog.Any("error", err))
		return r.fail(ResultValidationFailed, err)
	}
	m.enter(StateValidated)

	if existing == nil {
		course, err := domain.NewCourseWithID(req.CourseID, req.AuthorID, doc.Title, doc.Description)
		if err != nil {
			m.enter(StateRejected)
			return r.fail(ResultValidationFailed, err)
		}
		if err := repo.AddCourse(ctx, req.AuthorID, course); err != nil {
			m.enter(StateRejected)
			log.ErrorContext(ctx, "failed to add course", redact.ErrorAttr(err))
			return r.fail(ResultPersistenceFailure, &PersistenceError{Op: "add", Err: err})
		}
		m.enter(StateCommitted)
		r.recorder.ObserveReconciliation(ResultCreated)
		log.InfoContext(ctx, "course created via patch")
		return &Result{Outcome: OutcomeCreated, Course: course}, nil
	}

	updated := *existing
	updated.Title = doc.Title
	updated.Description = doc.Description
	if err := repo.UpdateCourse(ctx, &updated); err != nil {
		m.enter(StateRejected)
		log.ErrorContext(ctx, "failed to update course", redact.ErrorAttr(err))
		return r.fail(ResultPersistenceFailure, &PersistenceError{Op: "update", Err: err})
	}
	m.enter(StateCommitted)
	r.recorder.ObserveReconciliation(ResultUpdated)
	log.InfoContext(ctx, "course updated via patch")
	return &Result{Outcome: OutcomeUpdated, Course: &updated}, nil
}

func (r *Reconciler) fail(result string, err error) (*Result, error) {
	r.recorder.ObserveReconciliation(result)
	return nil, err
}
