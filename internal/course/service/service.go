// Package service implements the course use cases: one method per command
// or query exposed to the transport layer. It composes the course store
// with the pill store for association checks and the application-level join;
// no storage-level relational constraint exists between the two aggregates.
package service

import (
	"context"
	"errors"
	"log/slog"

	coursemodels "pillbox/internal/course/models"
	pillmodels "pillbox/internal/pill/models"
	"pillbox/internal/platform/metrics"
	id "pillbox/pkg/domain"
	dErrors "pillbox/pkg/domain-errors"
	"pillbox/pkg/platform/sentinel"
)

// CourseStore is the course repository contract the service depends on.
type CourseStore interface {
	Save(ctx context.Context, course *coursemodels.Course) error
	FindByID(ctx context.Context, courseID id.CourseID) (*coursemodels.Course, error)
	FindAll(ctx context.Context) ([]*coursemodels.Course, error)
	FindByTitle(ctx context.Context, title string) (*coursemodels.Course, error)
}

// PillReader is the slice of the pill contract needed for association checks
// and the join.
type PillReader interface {
	FindByID(ctx context.Context, pillID id.PillID) (*pillmodels.Pill, error)
}

// CreateCourseCommand carries the input for CreateCourse. PillIDs may
// reference pills that do not exist; existence is only checked when
// associating a pill after creation.
type CreateCourseCommand struct {
	Title       string
	Description string
	Instructor  string
	Difficulty  coursemodels.Difficulty
	Hours       int
	Tags        []string
	Price       float64
	PillIDs     []id.PillID
}

// AddPillToCourseCommand carries the input for AddPillToCourse.
type AddPillToCourseCommand struct {
	CourseID id.CourseID
	PillID   id.PillID
}

// CourseWithPills is the result of the application-level join: the course
// plus every referenced pill that could still be resolved, in the same
// relative order as the course's pill id list.
type CourseWithPills struct {
	Course *coursemodels.Course `json:"course"`
	Pills  []*pillmodels.Pill   `json:"pills"`
}

// Service orchestrates course commands and queries. It holds no aggregate
// state between calls; the stores own every aggregate.
type Service struct {
	courses CourseStore
	pills   PillReader
	logger  *slog.Logger
	metrics *metrics.Metrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func New(courses CourseStore, pills PillReader, opts ...Option) *Service {
	s := &Service{
		courses: courses,
		pills:   pills,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateCourse checks title uniqueness, generates a fresh id, and saves the
// aggregate with the supplied pill references.
//
// The uniqueness check and the save are two independent store calls: two
// concurrent creations with the same title can both pass the check and both
// succeed. The race is carried over from the original design; see DESIGN.md.
func (s *Service) CreateCourse(ctx context.Context, cmd CreateCourseCommand) (id.CourseID, error) {
	_, err := s.courses.FindByTitle(ctx, cmd.Title)
	switch {
	case err == nil:
		return id.CourseID{}, dErrors.New(dErrors.CodeConflict, "course with this title already exists")
	case errors.Is(err, sentinel.ErrNotFound):
		// title is free
	default:
		return id.CourseID{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to check course title")
	}

	courseID := id.NewCourseID()
	course := coursemodels.NewCourse(
		courseID,
		cmd.Title,
		cmd.Description,
		cmd.Instructor,
		cmd.Difficulty,
		cmd.Hours,
		cmd.Tags,
		cmd.Price,
		cmd.PillIDs,
	)

	if err := s.courses.Save(ctx, course); err != nil {
		return id.CourseID{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save course")
	}

	s.logger.InfoContext(ctx, "course created",
		"course_id", courseID.String(),
		"title", cmd.Title,
		"pills", course.PillCount(),
	)
	s.metrics.IncrementCoursesCreated()
	return courseID, nil
}

// AddPillToCourse associates an existing pill with an existing course.
// Adding the same pill twice is a no-op, not an error.
//
// This is a read-validate-mutate-write sequence across two stores with no
// isolation between steps: concurrent additions to the same course race on
// the final save and the last writer's snapshot wins. Carried over from the
// original design; see DESIGN.md.
func (s *Service) AddPillToCourse(ctx context.Context, cmd AddPillToCourseCommand) error {
	if _, err := s.pills.FindByID(ctx, cmd.PillID); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "pill not found")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to check pill")
	}

	course, err := s.courses.FindByID(ctx, cmd.CourseID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "course not found")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load course")
	}

	course.AddPill(cmd.PillID)

	if err := s.courses.Save(ctx, course); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to save course")
	}

	s.logger.InfoContext(ctx, "pill added to course",
		"course_id", cmd.CourseID.String(),
		"pill_id", cmd.PillID.String(),
		"pills", course.PillCount(),
	)
	s.metrics.IncrementPillsAttached()
	return nil
}

// FindCourse returns a single course, mapping store absence to CodeNotFound.
func (s *Service) FindCourse(ctx context.Context, courseID id.CourseID) (*coursemodels.Course, error) {
	course, err := s.courses.FindByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "course not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to find course")
	}
	return course, nil
}

// FindAllCourses returns the full snapshot of courses.
func (s *Service) FindAllCourses(ctx context.Context) ([]*coursemodels.Course, error) {
	courses, err := s.courses.FindAll(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list courses")
	}
	return courses, nil
}

// FindCourseWithPills loads a course and resolves its referenced pills.
//
// A referenced pill that no longer exists is skipped, not an error: the
// catalog tolerates referential drift at read time. Any other pill lookup
// failure aborts the whole query. Surviving pills keep the relative order of
// the course's pill id list.
func (s *Service) FindCourseWithPills(ctx context.Context, courseID id.CourseID) (*CourseWithPills, error) {
	course, err := s.courses.FindByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "course not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to find course")
	}

	pills := make([]*pillmodels.Pill, 0, len(course.PillIDs))
	for _, pillID := range course.PillIDs {
		pill, err := s.pills.FindByID(ctx, pillID)
		if errors.Is(err, sentinel.ErrNotFound) {
			s.logger.WarnContext(ctx, "pill referenced by course but not found",
				"course_id", course.ID.String(),
				"pill_id", pillID.String(),
			)
			continue
		}
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to resolve course pill")
		}
		pills = append(pills, pill)
	}

	return &CourseWithPills{Course: course, Pills: pills}, nil
}
