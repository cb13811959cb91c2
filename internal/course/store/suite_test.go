package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"pillbox/internal/course/models"
	id "pillbox/pkg/domain"
	"pillbox/pkg/platform/sentinel"
)

// CourseStoreSuite exercises the Store contract against every
// implementation so backends stay observably equivalent.
type CourseStoreSuite struct {
	suite.Suite
	newStore func(t *testing.T) Store
	store    Store
	ctx      context.Context
}

func (s *CourseStoreSuite) SetupTest() {
	s.store = s.newStore(s.T())
	s.ctx = context.Background()
}

func newTestCourse(title string, pillIDs ...id.PillID) *models.Course {
	return models.NewCourse(
		id.NewCourseID(),
		title,
		"a description",
		"An Instructor",
		models.DifficultyBeginner,
		8,
		[]string{"go", "testing"},
		19.90,
		pillIDs,
	)
}

func (s *CourseStoreSuite) TestSaveAndFindByID() {
	s.Run("finds a saved course with all fields intact", func() {
		course := newTestCourse("DDD in practice", id.NewPillID(), id.NewPillID())
		s.Require().NoError(s.store.Save(s.ctx, course))

		found, err := s.store.FindByID(s.ctx, course.ID)
		s.Require().NoError(err)
		s.Equal(course.Title, found.Title)
		s.Equal(course.Instructor, found.Instructor)
		s.Equal(course.Difficulty, found.Difficulty)
		s.Equal(course.Hours, found.Hours)
		s.Equal(course.Tags, found.Tags)
		s.InDelta(course.Price, found.Price, 1e-9)
		s.Equal(course.PillIDs, found.PillIDs, "pill id order must survive storage")
	})

	s.Run("returns ErrNotFound for unknown id", func() {
		_, err := s.store.FindByID(s.ctx, id.NewCourseID())
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})
}

// TestSaveIsIdempotentUpsert verifies a second save with the same id fully
// replaces the aggregate without duplicating it.
func (s *CourseStoreSuite) TestSaveIsIdempotentUpsert() {
	course := newTestCourse("Original title")
	s.Require().NoError(s.store.Save(s.ctx, course))

	course.Title = "Replaced title"
	course.AddPill(id.NewPillID())
	s.Require().NoError(s.store.Save(s.ctx, course))

	all, err := s.store.FindAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 1)
	s.Equal("Replaced title", all[0].Title)
	s.Len(all[0].PillIDs, 1)
}

func (s *CourseStoreSuite) TestFindByTitle() {
	s.Run("exact match", func() {
		course := newTestCourse("Event Sourcing 101")
		s.Require().NoError(s.store.Save(s.ctx, course))

		found, err := s.store.FindByTitle(s.ctx, "Event Sourcing 101")
		s.Require().NoError(err)
		s.Equal(course.ID, found.ID)
	})

	s.Run("no partial or case-insensitive match", func() {
		s.Require().NoError(s.store.Save(s.ctx, newTestCourse("Exact Title")))

		_, err := s.store.FindByTitle(s.ctx, "exact title")
		s.Require().ErrorIs(err, sentinel.ErrNotFound)

		_, err = s.store.FindByTitle(s.ctx, "Exact")
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})
}

func (s *CourseStoreSuite) TestFindAll() {
	s.Run("empty store yields empty snapshot", func() {
		all, err := s.store.FindAll(s.ctx)
		s.Require().NoError(err)
		s.Empty(all)
	})

	s.Run("returns every saved course", func() {
		want := map[string]bool{}
		for _, title := range []string{"one", "two", "three"} {
			course := newTestCourse(title)
			s.Require().NoError(s.store.Save(s.ctx, course))
			want[course.ID.String()] = true
		}

		all, err := s.store.FindAll(s.ctx)
		s.Require().NoError(err)
		s.Require().Len(all, 3)
		for _, course := range all {
			s.True(want[course.ID.String()], "unexpected course %s", course.ID)
		}
	})
}
