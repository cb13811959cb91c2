package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"pillbox/internal/pill/models"
	id "pillbox/pkg/domain"
	"pillbox/pkg/platform/sentinel"
)

// PillStoreSuite exercises the Store contract. It runs against every
// implementation so backends stay observably equivalent.
type PillStoreSuite struct {
	suite.Suite
	newStore func(t *testing.T) Store
	store    Store
	ctx      context.Context
}

func (s *PillStoreSuite) SetupTest() {
	s.store = s.newStore(s.T())
	s.ctx = context.Background()
}

func newTestPill(title string) *models.Pill {
	return models.NewPill(id.NewPillID(), title, "some content")
}

func (s *PillStoreSuite) TestSaveAndFindByID() {
	s.Run("finds a saved pill", func() {
		pill := newTestPill("Value objects")
		s.Require().NoError(s.store.Save(s.ctx, pill))

		found, err := s.store.FindByID(s.ctx, pill.ID)
		s.Require().NoError(err)
		s.Equal(pill.Title, found.Title)
		s.Equal(pill.Content, found.Content)
	})

	s.Run("returns ErrNotFound for unknown id", func() {
		_, err := s.store.FindByID(s.ctx, id.NewPillID())
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})
}

// TestSaveIsIdempotentUpsert verifies that saving the same id twice with
// different field values leaves exactly one record holding the latest values.
func (s *PillStoreSuite) TestSaveIsIdempotentUpsert() {
	pill := newTestPill("First draft")
	s.Require().NoError(s.store.Save(s.ctx, pill))

	pill.Title = "Second draft"
	pill.Content = "revised"
	s.Require().NoError(s.store.Save(s.ctx, pill))

	all, err := s.store.FindAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 1, "upsert must not duplicate the record")
	s.Equal("Second draft", all[0].Title)
	s.Equal("revised", all[0].Content)
}

func (s *PillStoreSuite) TestDuplicateTitlesAllowed() {
	s.Require().NoError(s.store.Save(s.ctx, newTestPill("Same title")))
	s.Require().NoError(s.store.Save(s.ctx, newTestPill("Same title")))

	all, err := s.store.FindAll(s.ctx)
	s.Require().NoError(err)
	s.Len(all, 2, "pill titles carry no uniqueness constraint")
}

func (s *PillStoreSuite) TestFindAll() {
	s.Run("empty store yields empty snapshot", func() {
		all, err := s.store.FindAll(s.ctx)
		s.Require().NoError(err)
		s.Empty(all)
	})

	s.Run("returns every saved pill", func() {
		want := map[string]bool{}
		for _, title := range []string{"a", "b", "c"} {
			pill := newTestPill(title)
			s.Require().NoError(s.store.Save(s.ctx, pill))
			want[pill.ID.String()] = true
		}

		all, err := s.store.FindAll(s.ctx)
		s.Require().NoError(err)
		s.Require().Len(all, 3)
		for _, pill := range all {
			s.True(want[pill.ID.String()], "unexpected pill %s", pill.ID)
		}
	})
}
