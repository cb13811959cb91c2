package store

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	id "pillbox/pkg/domain"
)

func TestMemoryCourseStoreSuite(t *testing.T) {
	suite.Run(t, &CourseStoreSuite{
		newStore: func(t *testing.T) Store { return NewMemory() },
	})
}

// TestMemory_ConcurrentOps runs saves and title scans in parallel; the race
// detector flags any hole in the locking.
func TestMemory_ConcurrentOps(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	const goroutines = 32
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			course := newTestCourse("concurrent")
			require.NoError(t, s.Save(ctx, course))
			_, _ = s.FindByTitle(ctx, "concurrent")
			_, err := s.FindAll(ctx)
			require.NoError(t, err)
		}()
	}
	wg.Wait()
}

// TestMemory_ReturnsCopies verifies mutating a loaded course does not leak
// into the store before Save. The read-mutate-write flow in the service
// depends on this.
func TestMemory_ReturnsCopies(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	course := newTestCourse("isolated")
	require.NoError(t, s.Save(ctx, course))

	loaded, err := s.FindByID(ctx, course.ID)
	require.NoError(t, err)
	loaded.AddPill(id.NewPillID())
	loaded.Title = "mutated"

	stored, err := s.FindByID(ctx, course.ID)
	require.NoError(t, err)
	require.Equal(t, "isolated", stored.Title)
	require.Empty(t, stored.PillIDs)
}
