package store

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestMemoryPillStoreSuite(t *testing.T) {
	suite.Run(t, &PillStoreSuite{
		newStore: func(t *testing.T) Store { return NewMemory() },
	})
}

// TestMemory_ConcurrentSaves hammers one store from many goroutines; the
// race detector flags any missing lock.
func TestMemory_ConcurrentSaves(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	const goroutines = 32
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			pill := newTestPill("concurrent")
			require.NoError(t, s.Save(ctx, pill))
			_, err := s.FindByID(ctx, pill.ID)
			require.NoError(t, err)
			_, err = s.FindAll(ctx)
			require.NoError(t, err)
		}()
	}
	wg.Wait()

	all, err := s.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, goroutines)
}

// TestMemory_ReturnsCopies verifies callers cannot mutate stored state
// through a returned aggregate.
func TestMemory_ReturnsCopies(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	pill := newTestPill("original")
	require.NoError(t, s.Save(ctx, pill))

	found, err := s.FindByID(ctx, pill.ID)
	require.NoError(t, err)
	found.Title = "mutated"

	again, err := s.FindByID(ctx, pill.ID)
	require.NoError(t, err)
	require.Equal(t, "original", again.Title)
}
