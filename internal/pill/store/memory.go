package store

import (
	"context"
	"sync"

	"pillbox/internal/pill/models"
	id "pillbox/pkg/domain"
	"pillbox/pkg/platform/sentinel"
)

// Memory is the in-process pill store. One mutex guards the whole map so
// each operation sees a consistent snapshot.
type Memory struct {
	mu    sync.RWMutex
	pills map[id.PillID]models.Pill
}

func NewMemory() *Memory {
	return &Memory{pills: make(map[id.PillID]models.Pill)}
}

func (s *Memory) Save(_ context.Context, pill *models.Pill) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pills[pill.ID] = *pill
	return nil
}

func (s *Memory) FindByID(_ context.Context, pillID id.PillID) (*models.Pill, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pill, ok := s.pills[pillID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &pill, nil
}

func (s *Memory) FindAll(_ context.Context) ([]*models.Pill, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pills := make([]*models.Pill, 0, len(s.pills))
	for _, pill := range s.pills {
		p := pill
		pills = append(pills, &p)
	}
	return pills, nil
}
