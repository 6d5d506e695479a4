package storage

import (
	"context"
	"sync"

	"meal-planner/internal/planner"
)

// MemoryHistoryStore keeps the encoded history in memory. Loads return a
// fresh copy so callers never alias stored state.
type MemoryHistoryStore struct {
	mu   sync.Mutex
	data []byte
}

var _ planner.HistoryStore = (*MemoryHistoryStore)(nil)

// NewMemoryHistoryStore creates an empty MemoryHistoryStore.
func NewMemoryHistoryStore() *MemoryHistoryStore {
	return &MemoryHistoryStore{}
}

func (s *MemoryHistoryStore) Load(ctx context.Context) (*planner.MealPlanHistory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data == nil {
		return nil, ErrNoHistory
	}
	return decodeHistory(s.data)
}

func (s *MemoryHistoryStore) Save(ctx context.Context, history *planner.MealPlanHistory) error {
	data, err := encodeHistory(history)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.data = data
	s.mu.Unlock()
	return nil
}
