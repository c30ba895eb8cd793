package database

import (
	"context"
	"sync"

	"github.com/qixiao/douyin-lite/internal/entity"
)

// HistoryMemoryStorage is a map-backed storage used in dev mode and tests.
type HistoryMemoryStorage struct {
	mu      sync.Mutex
	history entity.SearchHistory
	stored  bool
}

func NewHistoryMemoryStorage() *HistoryMemoryStorage {
	return &HistoryMemoryStorage{}
}

func (s *HistoryMemoryStorage) Load(ctx context.Context) (entity.SearchHistory, error) {
	_ = ctx

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.stored {
		return entity.SearchHistory{}, nil
	}
	out := make(entity.SearchHistory, len(s.history))
	copy(out, s.history)
	return out, nil
}

func (s *HistoryMemoryStorage) Save(ctx context.Context, history entity.SearchHistory) error {
	_ = ctx

	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = make(entity.SearchHistory, len(history))
	copy(s.history, history)
	s.stored = true
	return nil
}

func (s *HistoryMemoryStorage) Clear(ctx context.Context) error {
	_ = ctx

	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = nil
	s.stored = false
	return nil
}
