package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/qixiao/douyin-lite/internal/database"
	"github.com/qixiao/douyin-lite/internal/entity"
)

const DefaultMaxHistory = 15

// HistoryService keeps the search history: most recently used first,
// keywords unique case-insensitively, capped at maxItems. The in-memory
// list is the source of truth for the session; every mutation is
// written through to durable storage best-effort, a failed write is
// logged and never rolls the mutation back.
type HistoryService struct {
	storage  database.HistoryStorage
	maxItems int

	mu    sync.Mutex
	items entity.SearchHistory
}

// NewHistoryService loads the persisted history. A storage read
// failure degrades to an empty history rather than failing startup.
func NewHistoryService(storage database.HistoryStorage, maxItems int) *HistoryService {
	if maxItems <= 0 {
		maxItems = DefaultMaxHistory
	}

	items, err := storage.Load(context.Background())
	if err != nil {
		logrus.Warnf("failed to load search history, starting empty: %v", err)
		items = entity.SearchHistory{}
	}
	if len(items) > maxItems {
		items = items[:maxItems]
	}

	return &HistoryService{
		storage:  storage,
		maxItems: maxItems,
		items:    items,
	}
}

// Add records a search keyword. Blank input after trimming is a
// silent no-op. A case-insensitive duplicate keeps its id and the
// originally stored casing; only its timestamp is refreshed before it
// moves to the front. The list is then truncated from the tail.
func (s *HistoryService) Add(ctx context.Context, keyword string) {
	trimmed := strings.TrimSpace(keyword)
	if trimmed == "" {
		return
	}

	s.mu.Lock()

	existing := -1
	for i, item := range s.items {
		if strings.EqualFold(item.Keyword, trimmed) {
			existing = i
			break
		}
	}

	var front entity.SearchHistoryItem
	if existing >= 0 {
		front = s.items[existing]
		front.Timestamp = time.Now().UnixMilli()
		s.items = append(s.items[:existing], s.items[existing+1:]...)
	} else {
		front = entity.SearchHistoryItem{
			ID:        uuid.New().String(),
			Keyword:   trimmed,
			Timestamp: time.Now().UnixMilli(),
		}
	}

	s.items = append(entity.SearchHistory{front}, s.items...)
	if len(s.items) > s.maxItems {
		s.items = s.items[:s.maxItems]
	}

	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(ctx, snapshot)
}

// Remove drops the entry with the given id, silently ignoring unknown
// ids.
func (s *HistoryService) Remove(ctx context.Context, id string) {
	s.mu.Lock()

	changed := false
	for i, item := range s.items {
		if item.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			changed = true
			break
		}
	}

	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	if changed {
		s.persist(ctx, snapshot)
	}
}

// Clear empties the history and removes the durable entry entirely.
func (s *HistoryService) Clear(ctx context.Context) {
	s.mu.Lock()
	s.items = entity.SearchHistory{}
	s.mu.Unlock()

	if err := s.storage.Clear(ctx); err != nil {
		logrus.Errorf("failed to clear search history storage: %v", err)
	}
}

// List returns a most-recently-used-first snapshot.
func (s *HistoryService) List() entity.SearchHistory {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *HistoryService) snapshotLocked() entity.SearchHistory {
	out := make(entity.SearchHistory, len(s.items))
	copy(out, s.items)
	return out
}

func (s *HistoryService) persist(ctx context.Context, snapshot entity.SearchHistory) {
	if err := s.storage.Save(ctx, snapshot); err != nil {
		logrus.Errorf("failed to persist search history: %v", err)
	}
}
