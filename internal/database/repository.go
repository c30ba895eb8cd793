package database

import (
	"context"

	"github.com/qixiao/douyin-lite/internal/entity"
)

// HistoryStorage persists the search history list as a single entry.
// Load must never fail on a corrupted entry: implementations purge the
// bad value and report an empty history instead.
type HistoryStorage interface {
	Load(ctx context.Context) (entity.SearchHistory, error)
	Save(ctx context.Context, history entity.SearchHistory) error
	Clear(ctx context.Context) error
}
