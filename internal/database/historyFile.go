package database

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/qixiao/douyin-lite/internal/entity"
)

// HistoryFileStorage keeps the history list in a JSON file, for
// deployments without Redis.
type HistoryFileStorage struct {
	path string
}

func NewHistoryFileStorage(path string) (*HistoryFileStorage, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return &HistoryFileStorage{path: path}, nil
}

func (s *HistoryFileStorage) Load(ctx context.Context) (entity.SearchHistory, error) {
	_ = ctx

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return entity.SearchHistory{}, nil
		}
		return nil, err
	}

	var history entity.SearchHistory
	if err := json.Unmarshal(data, &history); err != nil {
		logrus.WithField("path", s.path).Warnf("corrupted search history file, removing: %v", err)
		os.Remove(s.path)
		return entity.SearchHistory{}, nil
	}

	return history, nil
}

func (s *HistoryFileStorage) Save(ctx context.Context, history entity.SearchHistory) error {
	_ = ctx

	data, err := json.Marshal(history)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

func (s *HistoryFileStorage) Clear(ctx context.Context) error {
	_ = ctx

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
