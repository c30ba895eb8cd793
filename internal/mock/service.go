package mock

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/qixiao/douyin-lite/internal/entity"
)

const (
	contentsFile = "search_contents_2025-11-20.json"
	commentsFile = "search_comments_2025-11-20.json"
)

// Service serves the fixture feed. It is constructed and owned by the
// caller; the loaded data is cached per instance, not in package state.
type Service struct {
	dataDir string
	delay   time.Duration

	mu     sync.Mutex
	videos []entity.VideoItem
}

func NewService(dataDir string, delay time.Duration) *Service {
	return &Service{
		dataDir: dataDir,
		delay:   delay,
	}
}

func (s *Service) load() ([]entity.VideoItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.videos != nil {
		return s.videos, nil
	}

	rawContents, err := os.ReadFile(filepath.Join(s.dataDir, contentsFile))
	if err != nil {
		return nil, err
	}
	rawComments, err := os.ReadFile(filepath.Join(s.dataDir, commentsFile))
	if err != nil {
		return nil, err
	}

	var contents []RawContent
	if err := json.Unmarshal(rawContents, &contents); err != nil {
		return nil, err
	}
	var comments []RawComment
	if err := json.Unmarshal(rawComments, &comments); err != nil {
		return nil, err
	}

	s.videos = BuildVideos(contents, comments)
	logrus.WithFields(logrus.Fields{
		"videos":   len(contents),
		"comments": len(comments),
	}).Info("mock data loaded")

	return s.videos, nil
}

// simulateDelay imitates network latency before answering, honoring
// context cancellation.
func (s *Service) simulateDelay(ctx context.Context) error {
	if s.delay <= 0 {
		return nil
	}
	select {
	case <-time.After(s.delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// GetVideos returns one page of the feed and the total video count.
// Pages past the end are empty, not an error.
func (s *Service) GetVideos(ctx context.Context, page, pageSize int) ([]entity.VideoItem, int, error) {
	if err := s.simulateDelay(ctx); err != nil {
		return nil, 0, err
	}

	videos, err := s.load()
	if err != nil {
		return nil, 0, err
	}

	total := len(videos)
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 10
	}

	start := (page - 1) * pageSize
	end := start + pageSize

	if start >= total {
		return []entity.VideoItem{}, total, nil
	}
	if end > total {
		end = total
	}

	return videos[start:end], total, nil
}

// GetComments returns the seed comment list of one video; found is
// false when the video id is unknown.
func (s *Service) GetComments(ctx context.Context, videoID string) ([]entity.Comment, bool, error) {
	if err := s.simulateDelay(ctx); err != nil {
		return nil, false, err
	}

	videos, err := s.load()
	if err != nil {
		return nil, false, err
	}

	for _, v := range videos {
		if v.ID == videoID {
			return v.Comments, true, nil
		}
	}
	return nil, false, nil
}

// ClearCache drops the cached feed so the next call reloads it.
func (s *Service) ClearCache() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.videos = nil
}
