package service

import (
	"context"
	"sync"

	"github.com/qixiao/douyin-lite/internal/entity"
)

// CommentService owns one Thread per video, seeded lazily from the
// content supplier the first time a video's comments are requested.
type CommentService struct {
	supplier ContentSupplier

	mu      sync.Mutex
	threads map[string]*Thread
}

func NewCommentService(supplier ContentSupplier) *CommentService {
	return &CommentService{
		supplier: supplier,
		threads:  make(map[string]*Thread),
	}
}

// Thread returns the session thread for the video, creating it from
// the supplier's comment list on first access.
func (s *CommentService) Thread(ctx context.Context, videoID string) (*Thread, error) {
	s.mu.Lock()
	if t, ok := s.threads[videoID]; ok {
		s.mu.Unlock()
		return t, nil
	}
	s.mu.Unlock()

	// Seed outside the lock: the supplier may simulate network delay.
	seed, found, err := s.supplier.GetComments(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrVideoNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.threads[videoID]; ok {
		return t, nil
	}
	t := NewThread(seed)
	s.threads[videoID] = t
	return t, nil
}

// GetThread assembles the render-ready view of a video's thread:
// visible top-level comments newest first, visible replies grouped by
// parent oldest first, and the expanded set. Hidden comments are
// filtered from both listings but stay in the underlying collection.
func (s *CommentService) GetThread(ctx context.Context, videoID string) (*entity.ThreadResponse, error) {
	t, err := s.Thread(ctx, videoID)
	if err != nil {
		return nil, err
	}

	top := make([]entity.CommentState, 0)
	for _, c := range t.TopLevel() {
		if !c.IsHidden {
			top = append(top, c)
		}
	}

	replies := make(map[string][]entity.CommentState)
	for parentID, group := range t.Replies() {
		visible := make([]entity.CommentState, 0, len(group))
		for _, r := range group {
			if !r.IsHidden {
				visible = append(visible, r)
			}
		}
		replies[parentID] = visible
	}

	return &entity.ThreadResponse{
		VideoID:  videoID,
		Comments: top,
		Replies:  replies,
		Expanded: t.Expanded(),
	}, nil
}

func (s *CommentService) AddComment(ctx context.Context, videoID string, req entity.CreateCommentRequest) error {
	t, err := s.Thread(ctx, videoID)
	if err != nil {
		return err
	}
	t.Add(req.Content, req.AuthorID)
	return nil
}

func (s *CommentService) ToggleLike(ctx context.Context, videoID, commentID string) error {
	t, err := s.Thread(ctx, videoID)
	if err != nil {
		return err
	}
	t.ToggleLike(commentID)
	return nil
}

func (s *CommentService) HideComment(ctx context.Context, videoID, commentID string) error {
	t, err := s.Thread(ctx, videoID)
	if err != nil {
		return err
	}
	t.Hide(commentID)
	return nil
}

func (s *CommentService) ToggleReplies(ctx context.Context, videoID, commentID string) error {
	t, err := s.Thread(ctx, videoID)
	if err != nil {
		return err
	}
	t.ToggleReplies(commentID)
	return nil
}
