package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qixiao/douyin-lite/internal/entity"
)

// stubSupplier serves a fixed comment seed for one video id.
type stubSupplier struct {
	videoID  string
	comments []entity.Comment
}

func (s *stubSupplier) GetVideos(ctx context.Context, page, pageSize int) ([]entity.VideoItem, int, error) {
	return []entity.VideoItem{{ID: s.videoID, Comments: s.comments}}, 1, nil
}

func (s *stubSupplier) GetComments(ctx context.Context, videoID string) ([]entity.Comment, bool, error) {
	if videoID != s.videoID {
		return nil, false, nil
	}
	return s.comments, true, nil
}

func newTestCommentService() *CommentService {
	return NewCommentService(&stubSupplier{
		videoID:  "v1",
		comments: demoComments(1_731_900_000_000),
	})
}

func TestCommentServiceUnknownVideo(t *testing.T) {
	svc := newTestCommentService()

	_, err := svc.GetThread(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrVideoNotFound)
}

func TestCommentServiceThreadIsSeededOnce(t *testing.T) {
	ctx := context.Background()
	svc := newTestCommentService()

	require.NoError(t, svc.AddComment(ctx, "v1", entity.CreateCommentRequest{Content: "new", AuthorID: "u1"}))

	// the optimistic insert must survive a second lookup
	resp, err := svc.GetThread(ctx, "v1")
	require.NoError(t, err)
	require.Len(t, resp.Comments, 6)
	assert.Equal(t, "new", resp.Comments[0].Content)
}

func TestCommentServiceHiddenFilteredFromView(t *testing.T) {
	ctx := context.Background()
	svc := newTestCommentService()

	require.NoError(t, svc.HideComment(ctx, "v1", "8"))
	require.NoError(t, svc.HideComment(ctx, "v1", "2"))

	resp, err := svc.GetThread(ctx, "v1")
	require.NoError(t, err)

	// hidden top-level comment gone from the listing
	require.Len(t, resp.Comments, 4)
	for _, c := range resp.Comments {
		assert.NotEqual(t, "8", c.ID)
	}

	// hidden reply gone from its group, siblings intact
	require.Len(t, resp.Replies["1"], 2)
	assert.Equal(t, "3", resp.Replies["1"][0].ID)

	// the underlying collection still holds everything
	thread, err := svc.Thread(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, 10, thread.Len())
}

func TestCommentServiceToggleRepliesInView(t *testing.T) {
	ctx := context.Background()
	svc := newTestCommentService()

	require.NoError(t, svc.ToggleReplies(ctx, "v1", "1"))

	resp, err := svc.GetThread(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, resp.Expanded)
}
