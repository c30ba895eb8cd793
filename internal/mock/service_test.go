package mock

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceLoadsFixtures(t *testing.T) {
	svc := NewService("data", 0)

	videos, total, err := svc.GetVideos(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, videos, 3)

	// crawler string counts parsed
	assert.Equal(t, 328900, videos[0].Stats.DiggCount)
	// title falls back to desc for the second video
	assert.Equal(t, "新手学吉他第30天打卡 #吉他 #音乐", videos[1].Title)
}

func TestServicePaging(t *testing.T) {
	ctx := context.Background()
	svc := NewService("data", 0)

	page1, total, err := svc.GetVideos(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, page1, 2)

	page2, _, err := svc.GetVideos(ctx, 2, 2)
	require.NoError(t, err)
	assert.Len(t, page2, 1)

	past, _, err := svc.GetVideos(ctx, 5, 2)
	require.NoError(t, err)
	assert.Empty(t, past)
}

func TestServiceGetComments(t *testing.T) {
	ctx := context.Background()
	svc := NewService("data", 0)

	comments, found, err := svc.GetComments(ctx, "7436039393194708233")
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, comments, 4)

	// reply linkage survives normalization
	assert.Equal(t, "7436100000000000001", comments[1].ParentCommentID)
	// empty parent id becomes the sentinel
	assert.Equal(t, "0", comments[3].ParentCommentID)

	_, found, err = svc.GetComments(ctx, "unknown")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestServiceDelayHonorsCancellation(t *testing.T) {
	svc := NewService("data", 200*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := svc.GetVideos(ctx, 1, 10)
	assert.ErrorIs(t, err, context.Canceled)
}
