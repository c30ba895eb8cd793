package service

import (
	"context"
	"errors"

	"github.com/qixiao/douyin-lite/internal/entity"
)

var (
	ErrVideoNotFound = errors.New("video not found")
	ErrInvalidInput  = errors.New("invalid input")
)

// Placeholder display data for locally created comments; a real system
// would take these from the signed-in user's profile.
const (
	defaultAuthorName = "anonymous"
	defaultAvatarURL  = "https://sf6-cdn-tos.douyinstatic.com/img/user-avatar/default~300x300.image"
)

// ContentSupplier hands out the video feed and the per-video comment
// seed. The mock package implements it over crawler JSON fixtures.
type ContentSupplier interface {
	GetVideos(ctx context.Context, page, pageSize int) ([]entity.VideoItem, int, error)
	GetComments(ctx context.Context, videoID string) ([]entity.Comment, bool, error)
}
