package service

import (
	"context"

	"github.com/qixiao/douyin-lite/internal/entity"
)

type VideoService struct {
	supplier ContentSupplier
	pageSize int
}

func NewVideoService(supplier ContentSupplier, pageSize int) *VideoService {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &VideoService{
		supplier: supplier,
		pageSize: pageSize,
	}
}

func (s *VideoService) GetFeed(ctx context.Context, page int) (*entity.VideosResponse, error) {
	if page <= 0 {
		return nil, ErrInvalidInput
	}

	videos, total, err := s.supplier.GetVideos(ctx, page, s.pageSize)
	if err != nil {
		return nil, err
	}

	return &entity.VideosResponse{
		Videos:   videos,
		Total:    total,
		Page:     page,
		PageSize: s.pageSize,
	}, nil
}
