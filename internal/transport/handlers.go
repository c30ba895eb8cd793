package transport

import (
	"github.com/qixiao/douyin-lite/internal/service"
)

type VideoHandler struct {
	service *service.VideoService
}

func NewVideoHandler(service *service.VideoService) *VideoHandler {
	return &VideoHandler{
		service: service,
	}
}

type CommentHandler struct {
	service *service.CommentService
}

func NewCommentHandler(service *service.CommentService) *CommentHandler {
	return &CommentHandler{
		service: service,
	}
}

type SearchHandler struct {
	service *service.HistoryService
}

func NewSearchHandler(service *service.HistoryService) *SearchHandler {
	return &SearchHandler{
		service: service,
	}
}
