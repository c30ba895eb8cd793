package transport

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/qixiao/douyin-lite/internal/entity"
	"github.com/qixiao/douyin-lite/internal/service"
)

func (h *CommentHandler) GetThread(c *gin.Context) {
	videoID := c.Param("id")

	thread, err := h.service.GetThread(c.Request.Context(), videoID)
	if err != nil {
		if errors.Is(err, service.ErrVideoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, thread)
}

func (h *CommentHandler) CreateComment(c *gin.Context) {
	videoID := c.Param("id")

	var req entity.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Пустой текст отсекается до вызова стора
	if strings.TrimSpace(req.Content) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "content is required"})
		return
	}

	if err := h.service.AddComment(c.Request.Context(), videoID, req); err != nil {
		if errors.Is(err, service.ErrVideoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "comment added"})
}

func (h *CommentHandler) ToggleLike(c *gin.Context) {
	h.mutate(c, h.service.ToggleLike, "like toggled")
}

func (h *CommentHandler) HideComment(c *gin.Context) {
	h.mutate(c, h.service.HideComment, "comment hidden")
}

func (h *CommentHandler) ToggleReplies(c *gin.Context) {
	h.mutate(c, h.service.ToggleReplies, "replies toggled")
}

// mutate runs one of the per-comment operations. Unknown comment ids
// are a no-op by contract, so only an unknown video is an error.
func (h *CommentHandler) mutate(c *gin.Context, op func(ctx context.Context, videoID, commentID string) error, message string) {
	videoID := c.Param("id")
	commentID := c.Param("commentId")

	if err := op(c.Request.Context(), videoID, commentID); err != nil {
		if errors.Is(err, service.ErrVideoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": message})
}
