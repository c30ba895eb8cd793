package transport

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qixiao/douyin-lite/internal/entity"
)

func (h *SearchHandler) GetHistory(c *gin.Context) {
	items := h.service.List()

	c.JSON(http.StatusOK, entity.HistoryResponse{
		Items: items,
		Total: len(items),
	})
}

func (h *SearchHandler) AddHistory(c *gin.Context) {
	var req entity.AddHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Пустой запрос молча игнорируется, как и в сторе
	h.service.Add(c.Request.Context(), req.Keyword)

	items := h.service.List()
	c.JSON(http.StatusOK, entity.HistoryResponse{
		Items: items,
		Total: len(items),
	})
}

func (h *SearchHandler) RemoveHistory(c *gin.Context) {
	h.service.Remove(c.Request.Context(), c.Param("id"))

	c.JSON(http.StatusOK, gin.H{"message": "history item removed"})
}

func (h *SearchHandler) ClearHistory(c *gin.Context) {
	h.service.Clear(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{"message": "history cleared"})
}
