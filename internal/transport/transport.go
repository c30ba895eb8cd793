package transport

import (
	"github.com/gin-gonic/gin"

	"github.com/qixiao/douyin-lite/internal/transport/middleware"
)

func InitRoutes(videoHandler *VideoHandler, commentHandler *CommentHandler, searchHandler *SearchHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.Logger())

	api := router.Group("/api")
	{
		videos := api.Group("/videos")
		{
			videos.GET("", videoHandler.GetVideos)
			videos.GET("/:id/comments", commentHandler.GetThread)
			videos.POST("/:id/comments", commentHandler.CreateComment)
			videos.POST("/:id/comments/:commentId/like", commentHandler.ToggleLike)
			videos.POST("/:id/comments/:commentId/hide", commentHandler.HideComment)
			videos.POST("/:id/comments/:commentId/replies/toggle", commentHandler.ToggleReplies)
		}

		search := api.Group("/search")
		{
			search.GET("/history", searchHandler.GetHistory)
			search.POST("/history", searchHandler.AddHistory)
			search.DELETE("/history", searchHandler.ClearHistory)
			search.DELETE("/history/:id", searchHandler.RemoveHistory)
		}
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "douyin-lite",
		})
	})

	return router
}
