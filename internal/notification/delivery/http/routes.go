package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps /notifications. Session middleware must already be applied to rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	notifications := rg.Group("/notifications")
	{
		notifications.GET("", h.List)
		notifications.POST("/:id/read", h.MarkRead)
	}
}
