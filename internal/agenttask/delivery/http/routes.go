package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps /tasks. Session middleware must already be applied to rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	tasks := rg.Group("/tasks")
	{
		tasks.GET("", h.ListPending)
		tasks.GET("/:id", h.Get)
		tasks.POST("/:id/complete", h.Complete)
	}
}
