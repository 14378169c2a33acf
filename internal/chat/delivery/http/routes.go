package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the chat endpoints. Session middleware must already be
// applied to rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.POST("/chat", h.Chat)
	rg.GET("/conversation", h.Conversation)
	rg.POST("/clear", h.Clear)
}
