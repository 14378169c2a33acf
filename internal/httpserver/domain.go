package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	taskHTTP "clainai/internal/agenttask/delivery/http"
	chatHTTP "clainai/internal/chat/delivery/http"
	tgDelivery "clainai/internal/chat/delivery/telegram"
	notificationHTTP "clainai/internal/notification/delivery/http"
)

// setupChatDomain registers /api/chat, /api/conversation and /api/clear.
func (srv *HTTPServer) setupChatDomain(ctx context.Context, api *gin.RouterGroup) {
	h := chatHTTP.New(srv.l, srv.chatUC)
	chatHTTP.RegisterRoutes(api, h)
	srv.l.Infof(ctx, "Chat domain registered")
}

// setupTaskDomain registers /api/tasks.
func (srv *HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup) {
	if srv.taskUC == nil {
		return
	}
	h := taskHTTP.New(srv.l, srv.taskUC)
	taskHTTP.RegisterRoutes(api, h)
	srv.l.Infof(ctx, "Task domain registered")
}

// setupNotificationDomain registers /api/notifications.
func (srv *HTTPServer) setupNotificationDomain(ctx context.Context, api *gin.RouterGroup) {
	if srv.notificationUC == nil {
		return
	}
	h := notificationHTTP.New(srv.l, srv.notificationUC)
	notificationHTTP.RegisterRoutes(api, h)
	srv.l.Infof(ctx, "Notification domain registered")
}

func (srv *HTTPServer) setupTelegram(ctx context.Context) {
	tgDelivery.RegisterRoutes(&srv.gin.RouterGroup, srv.telegramHandler)
	srv.l.Infof(ctx, "Telegram webhook route registered at POST /webhook/telegram")
}
