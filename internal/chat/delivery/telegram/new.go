package telegram

import (
	"context"
	"sync"

	"github.com/gin-gonic/gin"

	"clainai/internal/chat"
	"clainai/pkg/log"
)

// WebhookPath is where Telegram posts updates.
const WebhookPath = "/webhook/telegram"

// Sender is the part of the Bot API the handler talks to.
type Sender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
	SendTyping(ctx context.Context, chatID int64) error
}

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
	// Wait blocks until every update accepted so far has been answered.
	Wait()
}

type handler struct {
	l      log.Logger
	uc     chat.UseCase
	bot    Sender
	secret string
	wg     sync.WaitGroup
}

// New creates a new Telegram delivery handler. An empty secret disables the
// secret token check.
func New(l log.Logger, uc chat.UseCase, bot Sender, secret string) Handler {
	return &handler{l: l, uc: uc, bot: bot, secret: secret}
}

// RegisterRoutes maps the webhook endpoint.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.POST(WebhookPath, h.HandleWebhook)
}
