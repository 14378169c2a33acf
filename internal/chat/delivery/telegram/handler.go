package telegram

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"clainai/internal/chat"
	"clainai/internal/completion"
	"clainai/pkg/log"
	"clainai/pkg/response"
	pkgTelegram "clainai/pkg/telegram"
)

const (
	loginProvider  = "telegram"
	processTimeout = 3 * time.Minute

	startMessage = "👋 أهلاً بك في ClainAI!\n\nاسألني أي شيء، أو اطلب مني:\n• تابع سعر الذهب\n• ابحث عن الطاقة المتجددة\n• ذكرني بالاجتماع غداً\n\n/clear لمسح المحادثة"
	helpMessage  = "*طريقة الاستخدام:*\n\nاكتب سؤالك مباشرة وسأجيبك.\nلمتابعة سعر: `تابع سعر <الاسم>`\nللبحث: `ابحث عن <الموضوع>`\nللتذكير: `ذكرني ب<الموضوع>`\n\n/clear لمسح المحادثة"
)

// ConversationID is the conversation key of a Telegram chat.
func ConversationID(chatID int64) string {
	return fmt.Sprintf("tg:%d", chatID)
}

// HandleWebhook acknowledges the update immediately and answers it in the
// background.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if h.secret != "" {
		got := c.GetHeader(pkgTelegram.HeaderSecretToken)
		if subtle.ConstantTimeCompare([]byte(got), []byte(h.secret)) != 1 {
			response.Unauthorized(c)
			return
		}
	}

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		response.Error(c, err, nil)
		return
	}

	if update.Message == nil || update.Message.Chat == nil {
		response.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message
	requestID := log.RequestID(ctx)

	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		bgCtx, cancel := context.WithTimeout(log.WithRequestID(context.Background(), requestID), processTimeout)
		defer cancel()

		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: processMessage failed: %v", err)
		}
	}()

	response.OK(c, map[string]string{"status": "accepted"})
}

func (h *handler) Wait() {
	h.wg.Wait()
}

func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return nil
	}
	chatID := msg.Chat.ID
	conversationID := ConversationID(chatID)

	switch command(text) {
	case "/start":
		return h.bot.SendMessage(ctx, chatID, startMessage)
	case "/help":
		return h.bot.SendMessage(ctx, chatID, helpMessage)
	case "/clear":
		welcome, err := h.uc.ClearConversation(ctx, conversationID)
		if err != nil {
			_ = h.bot.SendMessage(ctx, chatID, errorMessage(err))
			return err
		}
		return h.bot.SendMessage(ctx, chatID, welcome.Content)
	}

	if err := h.bot.SendTyping(ctx, chatID); err != nil {
		h.l.Warnf(ctx, "telegram handler: failed to send typing action: %v", err)
	}

	out, err := h.uc.HandleMessage(ctx, chat.HandleMessageInput{
		ConversationID: conversationID,
		Text:           text,
		Options: completion.Options{
			UserName:      msg.From.DisplayName(),
			LoginProvider: loginProvider,
		},
	})
	if err != nil {
		var storeErr *chat.StoreError
		if !errors.As(err, &storeErr) {
			_ = h.bot.SendMessage(ctx, chatID, errorMessage(err))
			return err
		}
		h.l.Warnf(ctx, "telegram handler: replying without history: %v", err)
	}

	return h.bot.SendMessage(ctx, chatID, out.Reply)
}

// command returns "/name" for "/name@BotName args", or "".
func command(text string) string {
	if !strings.HasPrefix(text, "/") {
		return ""
	}
	name := strings.Fields(text)[0]
	if i := strings.IndexByte(name, '@'); i >= 0 {
		name = name[:i]
	}
	return strings.ToLower(name)
}
