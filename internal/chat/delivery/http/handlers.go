package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"clainai/internal/chat"
	"clainai/internal/middleware"
	"clainai/pkg/response"
)

// Chat godoc
// @Summary     Send a chat message
// @Description Answers from a fixed rule, delegates to an agent task, or asks the provider chain.
// @Description persisted=false means the reply was produced but could not be stored.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Message"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.HandleMessage(ctx, req.toInput(middleware.SessionID(c)))
	if err != nil {
		var storeErr *chat.StoreError
		if !errors.As(err, &storeErr) {
			response.Error(c, h.mapError(err), nil)
			return
		}
		h.l.Warnf(ctx, "uc.HandleMessage: replying without history: %v", err)
	}

	response.OK(c, h.newChatResp(output))
}

// Conversation godoc
// @Summary     Conversation history
// @Description Returns the latest messages of the caller's conversation, oldest first.
// @Tags        Chat
// @Produce     json
// @Param       limit query int false "Number of messages (default: 20)"
// @Success     200 {object} conversationResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/conversation [GET]
func (h *handler) Conversation(c *gin.Context) {
	ctx := c.Request.Context()

	var req conversationReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.History(ctx, chat.HistoryInput{ConversationID: middleware.SessionID(c), Limit: req.Limit})
	if err != nil {
		h.l.Errorf(ctx, "uc.History: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newConversationResp(output))
}

// Clear godoc
// @Summary     Clear the conversation
// @Description Deletes the caller's history and stores a welcome message.
// @Tags        Chat
// @Produce     json
// @Success     200 {object} clearResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/clear [POST]
func (h *handler) Clear(c *gin.Context) {
	ctx := c.Request.Context()

	welcome, err := h.uc.ClearConversation(ctx, middleware.SessionID(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.ClearConversation: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, clearResp{
		Message: "تم مسح المحادثة بنجاح",
		Welcome: newMessageResp(welcome),
	})
}
