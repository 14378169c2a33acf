package http

import (
	"time"

	"clainai/internal/notification"
)

type listReq struct {
	UnreadOnly bool `form:"unread"`
	Limit      int  `form:"limit"`
}

func (r listReq) toInput(conversationID string) notification.ListInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return notification.ListInput{
		ConversationID: conversationID,
		UnreadOnly:     r.UnreadOnly,
		Limit:          limit,
	}
}

type notificationResp struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

type listResp struct {
	Notifications []notificationResp `json:"notifications"`
	Unread        int                `json:"unread"`
}

func (h *handler) newListResp(out notification.ListOutput) listResp {
	items := make([]notificationResp, len(out.Notifications))
	for i, n := range out.Notifications {
		items[i] = notificationResp{
			ID:        n.ID,
			Title:     n.Title,
			Message:   n.Message,
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
		}
	}
	return listResp{Notifications: items, Unread: out.Unread}
}
