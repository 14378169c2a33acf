package http

import (
	"time"

	"clainai/internal/chat"
	"clainai/internal/completion"
	"clainai/internal/conversation"
)

type chatReq struct {
	Message       string `json:"message"`
	UserName      string `json:"user_name"`
	LoginProvider string `json:"login_provider"`
}

func (r chatReq) toInput(conversationID string) chat.HandleMessageInput {
	return chat.HandleMessageInput{
		ConversationID: conversationID,
		Text:           r.Message,
		Options: completion.Options{
			UserName:      r.UserName,
			LoginProvider: r.LoginProvider,
		},
	}
}

type chatResp struct {
	Response      string   `json:"response"`
	Source        string   `json:"source"`
	Provenance    string   `json:"provenance"`
	Persisted     bool     `json:"persisted"`
	Intents       []string `json:"intents"`
	IsInstruction bool     `json:"is_instruction"`
}

func (h *handler) newChatResp(out chat.HandleMessageOutput) chatResp {
	intents := make([]string, len(out.Intents))
	for i, in := range out.Intents {
		intents[i] = string(in)
	}
	return chatResp{
		Response:      out.Reply,
		Source:        string(out.Source),
		Provenance:    out.Provenance,
		Persisted:     out.Persisted,
		Intents:       intents,
		IsInstruction: out.IsInstruction,
	}
}

type conversationReq struct {
	Limit int `form:"limit"`
}

type messageResp struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	ModelUsed string    `json:"model_used,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type conversationResp struct {
	Messages []messageResp `json:"messages"`
}

func newMessageResp(m conversation.Message) messageResp {
	return messageResp{
		Role:      string(m.Role),
		Content:   m.Content,
		ModelUsed: m.ModelUsed,
		Timestamp: m.Timestamp,
	}
}

func (h *handler) newConversationResp(out chat.HistoryOutput) conversationResp {
	items := make([]messageResp, len(out.Messages))
	for i, m := range out.Messages {
		items[i] = newMessageResp(m)
	}
	return conversationResp{Messages: items}
}

type clearResp struct {
	Message string      `json:"message"`
	Welcome messageResp `json:"welcome"`
}
