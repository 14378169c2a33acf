package repository

import (
	"time"

	"clainai/internal/agenttask"
)

type CreateTaskOptions struct {
	ID             string
	ConversationID string
	Type           agenttask.TaskType
	Description    string
	Payload        agenttask.Payload
	CreatedAt      time.Time
}

type ListPendingOptions struct {
	ConversationID string // empty lists all conversations
	Limit          int
}

type CompleteTaskOptions struct {
	ID          string
	Result      string
	CompletedAt time.Time
}
