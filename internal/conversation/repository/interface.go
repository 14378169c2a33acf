package repository

import (
	"context"

	"clainai/internal/conversation"
)

// Repository is the conversation store. Messages are append-only; the only
// destructive operation is Clear.
type Repository interface {
	Append(ctx context.Context, opt AppendOptions) (conversation.Message, error)
	Read(ctx context.Context, opt ReadOptions) ([]conversation.Message, error)
	Clear(ctx context.Context, conversationID string) error
}
