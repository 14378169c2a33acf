package chat

import (
	"context"

	"clainai/internal/conversation"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// HandleMessage produces a reply for every valid message. When storing the
	// exchange fails the reply is still returned, with Persisted=false and a
	// *StoreError.
	HandleMessage(ctx context.Context, input HandleMessageInput) (HandleMessageOutput, error)
	History(ctx context.Context, input HistoryInput) (HistoryOutput, error)
	// ClearConversation deletes the history and stores a fresh welcome message.
	ClearConversation(ctx context.Context, conversationID string) (conversation.Message, error)
}
