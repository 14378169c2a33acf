package repository

import "clainai/internal/conversation"

// AppendOptions holds parameters for appending one message.
type AppendOptions struct {
	ConversationID string
	Role           conversation.Role
	Content        string
	ModelUsed      string
	TokensUsed     int
}

// Order is the direction Read returns messages in.
type Order int

const (
	OldestFirst Order = iota
	NewestFirst
)

// ReadOptions selects messages of one conversation.
// With Limit > 0 the most recent Limit messages are returned whatever the
// Order; Limit <= 0 returns the whole conversation.
type ReadOptions struct {
	ConversationID string
	Limit          int
	Order          Order
}
