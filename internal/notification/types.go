package notification

import "time"

// Notification is an asynchronous message addressed to a conversation.
type Notification struct {
	ID             string
	ConversationID string
	Title          string
	Message        string
	Read           bool
	CreatedAt      time.Time
}

type EmitInput struct {
	ConversationID string
	Title          string
	Message        string
}

type ListInput struct {
	ConversationID string
	UnreadOnly     bool
	Limit          int
}

type ListOutput struct {
	Notifications []Notification
	Unread        int
}
