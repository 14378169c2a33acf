package repository

type CreateOptions struct {
	ID             string
	ConversationID string
	Title          string
	Message        string
}

// ListOptions returns newest first.
type ListOptions struct {
	ConversationID string
	UnreadOnly     bool
	Limit          int
}
