package conversation

import "errors"

var (
	ErrEmptyConversationID = errors.New("conversation id is required")
	ErrInvalidRole         = errors.New("invalid message role")
)
