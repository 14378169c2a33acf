package chat

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyMessage        = errors.New("message is empty")
	ErrMessageTooLong      = errors.New("message is too long")
	ErrEmptyConversationID = errors.New("conversation id is required")
)

// StoreError reports a failed write to the conversation store. It is returned
// alongside a usable output.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
