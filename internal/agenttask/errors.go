package agenttask

import (
	"errors"
	"fmt"
)

var (
	ErrTaskNotFound        = errors.New("task not found")
	ErrInvalidTaskType     = errors.New("invalid task type")
	ErrEmptyConversationID = errors.New("conversation id is required")
	ErrEmptyTopic          = errors.New("task topic is required")
)

// TaskCreationError is returned when a task could not be stored.
type TaskCreationError struct {
	ConversationID string
	Type           TaskType
	Err            error
}

func (e *TaskCreationError) Error() string {
	return fmt.Sprintf("create %s task for %s: %v", e.Type, e.ConversationID, e.Err)
}

func (e *TaskCreationError) Unwrap() error {
	return e.Err
}
