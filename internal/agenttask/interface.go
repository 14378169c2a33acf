package agenttask

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	CreateTask(ctx context.Context, input CreateTaskInput) (CreateTaskOutput, error)
	// ListPending returns pending tasks in creation order; an empty
	// conversation id lists every conversation's pending tasks.
	ListPending(ctx context.Context, conversationID string) ([]Task, error)
	// CompleteTask reports false, without changing anything, when the task
	// is not pending.
	CompleteTask(ctx context.Context, id, result string) (bool, error)
	Get(ctx context.Context, id string) (Task, error)

	// GetOwned and CompleteOwned only see tasks of conversationID; a task of
	// any other conversation is reported as ErrTaskNotFound.
	GetOwned(ctx context.Context, conversationID, id string) (Task, error)
	CompleteOwned(ctx context.Context, conversationID, id, result string) (bool, error)
}
