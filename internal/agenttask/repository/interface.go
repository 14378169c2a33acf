package repository

import (
	"context"

	"clainai/internal/agenttask"
)

type Repository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (agenttask.Task, error)
	// GetTask returns a zero Task (ID == "") when not found.
	GetTask(ctx context.Context, id string) (agenttask.Task, error)
	ListPending(ctx context.Context, opt ListPendingOptions) ([]agenttask.Task, error)
	// CompleteTask transitions a pending task; false when it was not pending.
	CompleteTask(ctx context.Context, opt CompleteTaskOptions) (bool, error)
}
