package repository

import (
	"context"

	"clainai/internal/notification"
)

type Repository interface {
	Create(ctx context.Context, opt CreateOptions) (notification.Notification, error)
	List(ctx context.Context, opt ListOptions) ([]notification.Notification, error)
	CountUnread(ctx context.Context, conversationID string) (int, error)
	// MarkRead returns false when no notification matched.
	MarkRead(ctx context.Context, conversationID, id string) (bool, error)
}
