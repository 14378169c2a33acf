package usecase

import (
	"context"
	"strings"

	"clainai/internal/notification"
	repo "clainai/internal/notification/repository"
)

const defaultListLimit = 50

// Emit stores a new unread notification.
func (uc *implUseCase) Emit(ctx context.Context, input notification.EmitInput) (notification.Notification, error) {
	if input.ConversationID == "" || strings.TrimSpace(input.Title) == "" {
		return notification.Notification{}, notification.ErrInvalidInput
	}

	n, err := uc.repo.Create(ctx, repo.CreateOptions{
		ID:             uc.newID(),
		ConversationID: input.ConversationID,
		Title:          input.Title,
		Message:        input.Message,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Emit Create: %v", err)
		return notification.Notification{}, err
	}

	uc.l.Info(ctx, "notification emitted", "conversation_id", n.ConversationID, "notification_id", n.ID, "title", n.Title)
	return n, nil
}

// List returns notifications newest first plus the unread count.
func (uc *implUseCase) List(ctx context.Context, input notification.ListInput) (notification.ListOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	items, err := uc.repo.List(ctx, repo.ListOptions{
		ConversationID: input.ConversationID,
		UnreadOnly:     input.UnreadOnly,
		Limit:          limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List List: %v", err)
		return notification.ListOutput{}, err
	}

	unread, err := uc.repo.CountUnread(ctx, input.ConversationID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List CountUnread: %v", err)
		return notification.ListOutput{}, err
	}

	return notification.ListOutput{Notifications: items, Unread: unread}, nil
}

// MarkRead acknowledges one notification of the conversation.
func (uc *implUseCase) MarkRead(ctx context.Context, conversationID, id string) error {
	ok, err := uc.repo.MarkRead(ctx, conversationID, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.MarkRead: %v", err)
		return err
	}
	if !ok {
		return notification.ErrNotificationNotFound
	}
	return nil
}
