package notification

import "context"

// UseCase is the notification collaborator. The core only emits; reading and
// acknowledging belong to the UI.
type UseCase interface {
	Emit(ctx context.Context, input EmitInput) (Notification, error)
	List(ctx context.Context, input ListInput) (ListOutput, error)
	MarkRead(ctx context.Context, conversationID, id string) error
}
