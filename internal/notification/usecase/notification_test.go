package usecase

import (
	"context"
	"errors"
	"testing"

	"clainai/internal/notification"
	repo "clainai/internal/notification/repository"
	"clainai/pkg/log"
)

type fakeRepo struct {
	created   []repo.CreateOptions
	createErr error
	marked    bool
}

func (f *fakeRepo) Create(ctx context.Context, opt repo.CreateOptions) (notification.Notification, error) {
	if f.createErr != nil {
		return notification.Notification{}, f.createErr
	}
	f.created = append(f.created, opt)
	return notification.Notification{ID: opt.ID, ConversationID: opt.ConversationID, Title: opt.Title, Message: opt.Message}, nil
}

func (f *fakeRepo) List(ctx context.Context, opt repo.ListOptions) ([]notification.Notification, error) {
	return nil, nil
}

func (f *fakeRepo) CountUnread(ctx context.Context, conversationID string) (int, error) {
	return len(f.created), nil
}

func (f *fakeRepo) MarkRead(ctx context.Context, conversationID, id string) (bool, error) {
	return f.marked, nil
}

func TestEmit(t *testing.T) {
	r := &fakeRepo{}
	uc := New(r, log.NewNop())

	n, err := uc.Emit(context.Background(), notification.EmitInput{ConversationID: "s1", Title: "hello", Message: "body"})
	if err != nil {
		t.Fatalf("Emit() error = %v", err)
	}
	if n.ID == "" {
		t.Error("Emit() should assign an id")
	}
	if len(r.created) != 1 {
		t.Errorf("created %d notifications, want 1", len(r.created))
	}
}

func TestEmit_Validation(t *testing.T) {
	uc := New(&fakeRepo{}, log.NewNop())

	for _, in := range []notification.EmitInput{
		{Title: "no conversation"},
		{ConversationID: "s1", Title: "   "},
	} {
		if _, err := uc.Emit(context.Background(), in); !errors.Is(err, notification.ErrInvalidInput) {
			t.Errorf("Emit(%+v) error = %v, want ErrInvalidInput", in, err)
		}
	}
}

func TestEmit_StoreError(t *testing.T) {
	uc := New(&fakeRepo{createErr: repo.ErrFailedToInsert}, log.NewNop())

	_, err := uc.Emit(context.Background(), notification.EmitInput{ConversationID: "s1", Title: "t"})
	if !errors.Is(err, repo.ErrFailedToInsert) {
		t.Errorf("error = %v, want ErrFailedToInsert", err)
	}
}

func TestMarkRead_NotFound(t *testing.T) {
	uc := New(&fakeRepo{marked: false}, log.NewNop())

	if err := uc.MarkRead(context.Background(), "s1", "missing"); !errors.Is(err, notification.ErrNotificationNotFound) {
		t.Errorf("error = %v, want ErrNotificationNotFound", err)
	}
}
