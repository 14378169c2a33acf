package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clainai/internal/agenttask"
	repo "clainai/internal/agenttask/repository"
	"clainai/pkg/log"
	"clainai/pkg/sqlitedb"
)

func newTestRepo(t *testing.T) *implRepository {
	t.Helper()
	db, err := sqlitedb.Open(context.Background(), sqlitedb.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(db, log.NewNop()).(*implRepository)
}

func TestCreateAndGetTask(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	created, err := r.CreateTask(ctx, repo.CreateTaskOptions{
		ID:             "t1",
		ConversationID: "s1",
		Type:           agenttask.TypePriceTracking,
		Description:    "تتبع سعر الذهب",
		Payload:        agenttask.Payload{Topic: "الذهب", Condition: "any_change"},
		CreatedAt:      at,
	})
	require.NoError(t, err)
	assert.Equal(t, agenttask.StatusPending, created.Status)

	got, err := r.GetTask(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, created, got)
	assert.Nil(t, got.CompletedAt)

	missing, err := r.GetTask(ctx, "nope")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)
}

func TestCreateTask_DuplicateID(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	opt := repo.CreateTaskOptions{ID: "dup", ConversationID: "s1", Type: agenttask.TypeResearch}

	_, err := r.CreateTask(ctx, opt)
	require.NoError(t, err)
	_, err = r.CreateTask(ctx, opt)
	assert.ErrorIs(t, err, repo.ErrFailedToInsert)
}

func TestListPending(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	for i, id := range []string{"a", "b", "c"} {
		_, err := r.CreateTask(ctx, repo.CreateTaskOptions{
			ID:             id,
			ConversationID: "s1",
			Type:           agenttask.TypeResearch,
			CreatedAt:      base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}
	_, err := r.CreateTask(ctx, repo.CreateTaskOptions{ID: "x", ConversationID: "s2", Type: agenttask.TypeReminder, CreatedAt: base})
	require.NoError(t, err)

	ok, err := r.CompleteTask(ctx, repo.CompleteTaskOptions{ID: "b", Result: "done"})
	require.NoError(t, err)
	require.True(t, ok)

	pending, err := r.ListPending(ctx, repo.ListPendingOptions{ConversationID: "s1"})
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, "a", pending[0].ID)
	assert.Equal(t, "c", pending[1].ID)

	all, err := r.ListPending(ctx, repo.ListPendingOptions{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestCompleteTask_OnlyOnce(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	first := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	_, err := r.CreateTask(ctx, repo.CreateTaskOptions{ID: "t1", ConversationID: "s1", Type: agenttask.TypeResearch})
	require.NoError(t, err)

	ok, err := r.CompleteTask(ctx, repo.CompleteTaskOptions{ID: "t1", Result: "first", CompletedAt: first})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.CompleteTask(ctx, repo.CompleteTaskOptions{ID: "t1", Result: "second", CompletedAt: first.Add(time.Hour)})
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := r.GetTask(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, agenttask.StatusCompleted, got.Status)
	assert.Equal(t, "first", got.Result)
	require.NotNil(t, got.CompletedAt)
	assert.True(t, got.CompletedAt.Equal(first))

	ok, err = r.CompleteTask(ctx, repo.CompleteTaskOptions{ID: "missing"})
	require.NoError(t, err)
	assert.False(t, ok)
}
