package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"clainai/internal/agenttask"
	repo "clainai/internal/agenttask/repository"
)

const (
	idLength          = 16
	defaultReminderIn = time.Hour
	reminderPopup     = 10 * time.Minute
)

// CreateTask stores a pending task and runs its best-effort side effects.
func (uc *implUseCase) CreateTask(ctx context.Context, input agenttask.CreateTaskInput) (agenttask.CreateTaskOutput, error) {
	if input.ConversationID == "" {
		return agenttask.CreateTaskOutput{}, agenttask.ErrEmptyConversationID
	}
	if !input.Type.Valid() {
		return agenttask.CreateTaskOutput{}, fmt.Errorf("%w: %q", agenttask.ErrInvalidTaskType, input.Type)
	}
	input.Payload.Topic = strings.TrimSpace(input.Payload.Topic)
	if input.Payload.Topic == "" {
		return agenttask.CreateTaskOutput{}, agenttask.ErrEmptyTopic
	}

	now := uc.now()
	payload := input.Payload
	switch input.Type {
	case agenttask.TypePriceTracking:
		if payload.Condition == "" {
			payload.Condition = "any_change"
		}
	case agenttask.TypeResearch:
		if payload.Depth == "" {
			payload.Depth = "standard"
		}
	case agenttask.TypeReminder:
		if payload.RemindAt == "" {
			payload.RemindAt = uc.reminderTime(input, now).Format(time.RFC3339)
		}
	}

	description := input.Description
	if description == "" {
		description = defaultDescription(input.Type, payload.Topic)
	}

	task, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		ID:             uc.newID(input.ConversationID, input.Type, now),
		ConversationID: input.ConversationID,
		Type:           input.Type,
		Description:    description,
		Payload:        payload,
		CreatedAt:      now,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateTask CreateTask: %v", err)
		return agenttask.CreateTaskOutput{}, &agenttask.TaskCreationError{
			ConversationID: input.ConversationID,
			Type:           input.Type,
			Err:            err,
		}
	}
	uc.l.Info(ctx, "agent task created", "task_id", task.ID, "type", string(task.Type), "conversation_id", task.ConversationID)

	var quote string
	switch task.Type {
	case agenttask.TypePriceTracking:
		quote = uc.startPriceTracking(ctx, task)
	case agenttask.TypeResearch:
		uc.notify(ctx, task.ConversationID, "بدء البحث", fmt.Sprintf("بدأت البحث عن %s.", task.Payload.Topic))
	case agenttask.TypeReminder:
		uc.scheduleReminder(ctx, task)
	}

	return agenttask.CreateTaskOutput{
		Task:            task,
		Acknowledgement: agenttask.Acknowledge(task, quote),
	}, nil
}

func (uc *implUseCase) ListPending(ctx context.Context, conversationID string) ([]agenttask.Task, error) {
	tasks, err := uc.repo.ListPending(ctx, repo.ListPendingOptions{ConversationID: conversationID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListPending: %v", err)
		return nil, err
	}
	return tasks, nil
}

// CompleteTask transitions a pending task and notifies its conversation.
func (uc *implUseCase) CompleteTask(ctx context.Context, id, result string) (bool, error) {
	task, err := uc.Get(ctx, id)
	if err != nil {
		return false, err
	}
	return uc.complete(ctx, task, result)
}

func (uc *implUseCase) CompleteOwned(ctx context.Context, conversationID, id, result string) (bool, error) {
	task, err := uc.GetOwned(ctx, conversationID, id)
	if err != nil {
		return false, err
	}
	return uc.complete(ctx, task, result)
}

func (uc *implUseCase) complete(ctx context.Context, task agenttask.Task, result string) (bool, error) {
	id := task.ID
	ok, err := uc.repo.CompleteTask(ctx, repo.CompleteTaskOptions{
		ID:          id,
		Result:      result,
		CompletedAt: uc.now(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CompleteTask: %v", err)
		return false, err
	}
	if !ok {
		uc.l.Info(ctx, "agent task already completed", "task_id", id)
		return false, nil
	}

	msg := task.Description
	if result != "" {
		msg += "\n" + result
	}
	uc.notify(ctx, task.ConversationID, "اكتملت المهمة", msg)
	return true, nil
}

func (uc *implUseCase) Get(ctx context.Context, id string) (agenttask.Task, error) {
	task, err := uc.repo.GetTask(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Get: %v", err)
		return agenttask.Task{}, err
	}
	if task.ID == "" {
		return agenttask.Task{}, agenttask.ErrTaskNotFound
	}
	return task, nil
}

func (uc *implUseCase) GetOwned(ctx context.Context, conversationID, id string) (agenttask.Task, error) {
	if conversationID == "" {
		return agenttask.Task{}, agenttask.ErrEmptyConversationID
	}
	task, err := uc.Get(ctx, id)
	if err != nil {
		return agenttask.Task{}, err
	}
	if task.ConversationID != conversationID {
		uc.l.Warn(ctx, "agent task requested by another conversation", "task_id", id, "conversation_id", conversationID)
		return agenttask.Task{}, agenttask.ErrTaskNotFound
	}
	return task, nil
}

// newID hashes conversation, type, wall clock and a process-local nonce so
// two tasks created in the same nanosecond still differ.
func (uc *implUseCase) newID(conversationID string, t agenttask.TaskType, now time.Time) string {
	seed := fmt.Sprintf("%s|%s|%d|%d", conversationID, t, now.UnixNano(), uc.nonce.Add(1))
	sum := sha256.Sum256([]byte(seed))
	return hex.EncodeToString(sum[:])[:idLength]
}

func (uc *implUseCase) reminderTime(input agenttask.CreateTaskInput, now time.Time) time.Time {
	for _, text := range []string{input.Payload.Topic, input.Description} {
		if r, ok := uc.dates.Find(text, now); ok {
			return r.At
		}
	}
	return now.In(uc.dates.Location()).Add(defaultReminderIn)
}

func defaultDescription(t agenttask.TaskType, topic string) string {
	switch t {
	case agenttask.TypePriceTracking:
		return "تتبع سعر " + topic
	case agenttask.TypeResearch:
		return "البحث عن " + topic
	default:
		return "تذكير: " + topic
	}
}
