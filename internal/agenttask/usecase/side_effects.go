package usecase

import (
	"context"
	"fmt"

	"clainai/internal/agenttask"
	"clainai/internal/notification"
	"clainai/pkg/gcalendar"
)

// startPriceTracking returns the current value when the feed could read one.
func (uc *implUseCase) startPriceTracking(ctx context.Context, task agenttask.Task) string {
	var value string
	if uc.priceFeed != nil {
		q, err := uc.priceFeed.Lookup(ctx, task.Payload.Topic)
		if err != nil {
			uc.l.Warn(ctx, "price lookup failed", "task_id", task.ID, "topic", task.Payload.Topic, "error", err.Error())
		} else {
			value = q.Value
		}
	}

	msg := fmt.Sprintf("بدأت متابعة سعر %s.", task.Payload.Topic)
	if value != "" {
		msg += fmt.Sprintf(" السعر الحالي: %s", value)
	}
	uc.notify(ctx, task.ConversationID, "بدء تتبع السعر", msg)
	return value
}

func (uc *implUseCase) scheduleReminder(ctx context.Context, task agenttask.Task) {
	at, ok := task.RemindAt()
	msg := fmt.Sprintf("سأذكرك بـ %s.", task.Payload.Topic)
	if ok {
		msg = fmt.Sprintf("سأذكرك بـ %s في %s.", task.Payload.Topic, at.Format("2006-01-02 15:04"))
	}

	if uc.calendar != nil && ok {
		ev, err := uc.calendar.CreateReminder(ctx, gcalendar.ReminderRequest{
			Summary:     task.Payload.Topic,
			Description: task.Description,
			At:          at,
			PopupBefore: reminderPopup,
		})
		if err != nil {
			uc.l.Warn(ctx, "calendar reminder failed", "task_id", task.ID, "error", err.Error())
		} else if ev != nil && ev.HtmlLink != "" {
			msg += "\n" + ev.HtmlLink
		}
	}

	uc.notify(ctx, task.ConversationID, "تم ضبط تذكير", msg)
}

// notify never fails the caller; the task is already stored.
func (uc *implUseCase) notify(ctx context.Context, conversationID, title, message string) {
	if uc.notifications == nil {
		return
	}
	if _, err := uc.notifications.Emit(ctx, notification.EmitInput{
		ConversationID: conversationID,
		Title:          title,
		Message:        message,
	}); err != nil {
		uc.l.Warn(ctx, "notification emit failed", "conversation_id", conversationID, "title", title, "error", err.Error())
	}
}
