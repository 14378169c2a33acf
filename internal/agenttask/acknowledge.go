package agenttask

import (
	"fmt"
	"strings"
	"time"
)

const reminderTimeLayout = "2006-01-02 15:04"

// Acknowledge is the reply sent to the user right after a task is created.
// quote is the current value for price tracking, "" when unknown.
func Acknowledge(t Task, quote string) string {
	topic := t.Payload.Topic
	switch t.Type {
	case TypePriceTracking:
		var b strings.Builder
		fmt.Fprintf(&b, "✅ تم إنشاء مهمة لتتبع سعر %s.", topic)
		if quote != "" {
			fmt.Fprintf(&b, "\nالسعر الحالي: %s", quote)
		}
		b.WriteString("\nسأرسل لك إشعاراً عند حدوث أي تغيير.")
		return b.String()
	case TypeResearch:
		return fmt.Sprintf("🔍 بدأت البحث عن %s.\nسأرسل لك النتائج في إشعار عند الانتهاء.", topic)
	case TypeReminder:
		if at, ok := t.RemindAt(); ok {
			return fmt.Sprintf("⏰ تم ضبط تذكير: %s\nالموعد: %s", topic, at.Format(reminderTimeLayout))
		}
		return fmt.Sprintf("⏰ تم ضبط تذكير: %s", topic)
	}
	return fmt.Sprintf("تم إنشاء المهمة %s.", t.ID)
}

// RemindAt parses the reminder time stored in the payload.
func (t Task) RemindAt() (time.Time, bool) {
	if t.Payload.RemindAt == "" {
		return time.Time{}, false
	}
	at, err := time.Parse(time.RFC3339, t.Payload.RemindAt)
	if err != nil {
		return time.Time{}, false
	}
	return at, true
}
