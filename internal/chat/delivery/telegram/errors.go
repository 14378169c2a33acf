package telegram

import (
	"errors"

	"clainai/internal/chat"
)

const genericErrorMessage = "⚠️ حدث خطأ مؤقت. يرجى المحاولة مرة أخرى."

// errorMessage returns a user-facing error string for the given error.
func errorMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, chat.ErrEmptyMessage):
		return "الرسالة فارغة"
	case errors.Is(err, chat.ErrMessageTooLong):
		return "الرسالة طويلة جداً، يرجى اختصارها."
	default:
		return genericErrorMessage
	}
}
