package http

import (
	"errors"
	"net/http"

	"clainai/internal/chat"
	pkgErrors "clainai/pkg/errors"
)

var (
	errEmptyMessage   = pkgErrors.NewHTTPError(http.StatusBadRequest, "الرسالة فارغة")
	errMessageTooLong = pkgErrors.NewHTTPError(http.StatusBadRequest, "الرسالة طويلة جداً")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, chat.ErrEmptyMessage):
		return errEmptyMessage
	case errors.Is(err, chat.ErrMessageTooLong):
		return errMessageTooLong
	case errors.Is(err, chat.ErrEmptyConversationID):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
