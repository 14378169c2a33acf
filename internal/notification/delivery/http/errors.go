package http

import (
	"errors"
	"net/http"

	"clainai/internal/notification"
	pkgErrors "clainai/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, notification.ErrNotificationNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "notification not found")
	case errors.Is(err, notification.ErrInvalidInput):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
