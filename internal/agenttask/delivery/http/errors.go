package http

import (
	"errors"
	"net/http"

	"clainai/internal/agenttask"
	pkgErrors "clainai/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, agenttask.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "task not found")
	case errors.Is(err, agenttask.ErrEmptyConversationID):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "session id is required")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
