package http

import (
	"clainai/internal/notification"
	"clainai/pkg/log"
)

type handler struct {
	l  log.Logger
	uc notification.UseCase
}

// New creates a new HTTP handler for the notification domain.
func New(l log.Logger, uc notification.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
