package http

import (
	"clainai/internal/chat"
	"clainai/pkg/log"
)

type handler struct {
	l  log.Logger
	uc chat.UseCase
}

// New creates a new HTTP handler for chat.
func New(l log.Logger, uc chat.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
