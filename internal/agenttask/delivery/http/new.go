package http

import (
	"clainai/internal/agenttask"
	"clainai/pkg/log"
)

type handler struct {
	l  log.Logger
	uc agenttask.UseCase
}

// New creates a new HTTP handler for agent tasks.
func New(l log.Logger, uc agenttask.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
