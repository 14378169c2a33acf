package usecase

import (
	"github.com/google/uuid"

	"clainai/internal/notification"
	"clainai/internal/notification/repository"
	"clainai/pkg/log"
)

type implUseCase struct {
	repo  repository.Repository
	l     log.Logger
	newID func() string
}

// New creates a new notification UseCase implementation.
func New(repo repository.Repository, l log.Logger) notification.UseCase {
	return &implUseCase{
		repo:  repo,
		l:     l,
		newID: uuid.NewString,
	}
}
