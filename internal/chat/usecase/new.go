package usecase

import (
	"clainai/internal/agenttask"
	"clainai/internal/chat"
	"clainai/internal/completion"
	"clainai/internal/conversation/repository"
	"clainai/internal/shortcut"
	"clainai/pkg/log"
)

// Config holds the conversation limits.
type Config struct {
	Identity         shortcut.Identity
	HistoryWindow    int
	MaxMessageLength int
	ConversationPage int
}

type implUseCase struct {
	l          log.Logger
	repo       repository.Repository
	shortcuts  *shortcut.Engine
	tasks      agenttask.UseCase
	completion completion.UseCase
	cfg        Config
}

// New creates a new chat UseCase.
func New(
	l log.Logger,
	repo repository.Repository,
	shortcuts *shortcut.Engine,
	tasks agenttask.UseCase,
	completion completion.UseCase,
	cfg Config,
) chat.UseCase {
	if cfg.ConversationPage <= 0 {
		cfg.ConversationPage = defaultConversationPage
	}
	return &implUseCase{
		l:          l,
		repo:       repo,
		shortcuts:  shortcuts,
		tasks:      tasks,
		completion: completion,
		cfg:        cfg,
	}
}
