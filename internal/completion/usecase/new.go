package usecase

import (
	"math/rand/v2"

	"clainai/internal/completion"
	"clainai/internal/shortcut"
	"clainai/pkg/llmprovider"
	"clainai/pkg/log"
)

// Config tunes prompt assembly and the fallback floor.
type Config struct {
	Identity       shortcut.Identity
	HistoryWindow  int
	MaxTokens      int
	Temperature    float64
	GenericReplies []string
}

type implUseCase struct {
	l        log.Logger
	manager  *llmprovider.Manager
	cfg      Config
	fallback *fallback
}

// New returns ErrNoCompletionSource when the manager has no enabled provider
// and cfg carries no generic fallback reply.
func New(l log.Logger, manager *llmprovider.Manager, cfg Config) (completion.UseCase, error) {
	enabled := 0
	if manager != nil && manager.Registry() != nil {
		enabled = manager.Registry().EnabledCount()
	}
	if enabled == 0 && len(cfg.GenericReplies) == 0 {
		return nil, completion.ErrNoCompletionSource
	}
	if cfg.HistoryWindow < 0 {
		cfg.HistoryWindow = 0
	}

	return &implUseCase{
		l:        l,
		manager:  manager,
		cfg:      cfg,
		fallback: newFallback(cfg.GenericReplies, rand.IntN),
	}, nil
}
