package usecase

import (
	"context"
	"sync/atomic"
	"time"

	"clainai/internal/agenttask"
	"clainai/internal/agenttask/repository"
	"clainai/internal/notification"
	"clainai/pkg/datemath"
	"clainai/pkg/gcalendar"
	"clainai/pkg/log"
	"clainai/pkg/pricefeed"
)

// ReminderScheduler puts a reminder on an external calendar.
type ReminderScheduler interface {
	CreateReminder(ctx context.Context, req gcalendar.ReminderRequest) (*gcalendar.Event, error)
}

// Options carries the optional collaborators used for creation side effects.
// A nil collaborator disables the matching side effect.
type Options struct {
	PriceFeed  pricefeed.IPriceFeed
	Calendar   ReminderScheduler
	DateParser *datemath.Parser
}

type implUseCase struct {
	repo          repository.Repository
	notifications notification.UseCase
	priceFeed     pricefeed.IPriceFeed
	calendar      ReminderScheduler
	dates         *datemath.Parser
	l             log.Logger
	now           func() time.Time
	nonce         atomic.Uint64
}

// New creates a new agent task UseCase implementation.
func New(repo repository.Repository, notifications notification.UseCase, l log.Logger, opts Options) agenttask.UseCase {
	dates := opts.DateParser
	if dates == nil {
		dates, _ = datemath.NewParser("UTC")
	}
	return &implUseCase{
		repo:          repo,
		notifications: notifications,
		priceFeed:     opts.PriceFeed,
		calendar:      opts.Calendar,
		dates:         dates,
		l:             l,
		now:           time.Now,
	}
}
