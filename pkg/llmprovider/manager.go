package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"time"

	"clainai/pkg/log"
)

// Manager walks the Registry in order and returns the first successful
// completion. Calls are sequential: a provider is only tried after the
// previous one has reported a soft failure.
type Manager struct {
	registry *Registry
	config   *Config
	logger   log.Logger
}

// Config defines configuration for the Provider Manager
type Config struct {
	// RetryAttempts is the number of calls per provider before moving on (min 1).
	RetryAttempts int
	RetryDelay    time.Duration
}

// NewManager creates a new Provider Manager over an immutable registry.
func NewManager(registry *Registry, config *Config, logger log.Logger) *Manager {
	if config == nil {
		config = &Config{RetryAttempts: 1}
	}
	return &Manager{
		registry: registry,
		config:   config,
		logger:   logger,
	}
}

// Registry exposes the registry the manager iterates.
func (m *Manager) Registry() *Registry {
	return m.registry
}

// Complete iterates through enabled providers in priority order.
// Provider failures never escape as panics; the returned error is one of
// ErrInvalidRequest, ErrNoProvidersConfigured, ErrRequestCanceled or
// ErrAllProvidersFailed.
func (m *Manager) Complete(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || len(req.Messages) == 0 {
		return nil, ErrInvalidRequest
	}

	entries := m.registry.Enabled()
	if len(entries) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	var lastErr error

	for i, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w after %d provider(s): %v", ErrRequestCanceled, i, err)
		}

		res := m.completeWithRetry(ctx, entry, req)
		if res.OK() {
			resp := res.Response
			if resp.ProviderName == "" {
				resp.ProviderName = entry.ID
			}
			if resp.ModelName == "" {
				resp.ModelName = entry.Provider.Model()
			}
			m.logSuccess(ctx, entry, resp)
			return resp, nil
		}

		m.logFailure(ctx, entry, res)
		lastErr = &ProviderError{Provider: entry.ID, Reason: res.Reason, Err: res.Err}
	}

	return nil, fmt.Errorf("%w: %v", ErrAllProvidersFailed, lastErr)
}

// completeWithRetry calls one provider with its own timeout per attempt and
// linear backoff between attempts.
func (m *Manager) completeWithRetry(ctx context.Context, entry Entry, req *Request) Result {
	attempts := m.config.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}

	var last Result
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			delay := time.Duration(attempt) * m.config.RetryDelay
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return SoftFail(ReasonCanceled, ctx.Err())
			}
		}

		last = m.call(ctx, entry, req)
		if last.OK() {
			return last
		}
		if ctx.Err() != nil {
			return SoftFail(ReasonCanceled, ctx.Err())
		}
	}

	return last
}

func (m *Manager) call(ctx context.Context, entry Entry, req *Request) Result {
	callCtx, cancel := context.WithTimeout(ctx, entry.Timeout)
	defer cancel()

	res := entry.Provider.Complete(callCtx, req)

	switch {
	case res.Outcome == OutcomeSuccess && (res.Response == nil || res.Response.Content == ""):
		return SoftFail(ReasonEmptyCompletion, errors.New("provider returned no completion text"))
	case res.Outcome == OutcomeSoftFailure && errors.Is(callCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil:
		return SoftFail(ReasonTimeout, fmt.Errorf("no response within %s: %w", entry.Timeout, res.Err))
	}
	return res
}

// logSuccess logs successful LLM generation with metrics
func (m *Manager) logSuccess(ctx context.Context, entry Entry, resp *Response) {
	inputTokens, outputTokens := 0, 0
	if resp.Usage != nil {
		inputTokens = resp.Usage.InputTokens
		outputTokens = resp.Usage.OutputTokens
	}
	m.logger.Info(ctx, "LLM generation successful",
		"provider", entry.ID,
		"model", resp.ModelName,
		"input_tokens", inputTokens,
		"output_tokens", outputTokens,
	)
}

// logFailure logs failed LLM generation attempts
func (m *Manager) logFailure(ctx context.Context, entry Entry, res Result) {
	errText := ""
	if res.Err != nil {
		errText = res.Err.Error()
	}
	m.logger.Warn(ctx, "LLM generation failed",
		"provider", entry.ID,
		"model", entry.Provider.Model(),
		"reason", string(res.Reason),
		"error", errText,
	)
}
