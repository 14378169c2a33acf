package llmprovider

import (
	"context"
	"fmt"

	"clainai/config"
	"clainai/pkg/openrouter"
)

// FactoryOptions carries attribution headers sent to OpenAI-compatible endpoints.
type FactoryOptions struct {
	Referer string
	Title   string
}

// BuildRegistry creates the registry from config.LLMConfig.
// A provider is enabled only when it is configured enabled and has an API key;
// a provider whose client cannot be built is registered disabled rather than
// failing the whole service.
func BuildRegistry(ctx context.Context, cfg *config.LLMConfig, opts FactoryOptions) (*Registry, []error, error) {
	if cfg == nil {
		return nil, nil, fmt.Errorf("LLM config is nil")
	}

	var (
		entries  []Entry
		warnings []error
	)
	for _, p := range cfg.Providers {
		entry := Entry{
			ID:          p.ID,
			DisplayName: p.DisplayName,
			Priority:    p.Priority,
			Timeout:     p.Timeout,
		}

		if p.Enabled && p.APIKey != "" {
			provider, err := createProvider(ctx, p, opts)
			if err != nil {
				warnings = append(warnings, fmt.Errorf("provider %s (priority %d) disabled: %w", p.ID, p.Priority, err))
			} else {
				entry.Provider = provider
				entry.Enabled = true
			}
		} else if p.Enabled {
			warnings = append(warnings, fmt.Errorf("provider %s disabled: no API key", p.ID))
		}

		entries = append(entries, entry)
	}

	registry, err := NewRegistry(entries...)
	if err != nil {
		return nil, warnings, err
	}
	return registry, warnings, nil
}

// createProvider creates a concrete provider instance based on the provider config
func createProvider(ctx context.Context, cfg config.ProviderConfig, opts FactoryOptions) (Provider, error) {
	switch cfg.Kind {
	case config.KindOpenAI, "":
		client, err := openrouter.New(openrouter.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
			Referer: opts.Referer,
			Title:   opts.Title,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create openai-compatible client: %w", err)
		}
		return NewOpenAICompatibleAdapter(cfg.ID, cfg.Model, client), nil

	case config.KindGemini:
		return NewGeminiClient(ctx, cfg.ID, cfg.APIKey, cfg.Model)

	default:
		return nil, fmt.Errorf("unknown provider kind: %s", cfg.Kind)
	}
}
