package usecase

import (
	"context"

	"clainai/internal/completion"
	"clainai/pkg/llmprovider"
)

// Complete asks the provider chain and falls back to a local reply when every
// provider soft-fails or none is enabled.
func (uc *implUseCase) Complete(ctx context.Context, input completion.CompleteInput) completion.CompleteOutput {
	req := &llmprovider.Request{
		Messages:    uc.buildMessages(input),
		MaxTokens:   uc.cfg.MaxTokens,
		Temperature: uc.cfg.Temperature,
	}

	if uc.manager != nil {
		resp, err := uc.manager.Complete(ctx, req)
		if err == nil {
			out := completion.CompleteOutput{
				Reply:        resp.Content,
				ProviderUsed: resp.ProviderName,
				Model:        resp.ModelName,
			}
			if resp.Usage != nil {
				out.TokensUsed = resp.Usage.TotalTokens
			}
			return out
		}
		uc.l.Warnf(ctx, "uc.Complete: provider chain exhausted, using fallback: %v", err)
	}

	return completion.CompleteOutput{
		Reply:        uc.fallback.reply(input.Message),
		ProviderUsed: completion.ProviderFallback,
		Model:        completion.ProviderFallback,
	}
}
