package llmprovider

import (
	"context"
	"errors"
	"fmt"

	"clainai/pkg/openrouter"
)

// OpenAICompatibleAdapter adapts an OpenAI-style chat client (OpenRouter,
// DeepSeek, Groq, Qwen compatible mode) to the Provider interface.
type OpenAICompatibleAdapter struct {
	id     string
	model  string
	client openrouter.IOpenRouter
}

// NewOpenAICompatibleAdapter binds a registry id and model to a client.
// An empty model uses the client's default.
func NewOpenAICompatibleAdapter(id, model string, client openrouter.IOpenRouter) *OpenAICompatibleAdapter {
	if model == "" {
		model = client.Model()
	}
	return &OpenAICompatibleAdapter{id: id, model: model, client: client}
}

// Complete implements Provider
func (a *OpenAICompatibleAdapter) Complete(ctx context.Context, req *Request) Result {
	chatReq := &openrouter.ChatRequest{
		Model:       a.model,
		Messages:    make([]openrouter.ChatMessage, 0, len(req.Messages)),
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	}
	for _, m := range req.Messages {
		chatReq.Messages = append(chatReq.Messages, openrouter.ChatMessage{Role: m.Role, Content: m.Content})
	}

	resp, err := a.client.ChatCompletion(ctx, chatReq)
	if err != nil {
		return SoftFail(classifyOpenAIError(ctx, err), err)
	}

	text := resp.FirstContent()
	if text == "" {
		return SoftFail(ReasonEmptyCompletion, fmt.Errorf("%s: response has no choices[0].message.content", a.id))
	}

	model := resp.Model
	if model == "" {
		model = a.model
	}
	return Succeeded(&Response{
		Content:      text,
		ProviderName: a.id,
		ModelName:    model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	})
}

// Name implements Provider
func (a *OpenAICompatibleAdapter) Name() string {
	return a.id
}

// Model implements Provider
func (a *OpenAICompatibleAdapter) Model() string {
	return a.model
}

func classifyOpenAIError(ctx context.Context, err error) FailureReason {
	var apiErr *openrouter.APIError
	switch {
	case errors.As(err, &apiErr) && apiErr.RateLimited():
		return ReasonRateLimited
	case errors.As(err, &apiErr):
		return ReasonStatus
	case errors.Is(err, openrouter.ErrMalformedResponse):
		return ReasonMalformed
	default:
		return contextReason(ctx, err)
	}
}

// contextReason distinguishes deadline and cancellation from plain transport errors.
func contextReason(ctx context.Context, err error) FailureReason {
	switch {
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded):
		return ReasonTimeout
	case errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled):
		return ReasonCanceled
	default:
		return ReasonTransport
	}
}
