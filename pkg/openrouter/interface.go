package openrouter

import "context"

// IOpenRouter defines the interface for an OpenAI-compatible chat completion client.
// Implementations are safe for concurrent use.
type IOpenRouter interface {
	ChatCompletion(ctx context.Context, req *ChatRequest) (*ChatResponse, error)

	// Model returns the default model of the client
	Model() string
}
