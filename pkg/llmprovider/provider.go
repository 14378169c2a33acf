package llmprovider

import "context"

// Provider is a single completion backend behind a uniform call shape.
// Implementations report failures through the returned Result instead of
// panicking or returning a bare error, so the Manager can decide what to
// try next.
type Provider interface {
	// Complete sends the assembled messages and reports the outcome.
	Complete(ctx context.Context, req *Request) Result

	// Name returns the registry id of the provider (e.g. "llama-3-70b")
	Name() string

	// Model returns the upstream model being used
	Model() string
}

// Role values accepted in Message.Role.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Request is a provider-agnostic completion request.
type Request struct {
	Messages    []Message
	MaxTokens   int
	Temperature float64
}

// Message is one entry of the prompt.
type Message struct {
	Role    string
	Content string
}

// Response is a normalized completion.
type Response struct {
	Content      string
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
