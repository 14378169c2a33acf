package completion

import "clainai/internal/conversation"

// ProviderFallback is reported as ProviderUsed when no provider answered.
const ProviderFallback = "fallback"

// Options personalise the system prompt.
type Options struct {
	UserName      string
	LoginProvider string
}

type CompleteInput struct {
	Message string
	// History is oldest first; only the trailing window is sent.
	History []conversation.Message
	Options Options
}

type CompleteOutput struct {
	Reply        string
	ProviderUsed string
	Model        string
	TokensUsed   int
}
