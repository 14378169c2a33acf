package openrouter

import "time"

const (
	// DefaultBaseURL is the OpenRouter API endpoint. Any OpenAI-compatible
	// base URL (DeepSeek, Groq, Qwen compatible mode) can be used instead.
	DefaultBaseURL = "https://openrouter.ai/api/v1"

	// DefaultModel is the default model to use
	DefaultModel = "meta-llama/llama-3-70b-instruct:nitro"

	// DefaultTimeout is the HTTP client ceiling; per-call deadlines come from the context.
	DefaultTimeout = 60 * time.Second

	// maxErrorBody caps how much of a failed response body is kept in the error.
	maxErrorBody = 2048
)
