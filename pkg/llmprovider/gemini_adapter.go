package llmprovider

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// DefaultGeminiModel is used when a gemini entry sets no model.
const DefaultGeminiModel = "gemini-2.0-flash"

// geminiModels is the subset of *genai.Models the adapter needs.
type geminiModels interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiAdapter adapts the Google GenAI SDK to the Provider interface.
type GeminiAdapter struct {
	id     string
	model  string
	models geminiModels
}

// NewGeminiClient creates a Gemini API backed adapter.
func NewGeminiClient(ctx context.Context, id, apiKey, model string) (*GeminiAdapter, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}
	return newGeminiAdapter(id, model, client.Models), nil
}

func newGeminiAdapter(id, model string, models geminiModels) *GeminiAdapter {
	if model == "" {
		model = DefaultGeminiModel
	}
	return &GeminiAdapter{id: id, model: model, models: models}
}

// Complete implements Provider. System messages become the system
// instruction; assistant turns map to the model role.
func (a *GeminiAdapter) Complete(ctx context.Context, req *Request) Result {
	var (
		system   string
		contents []*genai.Content
	)
	for _, m := range req.Messages {
		switch m.Role {
		case RoleSystem:
			if system != "" {
				system += "\n\n"
			}
			system += m.Content
		case RoleAssistant:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleModel))
		default:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleUser))
		}
	}

	temp := float32(req.Temperature)
	cfg := &genai.GenerateContentConfig{
		Temperature:     &temp,
		MaxOutputTokens: int32(req.MaxTokens),
	}
	if system != "" {
		cfg.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}

	res, err := a.models.GenerateContent(ctx, a.model, contents, cfg)
	if err != nil {
		return SoftFail(contextReason(ctx, err), fmt.Errorf("gemini generate content: %w", err))
	}

	text := res.Text()
	if text == "" {
		return SoftFail(ReasonEmptyCompletion, fmt.Errorf("%s: empty candidate text", a.id))
	}

	resp := &Response{Content: text, ProviderName: a.id, ModelName: a.model}
	if u := res.UsageMetadata; u != nil {
		resp.Usage = &Usage{
			InputTokens:  int(u.PromptTokenCount),
			OutputTokens: int(u.CandidatesTokenCount),
			TotalTokens:  int(u.TotalTokenCount),
		}
	}
	return Succeeded(resp)
}

// Name implements Provider
func (a *GeminiAdapter) Name() string {
	return a.id
}

// Model implements Provider
func (a *GeminiAdapter) Model() string {
	return a.model
}
