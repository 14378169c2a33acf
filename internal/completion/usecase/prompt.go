package usecase

import (
	"fmt"

	"clainai/internal/completion"
	"clainai/internal/conversation"
	"clainai/pkg/llmprovider"
)

// buildMessages assembles system prompt, the trailing history window and
// the new user message, in that order.
func (uc *implUseCase) buildMessages(input completion.CompleteInput) []llmprovider.Message {
	history := input.History
	if n := uc.cfg.HistoryWindow; len(history) > n {
		history = history[len(history)-n:]
	}

	messages := make([]llmprovider.Message, 0, len(history)+2)
	messages = append(messages, llmprovider.Message{
		Role:    llmprovider.RoleSystem,
		Content: uc.systemPrompt(input.Options),
	})
	for _, m := range history {
		messages = append(messages, llmprovider.Message{
			Role:    providerRole(m.Role),
			Content: m.Content,
		})
	}
	messages = append(messages, llmprovider.Message{
		Role:    llmprovider.RoleUser,
		Content: input.Message,
	})
	return messages
}

func (uc *implUseCase) systemPrompt(opts completion.Options) string {
	userName := opts.UserName
	if userName == "" {
		userName = defaultUserName
	}
	loginProvider := opts.LoginProvider
	if loginProvider == "" {
		loginProvider = defaultLoginProvider
	}
	id := uc.cfg.Identity
	return fmt.Sprintf(systemPromptTemplate, id.AssistantName, id.DeveloperName, id.DeveloperContact, userName, loginProvider)
}

func providerRole(r conversation.Role) string {
	switch r {
	case conversation.RoleSystem:
		return llmprovider.RoleSystem
	case conversation.RoleAssistant:
		return llmprovider.RoleAssistant
	default:
		return llmprovider.RoleUser
	}
}
