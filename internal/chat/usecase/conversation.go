package usecase

import (
	"context"
	"fmt"

	"clainai/internal/chat"
	"clainai/internal/conversation"
	"clainai/internal/conversation/repository"
)

// History returns the latest messages, oldest first.
func (uc *implUseCase) History(ctx context.Context, input chat.HistoryInput) (chat.HistoryOutput, error) {
	if input.ConversationID == "" {
		return chat.HistoryOutput{}, chat.ErrEmptyConversationID
	}
	limit := input.Limit
	if limit <= 0 {
		limit = uc.cfg.ConversationPage
	}

	msgs, err := uc.repo.Read(ctx, repository.ReadOptions{ConversationID: input.ConversationID, Limit: limit})
	if err != nil {
		uc.l.Errorf(ctx, "uc.History Read: %v", err)
		return chat.HistoryOutput{}, err
	}
	return chat.HistoryOutput{Messages: msgs}, nil
}

func (uc *implUseCase) ClearConversation(ctx context.Context, conversationID string) (conversation.Message, error) {
	if conversationID == "" {
		return conversation.Message{}, chat.ErrEmptyConversationID
	}

	if err := uc.repo.Clear(ctx, conversationID); err != nil {
		uc.l.Errorf(ctx, "uc.ClearConversation Clear: %v", err)
		return conversation.Message{}, &chat.StoreError{Op: "clear", Err: err}
	}

	welcome, err := uc.repo.Append(ctx, repository.AppendOptions{
		ConversationID: conversationID,
		Role:           conversation.RoleAssistant,
		Content:        fmt.Sprintf(welcomeTemplate, uc.cfg.Identity.DeveloperName, uc.cfg.Identity.DeveloperContact),
		ModelUsed:      conversation.ModelWelcome,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ClearConversation Append: %v", err)
		return conversation.Message{}, &chat.StoreError{Op: "append welcome", Err: err}
	}

	uc.l.Info(ctx, "conversation cleared", "conversation_id", conversationID)
	return welcome, nil
}
