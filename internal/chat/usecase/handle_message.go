package usecase

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"clainai/internal/agenttask"
	"clainai/internal/chat"
	"clainai/internal/completion"
	"clainai/internal/conversation"
	"clainai/internal/conversation/repository"
	"clainai/internal/intent"
)

// HandleMessage runs shortcut rules, then intent delegation, then the
// completion chain. The first stage that answers wins.
func (uc *implUseCase) HandleMessage(ctx context.Context, input chat.HandleMessageInput) (chat.HandleMessageOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return chat.HandleMessageOutput{}, chat.ErrEmptyMessage
	}
	if uc.cfg.MaxMessageLength > 0 && utf8.RuneCountInString(text) > uc.cfg.MaxMessageLength {
		return chat.HandleMessageOutput{}, chat.ErrMessageTooLong
	}
	if input.ConversationID == "" {
		return chat.HandleMessageOutput{}, chat.ErrEmptyConversationID
	}

	analysis := intent.Analyze(text)

	if reply, ok := uc.shortcuts.Classify(text); ok {
		out := chat.HandleMessageOutput{
			Reply:         reply.Text,
			Source:        chat.SourceShortcut,
			Provenance:    reply.Tag(),
			Intents:       analysis.Intents,
			IsInstruction: analysis.IsInstruction,
		}
		return uc.persist(ctx, input.ConversationID, text, out, reply.Tag(), 0, nil)
	}

	if out, ok := uc.delegate(ctx, input.ConversationID, text, analysis); ok {
		return uc.persist(ctx, input.ConversationID, text, out, conversation.ModelAgentPrefix+out.Provenance, 0, nil)
	}

	// History is read before the new message is stored so it is not sent twice.
	var (
		history  []conversation.Message
		storeErr error
	)
	if uc.cfg.HistoryWindow > 0 {
		var err error
		history, err = uc.repo.Read(ctx, repository.ReadOptions{
			ConversationID: input.ConversationID,
			Limit:          uc.cfg.HistoryWindow,
			Order:          repository.OldestFirst,
		})
		if err != nil {
			uc.l.Errorf(ctx, "uc.HandleMessage Read: %v", err)
			storeErr = &chat.StoreError{Op: "read history", Err: err}
		}
	}

	res := uc.completion.Complete(ctx, completion.CompleteInput{
		Message: text,
		History: history,
		Options: input.Options,
	})

	out := chat.HandleMessageOutput{
		Reply:         res.Reply,
		Source:        chat.SourceProvider,
		Provenance:    res.ProviderUsed,
		Intents:       analysis.Intents,
		IsInstruction: analysis.IsInstruction,
	}
	if res.ProviderUsed == completion.ProviderFallback {
		out.Source = chat.SourceFallback
		out.Provenance = chat.ProvenanceNone
	}
	return uc.persist(ctx, input.ConversationID, text, out, res.ProviderUsed, res.TokensUsed, storeErr)
}

// delegate creates a task for the first actionable intent that has a topic.
// A failed creation falls through to the completion chain.
func (uc *implUseCase) delegate(ctx context.Context, conversationID, text string, analysis intent.Analysis) (chat.HandleMessageOutput, bool) {
	if uc.tasks == nil || !analysis.NeedsAgent {
		return chat.HandleMessageOutput{}, false
	}
	in, ok := analysis.FirstActionable()
	if !ok {
		return chat.HandleMessageOutput{}, false
	}
	topic := intent.ExtractTopic(text, in.Triggers())
	if topic == "" {
		return chat.HandleMessageOutput{}, false
	}

	created, err := uc.tasks.CreateTask(ctx, agenttask.CreateTaskInput{
		ConversationID: conversationID,
		Type:           taskTypes[in],
		Payload:        agenttask.Payload{Topic: topic},
	})
	if err != nil {
		var tce *agenttask.TaskCreationError
		if errors.As(err, &tce) {
			uc.l.Warnf(ctx, "uc.HandleMessage: task creation failed, answering normally: %v", err)
		} else {
			uc.l.Warnf(ctx, "uc.HandleMessage CreateTask: %v", err)
		}
		return chat.HandleMessageOutput{}, false
	}

	return chat.HandleMessageOutput{
		Reply:         created.Acknowledgement,
		Source:        chat.SourceAgent,
		Provenance:    created.Task.ID,
		Intents:       analysis.Intents,
		IsInstruction: analysis.IsInstruction,
	}, true
}

// persist appends the user message and the reply. Failures never drop the
// reply; they mark it as not persisted.
func (uc *implUseCase) persist(ctx context.Context, conversationID, text string, out chat.HandleMessageOutput, modelUsed string, tokens int, prior error) (chat.HandleMessageOutput, error) {
	storeErr := prior

	if _, err := uc.repo.Append(ctx, repository.AppendOptions{
		ConversationID: conversationID,
		Role:           conversation.RoleUser,
		Content:        text,
	}); err != nil {
		uc.l.Errorf(ctx, "uc.HandleMessage Append user: %v", err)
		if storeErr == nil {
			storeErr = &chat.StoreError{Op: "append user message", Err: err}
		}
	}

	if _, err := uc.repo.Append(ctx, repository.AppendOptions{
		ConversationID: conversationID,
		Role:           conversation.RoleAssistant,
		Content:        out.Reply,
		ModelUsed:      modelUsed,
		TokensUsed:     tokens,
	}); err != nil {
		uc.l.Errorf(ctx, "uc.HandleMessage Append reply: %v", err)
		if storeErr == nil {
			storeErr = &chat.StoreError{Op: "append reply", Err: err}
		}
	}

	out.Persisted = storeErr == nil
	uc.l.Info(ctx, "message handled",
		"conversation_id", conversationID,
		"source", string(out.Source),
		"provenance", out.Provenance,
		"persisted", out.Persisted,
		"is_instruction", out.IsInstruction,
	)
	return out, storeErr
}
