package chat

import (
	"clainai/internal/completion"
	"clainai/internal/conversation"
	"clainai/internal/intent"
)

// Source says which stage produced a reply.
type Source string

const (
	SourceShortcut Source = "shortcut"
	SourceAgent    Source = "agent"
	SourceProvider Source = "provider"
	SourceFallback Source = "fallback"
)

// ProvenanceNone is the provenance of a fallback reply.
const ProvenanceNone = "none"

// --- UseCase Inputs ---

type HandleMessageInput struct {
	ConversationID string
	Text           string
	Options        completion.Options
}

type HistoryInput struct {
	ConversationID string
	Limit          int
}

// --- UseCase Outputs ---

type HandleMessageOutput struct {
	Reply  string
	Source Source
	// Provenance is the shortcut rule tag, task id, provider id or ProvenanceNone.
	Provenance string
	// Persisted is false when the exchange could not be stored; Reply is still valid.
	Persisted     bool
	Intents       []intent.Intent
	IsInstruction bool
}

type HistoryOutput struct {
	Messages []conversation.Message
}
