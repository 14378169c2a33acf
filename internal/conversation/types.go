package conversation

import "time"

// Role is the author of a Message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleSystem, RoleUser, RoleAssistant:
		return true
	}
	return false
}

// Provenance tags stored in Message.ModelUsed for replies that did not come from a provider.
const (
	ModelDeveloperInfo = "developer_info"
	ModelNameInfo      = "name_info"
	ModelFallback      = "fallback"
	ModelWelcome       = "welcome"
	ModelAgentPrefix   = "agent:"
)

// Message is one immutable entry in a conversation.
type Message struct {
	ID             int64
	ConversationID string
	Role           Role
	Content        string
	ModelUsed      string
	TokensUsed     int
	Timestamp      time.Time
}
