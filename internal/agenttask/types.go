package agenttask

import "time"

// TaskType is the kind of deferred work.
type TaskType string

const (
	TypePriceTracking TaskType = "price_tracking"
	TypeResearch      TaskType = "research"
	TypeReminder      TaskType = "reminder"
)

// Valid reports whether t is a known task type.
func (t TaskType) Valid() bool {
	switch t {
	case TypePriceTracking, TypeResearch, TypeReminder:
		return true
	}
	return false
}

// Status of a task. pending -> completed happens once; there is no way back.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// Payload is the structured part of a task.
type Payload struct {
	Topic     string `json:"topic"`
	Condition string `json:"condition,omitempty"` // price_tracking, e.g. "any_change"
	Depth     string `json:"depth,omitempty"`     // research, e.g. "standard"
	RemindAt  string `json:"remind_at,omitempty"` // reminder, RFC3339
}

// Task is a durable record of deferred work.
type Task struct {
	ID             string
	ConversationID string
	Type           TaskType
	Description    string
	Payload        Payload
	Status         Status
	CreatedAt      time.Time
	CompletedAt    *time.Time
	Result         string
}

// --- UseCase Inputs ---

type CreateTaskInput struct {
	ConversationID string
	Type           TaskType
	Description    string
	Payload        Payload
}

// --- UseCase Outputs ---

type CreateTaskOutput struct {
	Task            Task
	Acknowledgement string
}
