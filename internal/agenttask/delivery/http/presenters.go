package http

import (
	"time"

	"clainai/internal/agenttask"
)

type completeReq struct {
	Result string `json:"result"`
}

type payloadResp struct {
	Topic     string `json:"topic"`
	Condition string `json:"condition,omitempty"`
	Depth     string `json:"depth,omitempty"`
	RemindAt  string `json:"remind_at,omitempty"`
}

type taskResp struct {
	ID          string      `json:"id"`
	Type        string      `json:"type"`
	Description string      `json:"description"`
	Payload     payloadResp `json:"payload"`
	Status      string      `json:"status"`
	Result      string      `json:"result,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	CompletedAt *time.Time  `json:"completed_at,omitempty"`
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
}

type completeResp struct {
	Completed bool `json:"completed"`
}

func (h *handler) newTaskResp(t agenttask.Task) taskResp {
	return taskResp{
		ID:          t.ID,
		Type:        string(t.Type),
		Description: t.Description,
		Payload: payloadResp{
			Topic:     t.Payload.Topic,
			Condition: t.Payload.Condition,
			Depth:     t.Payload.Depth,
			RemindAt:  t.Payload.RemindAt,
		},
		Status:      string(t.Status),
		Result:      t.Result,
		CreatedAt:   t.CreatedAt,
		CompletedAt: t.CompletedAt,
	}
}

func (h *handler) newListResp(tasks []agenttask.Task) listResp {
	items := make([]taskResp, len(tasks))
	for i, t := range tasks {
		items[i] = h.newTaskResp(t)
	}
	return listResp{Tasks: items}
}
