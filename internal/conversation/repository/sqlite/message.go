package sqlite

import (
	"context"
	"fmt"
	"slices"
	"time"

	"clainai/internal/conversation"
	repo "clainai/internal/conversation/repository"
)

const messageColumns = `id, session_id, role, content, model_used, tokens_used, created_at`

// Append inserts a message stamped with the current time.
func (r *implRepository) Append(ctx context.Context, opt repo.AppendOptions) (conversation.Message, error) {
	if opt.ConversationID == "" {
		return conversation.Message{}, conversation.ErrEmptyConversationID
	}
	if !opt.Role.Valid() {
		return conversation.Message{}, fmt.Errorf("%w: %q", conversation.ErrInvalidRole, opt.Role)
	}

	const query = `
		INSERT INTO messages (session_id, role, content, model_used, tokens_used, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	ts := r.now().UTC()
	res, err := r.db.ExecContext(ctx, query,
		opt.ConversationID, string(opt.Role), opt.Content, opt.ModelUsed, opt.TokensUsed, ts.UnixNano(),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Append"), err)
		return conversation.Message{}, repo.ErrFailedToInsert
	}
	id, err := res.LastInsertId()
	if err != nil {
		r.l.Errorf(ctx, "%s LastInsertId: %v", r.dsn("Append"), err)
		return conversation.Message{}, repo.ErrFailedToInsert
	}

	return conversation.Message{
		ID:             id,
		ConversationID: opt.ConversationID,
		Role:           opt.Role,
		Content:        opt.Content,
		ModelUsed:      opt.ModelUsed,
		TokensUsed:     opt.TokensUsed,
		Timestamp:      ts,
	}, nil
}

// Read returns messages in opt.Order, optionally only the latest Limit of them.
func (r *implRepository) Read(ctx context.Context, opt repo.ReadOptions) ([]conversation.Message, error) {
	if opt.ConversationID == "" {
		return nil, conversation.ErrEmptyConversationID
	}

	query := `SELECT ` + messageColumns + ` FROM messages WHERE session_id = ? ORDER BY created_at ASC, id ASC`
	args := []any{opt.ConversationID}
	if opt.Limit > 0 {
		query = `SELECT ` + messageColumns + ` FROM (
			SELECT ` + messageColumns + ` FROM messages WHERE session_id = ?
			ORDER BY created_at DESC, id DESC LIMIT ?
		) ORDER BY created_at ASC, id ASC`
		args = append(args, opt.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Read"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var messages []conversation.Message
	for rows.Next() {
		var (
			m    conversation.Message
			role string
			ts   int64
		)
		if err := rows.Scan(&m.ID, &m.ConversationID, &role, &m.Content, &m.ModelUsed, &m.TokensUsed, &ts); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("Read"), err)
			return nil, repo.ErrFailedToList
		}
		m.Role = conversation.Role(role)
		m.Timestamp = time.Unix(0, ts).UTC()
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("Read"), err)
		return nil, repo.ErrFailedToList
	}

	if opt.Order == repo.NewestFirst {
		slices.Reverse(messages)
	}
	return messages, nil
}

// Clear deletes every message of a conversation.
func (r *implRepository) Clear(ctx context.Context, conversationID string) error {
	if conversationID == "" {
		return conversation.ErrEmptyConversationID
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM messages WHERE session_id = ?`, conversationID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Clear"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
