package sqlite

import (
	"context"
	"time"

	"clainai/internal/notification"
	repo "clainai/internal/notification/repository"
)

func (r *implRepository) Create(ctx context.Context, opt repo.CreateOptions) (notification.Notification, error) {
	const query = `
		INSERT INTO notifications (id, session_id, title, message, is_read, created_at)
		VALUES (?, ?, ?, ?, 0, ?)`

	ts := r.now().UTC()
	if _, err := r.db.ExecContext(ctx, query, opt.ID, opt.ConversationID, opt.Title, opt.Message, ts.UnixNano()); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Create"), err)
		return notification.Notification{}, repo.ErrFailedToInsert
	}

	return notification.Notification{
		ID:             opt.ID,
		ConversationID: opt.ConversationID,
		Title:          opt.Title,
		Message:        opt.Message,
		CreatedAt:      ts,
	}, nil
}

func (r *implRepository) List(ctx context.Context, opt repo.ListOptions) ([]notification.Notification, error) {
	query := `SELECT id, session_id, title, message, is_read, created_at FROM notifications WHERE session_id = ?`
	args := []any{opt.ConversationID}
	if opt.UnreadOnly {
		query += ` AND is_read = 0`
	}
	query += ` ORDER BY created_at DESC, rowid DESC`
	if opt.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, opt.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("List"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var out []notification.Notification
	for rows.Next() {
		var (
			n  notification.Notification
			ts int64
		)
		if err := rows.Scan(&n.ID, &n.ConversationID, &n.Title, &n.Message, &n.Read, &ts); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("List"), err)
			return nil, repo.ErrFailedToList
		}
		n.CreatedAt = time.Unix(0, ts).UTC()
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("List"), err)
		return nil, repo.ErrFailedToList
	}
	return out, nil
}

func (r *implRepository) CountUnread(ctx context.Context, conversationID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM notifications WHERE session_id = ? AND is_read = 0`, conversationID,
	).Scan(&n)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CountUnread"), err)
		return 0, repo.ErrFailedToList
	}
	return n, nil
}

func (r *implRepository) MarkRead(ctx context.Context, conversationID, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE notifications SET is_read = 1 WHERE id = ? AND session_id = ?`, id, conversationID,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("MarkRead"), err)
		return false, repo.ErrFailedToUpdate
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s RowsAffected: %v", r.dsn("MarkRead"), err)
		return false, repo.ErrFailedToUpdate
	}
	return n > 0, nil
}
