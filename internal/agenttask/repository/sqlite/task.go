package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"clainai/internal/agenttask"
	repo "clainai/internal/agenttask/repository"
)

const taskColumns = `id, session_id, task_type, description, payload, status, result, created_at, completed_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(s scanner) (agenttask.Task, error) {
	var (
		t           agenttask.Task
		taskType    string
		payload     string
		status      string
		createdAt   int64
		completedAt sql.NullInt64
	)
	if err := s.Scan(&t.ID, &t.ConversationID, &taskType, &t.Description, &payload, &status, &t.Result, &createdAt, &completedAt); err != nil {
		return agenttask.Task{}, err
	}
	if payload != "" {
		if err := json.Unmarshal([]byte(payload), &t.Payload); err != nil {
			return agenttask.Task{}, err
		}
	}
	t.Type = agenttask.TaskType(taskType)
	t.Status = agenttask.Status(status)
	t.CreatedAt = time.Unix(0, createdAt).UTC()
	if completedAt.Valid {
		at := time.Unix(0, completedAt.Int64).UTC()
		t.CompletedAt = &at
	}
	return t, nil
}

// CreateTask inserts a pending task.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (agenttask.Task, error) {
	payload, err := json.Marshal(opt.Payload)
	if err != nil {
		r.l.Errorf(ctx, "%s marshal payload: %v", r.dsn("CreateTask"), err)
		return agenttask.Task{}, repo.ErrFailedToInsert
	}

	createdAt := opt.CreatedAt
	if createdAt.IsZero() {
		createdAt = r.now()
	}
	createdAt = createdAt.UTC()

	const query = `
		INSERT INTO agent_tasks (id, session_id, task_type, description, payload, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	if _, err := r.db.ExecContext(ctx, query,
		opt.ID, opt.ConversationID, string(opt.Type), opt.Description, string(payload),
		string(agenttask.StatusPending), createdAt.UnixNano(),
	); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return agenttask.Task{}, repo.ErrFailedToInsert
	}

	return agenttask.Task{
		ID:             opt.ID,
		ConversationID: opt.ConversationID,
		Type:           opt.Type,
		Description:    opt.Description,
		Payload:        opt.Payload,
		Status:         agenttask.StatusPending,
		CreatedAt:      createdAt,
	}, nil
}

func (r *implRepository) GetTask(ctx context.Context, id string) (agenttask.Task, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM agent_tasks WHERE id = ?`, id)
	t, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return agenttask.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetTask"), err)
		return agenttask.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

// ListPending returns pending tasks in creation order.
func (r *implRepository) ListPending(ctx context.Context, opt repo.ListPendingOptions) ([]agenttask.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM agent_tasks WHERE status = ?`
	args := []any{string(agenttask.StatusPending)}
	if opt.ConversationID != "" {
		query += ` AND session_id = ?`
		args = append(args, opt.ConversationID)
	}
	query += ` ORDER BY created_at ASC, rowid ASC`
	if opt.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, opt.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListPending"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var tasks []agenttask.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListPending"), err)
			return nil, repo.ErrFailedToList
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListPending"), err)
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}

// CompleteTask only touches a row that is still pending, so a second call is a no-op.
func (r *implRepository) CompleteTask(ctx context.Context, opt repo.CompleteTaskOptions) (bool, error) {
	completedAt := opt.CompletedAt
	if completedAt.IsZero() {
		completedAt = r.now()
	}

	const query = `
		UPDATE agent_tasks SET status = ?, result = ?, completed_at = ?
		WHERE id = ? AND status = ?`

	res, err := r.db.ExecContext(ctx, query,
		string(agenttask.StatusCompleted), opt.Result, completedAt.UTC().UnixNano(),
		opt.ID, string(agenttask.StatusPending),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CompleteTask"), err)
		return false, repo.ErrFailedToUpdate
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s RowsAffected: %v", r.dsn("CompleteTask"), err)
		return false, repo.ErrFailedToUpdate
	}
	return n == 1, nil
}
