package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/dayflow/internal/db"
	"github.com/alexanderramin/dayflow/internal/domain"
)

// SQLiteTaskRepo implements TaskRepo. Subtasks live in their own table and
// are written and read together with their task.
type SQLiteTaskRepo struct {
	db db.DBTX
}

func NewSQLiteTaskRepo(conn db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: conn}
}

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task, position int) error {
	query := `INSERT INTO tasks (id, position, title, is_completed, priority, due_date)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		position,
		t.Title,
		boolToInt(t.IsCompleted),
		string(t.Priority),
		nullableTimeToString(t.DueDate),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	for i, st := range t.Subtasks {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO subtasks (id, task_id, position, title, is_completed) VALUES (?, ?, ?, ?, ?)`,
			st.ID, t.ID, i, st.Title, boolToInt(st.IsCompleted),
		)
		if err != nil {
			return fmt.Errorf("inserting subtask: %w", err)
		}
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, title, is_completed, priority, due_date FROM tasks WHERE id = ?`, id)
	t, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("task: %w", ErrNotFound)
		}
		return nil, err
	}
	subs, err := r.listSubtasks(ctx)
	if err != nil {
		return nil, err
	}
	t.Subtasks = subs[t.ID]
	return &t, nil
}

func (r *SQLiteTaskRepo) List(ctx context.Context) ([]domain.Task, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, is_completed, priority, due_date FROM tasks ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	rows.Close()

	subs, err := r.listSubtasks(ctx)
	if err != nil {
		return nil, err
	}
	for i := range tasks {
		tasks[i].Subtasks = subs[tasks[i].ID]
	}
	return tasks, nil
}

func (r *SQLiteTaskRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("task: %w", ErrNotFound)
	}
	return nil
}

// ReplaceAll makes the table hold exactly tasks, in order.
func (r *SQLiteTaskRepo) ReplaceAll(ctx context.Context, tasks []domain.Task) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM tasks`); err != nil {
		return fmt.Errorf("clearing tasks: %w", err)
	}
	for i := range tasks {
		if err := r.Create(ctx, &tasks[i], i); err != nil {
			return err
		}
	}
	return nil
}

// listSubtasks groups every subtask by task id, in position order.
func (r *SQLiteTaskRepo) listSubtasks(ctx context.Context) (map[string][]domain.Subtask, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT task_id, id, title, is_completed FROM subtasks ORDER BY task_id, position`)
	if err != nil {
		return nil, fmt.Errorf("listing subtasks: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]domain.Subtask)
	for rows.Next() {
		var taskID string
		var st domain.Subtask
		var done int
		if err := rows.Scan(&taskID, &st.ID, &st.Title, &done); err != nil {
			return nil, fmt.Errorf("scanning subtask: %w", err)
		}
		st.IsCompleted = intToBool(done)
		out[taskID] = append(out[taskID], st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating subtasks: %w", err)
	}
	return out, nil
}

func scanTask(s scanner) (domain.Task, error) {
	var t domain.Task
	var done int
	var priority string
	var due sql.NullString
	if err := s.Scan(&t.ID, &t.Title, &done, &priority, &due); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return t, err
		}
		return t, fmt.Errorf("scanning task: %w", err)
	}
	t.IsCompleted = intToBool(done)
	t.Priority = domain.Priority(priority)
	t.DueDate = parseNullableTime(due)
	return t, nil
}
