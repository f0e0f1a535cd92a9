package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"planner-api/domain"
)

// ListTasks returns every task, most recently created first.
func (s *Store) ListTasks(ctx context.Context) ([]domain.Task, error) {
	tasks := []domain.Task{}
	err := s.db.SelectContext(ctx, &tasks,
		"SELECT * FROM tasks ORDER BY id DESC")
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	return tasks, nil
}

// GetTask fetches a single task by id.
func (s *Store) GetTask(ctx context.Context, id int64) (domain.Task, error) {
	var t domain.Task
	err := s.db.GetContext(ctx, &t, "SELECT * FROM tasks WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Task{}, &domain.NotFoundError{Kind: "task", ID: id}
	}
	if err != nil {
		return domain.Task{}, fmt.Errorf("fetching task %d: %w", id, err)
	}
	return t, nil
}

// InsertTask stores a new task, assigning its id and creation timestamp.
func (s *Store) InsertTask(ctx context.Context, t domain.Task) (domain.Task, error) {
	t.CreatedAt = time.Now().UTC()
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO tasks (title, category, priority, status, minutes, due_date, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.Title, t.Category, t.Priority, t.Status, t.Minutes, t.DueDate, t.CreatedAt)
	if err != nil {
		return domain.Task{}, fmt.Errorf("creating task: %w", err)
	}
	if t.ID, err = res.LastInsertId(); err != nil {
		return domain.Task{}, fmt.Errorf("creating task: %w", err)
	}
	return t, nil
}

// UpdateTask persists new field values for an existing task. The id and
// creation timestamp columns are never written.
func (s *Store) UpdateTask(ctx context.Context, t domain.Task) (domain.Task, error) {
	res, err := s.db.ExecContext(ctx, `
		UPDATE tasks SET title = ?, category = ?, priority = ?, status = ?, minutes = ?, due_date = ?
		WHERE id = ?`,
		t.Title, t.Category, t.Priority, t.Status, t.Minutes, t.DueDate, t.ID)
	if err != nil {
		return domain.Task{}, fmt.Errorf("updating task %d: %w", t.ID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.Task{}, &domain.NotFoundError{Kind: "task", ID: t.ID}
	}
	return t, nil
}

// DeleteTask removes a task by id.
func (s *Store) DeleteTask(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting task %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return &domain.NotFoundError{Kind: "task", ID: id}
	}
	return nil
}
