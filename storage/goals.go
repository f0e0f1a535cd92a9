package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"planner-api/domain"
)

// ListGoals returns every goal by descending id. Goals carry no creation
// timestamp; ids are monotonic, so this is reverse creation order.
func (s *Store) ListGoals(ctx context.Context) ([]domain.Goal, error) {
	goals := []domain.Goal{}
	err := s.db.SelectContext(ctx, &goals,
		"SELECT * FROM goals ORDER BY id DESC")
	if err != nil {
		return nil, fmt.Errorf("listing goals: %w", err)
	}
	return goals, nil
}

// GetGoal fetches a single goal by id.
func (s *Store) GetGoal(ctx context.Context, id int64) (domain.Goal, error) {
	var g domain.Goal
	err := s.db.GetContext(ctx, &g, "SELECT * FROM goals WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Goal{}, &domain.NotFoundError{Kind: "goal", ID: id}
	}
	if err != nil {
		return domain.Goal{}, fmt.Errorf("fetching goal %d: %w", id, err)
	}
	return g, nil
}

// InsertGoal stores a new goal, assigning its id.
func (s *Store) InsertGoal(ctx context.Context, g domain.Goal) (domain.Goal, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO goals (name, target_per_week, progress)
		VALUES (?, ?, ?)`,
		g.Name, g.TargetPerWeek, g.Progress)
	if err != nil {
		return domain.Goal{}, fmt.Errorf("creating goal: %w", err)
	}
	if g.ID, err = res.LastInsertId(); err != nil {
		return domain.Goal{}, fmt.Errorf("creating goal: %w", err)
	}
	return g, nil
}

// UpdateGoal persists new field values for an existing goal.
func (s *Store) UpdateGoal(ctx context.Context, g domain.Goal) (domain.Goal, error) {
	res, err := s.db.ExecContext(ctx, `
		UPDATE goals SET name = ?, target_per_week = ?, progress = ?
		WHERE id = ?`,
		g.Name, g.TargetPerWeek, g.Progress, g.ID)
	if err != nil {
		return domain.Goal{}, fmt.Errorf("updating goal %d: %w", g.ID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.Goal{}, &domain.NotFoundError{Kind: "goal", ID: g.ID}
	}
	return g, nil
}

// DeleteGoal removes a goal by id.
func (s *Store) DeleteGoal(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM goals WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting goal %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return &domain.NotFoundError{Kind: "goal", ID: id}
	}
	return nil
}
