package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"planner-api/domain"
)

// ListHabits returns every habit, most recently created first.
func (s *Store) ListHabits(ctx context.Context) ([]domain.Habit, error) {
	habits := []domain.Habit{}
	err := s.db.SelectContext(ctx, &habits,
		"SELECT * FROM habits ORDER BY id DESC")
	if err != nil {
		return nil, fmt.Errorf("listing habits: %w", err)
	}
	return habits, nil
}

// GetHabit fetches a single habit by id.
func (s *Store) GetHabit(ctx context.Context, id int64) (domain.Habit, error) {
	var h domain.Habit
	err := s.db.GetContext(ctx, &h, "SELECT * FROM habits WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Habit{}, &domain.NotFoundError{Kind: "habit", ID: id}
	}
	if err != nil {
		return domain.Habit{}, fmt.Errorf("fetching habit %d: %w", id, err)
	}
	return h, nil
}

// InsertHabit stores a new habit, assigning its id and creation timestamp.
func (s *Store) InsertHabit(ctx context.Context, h domain.Habit) (domain.Habit, error) {
	h.CreatedAt = time.Now().UTC()
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO habits (name, mon, tue, wed, thu, fri, sat, sun, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		h.Name, h.Mon, h.Tue, h.Wed, h.Thu, h.Fri, h.Sat, h.Sun, h.CreatedAt)
	if err != nil {
		return domain.Habit{}, fmt.Errorf("creating habit: %w", err)
	}
	if h.ID, err = res.LastInsertId(); err != nil {
		return domain.Habit{}, fmt.Errorf("creating habit: %w", err)
	}
	return h, nil
}

// UpdateHabit persists new field values for an existing habit.
func (s *Store) UpdateHabit(ctx context.Context, h domain.Habit) (domain.Habit, error) {
	res, err := s.db.ExecContext(ctx, `
		UPDATE habits SET name = ?, mon = ?, tue = ?, wed = ?, thu = ?, fri = ?, sat = ?, sun = ?
		WHERE id = ?`,
		h.Name, h.Mon, h.Tue, h.Wed, h.Thu, h.Fri, h.Sat, h.Sun, h.ID)
	if err != nil {
		return domain.Habit{}, fmt.Errorf("updating habit %d: %w", h.ID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.Habit{}, &domain.NotFoundError{Kind: "habit", ID: h.ID}
	}
	return h, nil
}

// DeleteHabit removes a habit by id.
func (s *Store) DeleteHabit(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM habits WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting habit %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return &domain.NotFoundError{Kind: "habit", ID: id}
	}
	return nil
}
