package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"planner-api/domain"
)

// ListEvents returns every event ordered by (date, start_time) ascending.
// Both columns hold zero-padded canonical strings, so string comparison is
// chronological comparison.
func (s *Store) ListEvents(ctx context.Context) ([]domain.Event, error) {
	events := []domain.Event{}
	err := s.db.SelectContext(ctx, &events,
		"SELECT * FROM events ORDER BY date, start_time")
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}
	return events, nil
}

// GetEvent fetches a single event by id.
func (s *Store) GetEvent(ctx context.Context, id int64) (domain.Event, error) {
	var e domain.Event
	err := s.db.GetContext(ctx, &e, "SELECT * FROM events WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Event{}, &domain.NotFoundError{Kind: "event", ID: id}
	}
	if err != nil {
		return domain.Event{}, fmt.Errorf("fetching event %d: %w", id, err)
	}
	return e, nil
}

// InsertEvent stores a new event, assigning its id.
func (s *Store) InsertEvent(ctx context.Context, e domain.Event) (domain.Event, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO events (title, date, start_time, end_time, category)
		VALUES (?, ?, ?, ?, ?)`,
		e.Title, e.Date, e.StartTime, e.EndTime, e.Category)
	if err != nil {
		return domain.Event{}, fmt.Errorf("creating event: %w", err)
	}
	if e.ID, err = res.LastInsertId(); err != nil {
		return domain.Event{}, fmt.Errorf("creating event: %w", err)
	}
	return e, nil
}

// UpdateEvent persists new field values for an existing event.
func (s *Store) UpdateEvent(ctx context.Context, e domain.Event) (domain.Event, error) {
	res, err := s.db.ExecContext(ctx, `
		UPDATE events SET title = ?, date = ?, start_time = ?, end_time = ?, category = ?
		WHERE id = ?`,
		e.Title, e.Date, e.StartTime, e.EndTime, e.Category, e.ID)
	if err != nil {
		return domain.Event{}, fmt.Errorf("updating event %d: %w", e.ID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.Event{}, &domain.NotFoundError{Kind: "event", ID: e.ID}
	}
	return e, nil
}

// DeleteEvent removes an event by id.
func (s *Store) DeleteEvent(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM events WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting event %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return &domain.NotFoundError{Kind: "event", ID: id}
	}
	return nil
}
