package api

import (
	"context"

	"planner-api/domain"
)

// TaskStore is the persistence contract consumed by the task handlers.
type TaskStore interface {
	ListTasks(ctx context.Context) ([]domain.Task, error)
	GetTask(ctx context.Context, id int64) (domain.Task, error)
	InsertTask(ctx context.Context, t domain.Task) (domain.Task, error)
	UpdateTask(ctx context.Context, t domain.Task) (domain.Task, error)
	DeleteTask(ctx context.Context, id int64) error
}

// HabitStore is the persistence contract consumed by the habit handlers.
type HabitStore interface {
	ListHabits(ctx context.Context) ([]domain.Habit, error)
	GetHabit(ctx context.Context, id int64) (domain.Habit, error)
	InsertHabit(ctx context.Context, h domain.Habit) (domain.Habit, error)
	UpdateHabit(ctx context.Context, h domain.Habit) (domain.Habit, error)
	DeleteHabit(ctx context.Context, id int64) error
}

// GoalStore is the persistence contract consumed by the goal handlers.
type GoalStore interface {
	ListGoals(ctx context.Context) ([]domain.Goal, error)
	GetGoal(ctx context.Context, id int64) (domain.Goal, error)
	InsertGoal(ctx context.Context, g domain.Goal) (domain.Goal, error)
	UpdateGoal(ctx context.Context, g domain.Goal) (domain.Goal, error)
	DeleteGoal(ctx context.Context, id int64) error
}

// EventStore is the persistence contract consumed by the event handlers.
type EventStore interface {
	ListEvents(ctx context.Context) ([]domain.Event, error)
	GetEvent(ctx context.Context, id int64) (domain.Event, error)
	InsertEvent(ctx context.Context, e domain.Event) (domain.Event, error)
	UpdateEvent(ctx context.Context, e domain.Event) (domain.Event, error)
	DeleteEvent(ctx context.Context, id int64) error
}

// Storage is the full persistence surface required to serve the API.
type Storage interface {
	TaskStore
	HabitStore
	GoalStore
	EventStore
	Ping(ctx context.Context) error
}
