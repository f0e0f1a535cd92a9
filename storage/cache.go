package storage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"planner-api/domain"
)

type backend interface {
	ListTasks(ctx context.Context) ([]domain.Task, error)
	GetTask(ctx context.Context, id int64) (domain.Task, error)
	InsertTask(ctx context.Context, t domain.Task) (domain.Task, error)
	UpdateTask(ctx context.Context, t domain.Task) (domain.Task, error)
	DeleteTask(ctx context.Context, id int64) error

	ListHabits(ctx context.Context) ([]domain.Habit, error)
	GetHabit(ctx context.Context, id int64) (domain.Habit, error)
	InsertHabit(ctx context.Context, h domain.Habit) (domain.Habit, error)
	UpdateHabit(ctx context.Context, h domain.Habit) (domain.Habit, error)
	DeleteHabit(ctx context.Context, id int64) error

	ListGoals(ctx context.Context) ([]domain.Goal, error)
	GetGoal(ctx context.Context, id int64) (domain.Goal, error)
	InsertGoal(ctx context.Context, g domain.Goal) (domain.Goal, error)
	UpdateGoal(ctx context.Context, g domain.Goal) (domain.Goal, error)
	DeleteGoal(ctx context.Context, id int64) error

	ListEvents(ctx context.Context) ([]domain.Event, error)
	GetEvent(ctx context.Context, id int64) (domain.Event, error)
	InsertEvent(ctx context.Context, e domain.Event) (domain.Event, error)
	UpdateEvent(ctx context.Context, e domain.Event) (domain.Event, error)
	DeleteEvent(ctx context.Context, id int64) error

	Ping(ctx context.Context) error
}

const (
	tasksKey  = "list:tasks"
	habitsKey = "list:habits"
	goalsKey  = "list:goals"
	eventsKey = "list:events"
)

// Cache wraps a Store with Redis-backed caching of the per-kind list
// reads. Any write to a kind evicts that kind's cached list. Gets pass
// through: they are already single-row lookups.
type Cache struct {
	base  backend
	redis *redis.Client
	ttl   time.Duration
}

// NewCache creates a caching wrapper using the provided Redis client and
// TTL. A nil client or zero TTL disables caching and every call falls
// through to the base store.
func NewCache(base backend, client *redis.Client, ttl time.Duration) *Cache {
	if base == nil {
		panic("storage.NewCache: base storage is nil")
	}
	if ttl < 0 {
		ttl = 0
	}
	return &Cache{base: base, redis: client, ttl: ttl}
}

// listThrough serves a list read from Redis when possible and refills the
// cache after a miss. Redis failures degrade to the base store; the cached
// entry is dropped so a poisoned value cannot stick around.
func listThrough[R any](ctx context.Context, c *Cache, key string, fetch func(context.Context) ([]R, error)) ([]R, error) {
	if c.redis != nil {
		data, err := c.redis.Get(ctx, key).Bytes()
		if err == nil {
			records := []R{}
			if uerr := json.Unmarshal(data, &records); uerr == nil {
				return records, nil
			}
			_ = c.redis.Del(ctx, key).Err()
		} else if err != redis.Nil {
			_ = c.redis.Del(ctx, key).Err()
		}
	}

	records, err := fetch(ctx)
	if err != nil {
		return nil, err
	}

	if c.redis != nil && c.ttl > 0 {
		if data, merr := json.Marshal(records); merr == nil {
			_ = c.redis.Set(ctx, key, data, c.ttl).Err()
		}
	}
	return records, nil
}

func (c *Cache) evict(ctx context.Context, key string) {
	if c.redis == nil {
		return
	}
	_ = c.redis.Del(ctx, key).Err()
}

func (c *Cache) ListTasks(ctx context.Context) ([]domain.Task, error) {
	return listThrough(ctx, c, tasksKey, c.base.ListTasks)
}

func (c *Cache) GetTask(ctx context.Context, id int64) (domain.Task, error) {
	return c.base.GetTask(ctx, id)
}

func (c *Cache) InsertTask(ctx context.Context, t domain.Task) (domain.Task, error) {
	created, err := c.base.InsertTask(ctx, t)
	if err != nil {
		return domain.Task{}, err
	}
	c.evict(ctx, tasksKey)
	return created, nil
}

func (c *Cache) UpdateTask(ctx context.Context, t domain.Task) (domain.Task, error) {
	updated, err := c.base.UpdateTask(ctx, t)
	if err != nil {
		return domain.Task{}, err
	}
	c.evict(ctx, tasksKey)
	return updated, nil
}

func (c *Cache) DeleteTask(ctx context.Context, id int64) error {
	if err := c.base.DeleteTask(ctx, id); err != nil {
		return err
	}
	c.evict(ctx, tasksKey)
	return nil
}

func (c *Cache) ListHabits(ctx context.Context) ([]domain.Habit, error) {
	return listThrough(ctx, c, habitsKey, c.base.ListHabits)
}

func (c *Cache) GetHabit(ctx context.Context, id int64) (domain.Habit, error) {
	return c.base.GetHabit(ctx, id)
}

func (c *Cache) InsertHabit(ctx context.Context, h domain.Habit) (domain.Habit, error) {
	created, err := c.base.InsertHabit(ctx, h)
	if err != nil {
		return domain.Habit{}, err
	}
	c.evict(ctx, habitsKey)
	return created, nil
}

func (c *Cache) UpdateHabit(ctx context.Context, h domain.Habit) (domain.Habit, error) {
	updated, err := c.base.UpdateHabit(ctx, h)
	if err != nil {
		return domain.Habit{}, err
	}
	c.evict(ctx, habitsKey)
	return updated, nil
}

func (c *Cache) DeleteHabit(ctx context.Context, id int64) error {
	if err := c.base.DeleteHabit(ctx, id); err != nil {
		return err
	}
	c.evict(ctx, habitsKey)
	return nil
}

func (c *Cache) ListGoals(ctx context.Context) ([]domain.Goal, error) {
	return listThrough(ctx, c, goalsKey, c.base.ListGoals)
}

func (c *Cache) GetGoal(ctx context.Context, id int64) (domain.Goal, error) {
	return c.base.GetGoal(ctx, id)
}

func (c *Cache) InsertGoal(ctx context.Context, g domain.Goal) (domain.Goal, error) {
	created, err := c.base.InsertGoal(ctx, g)
	if err != nil {
		return domain.Goal{}, err
	}
	c.evict(ctx, goalsKey)
	return created, nil
}

func (c *Cache) UpdateGoal(ctx context.Context, g domain.Goal) (domain.Goal, error) {
	updated, err := c.base.UpdateGoal(ctx, g)
	if err != nil {
		return domain.Goal{}, err
	}
	c.evict(ctx, goalsKey)
	return updated, nil
}

func (c *Cache) DeleteGoal(ctx context.Context, id int64) error {
	if err := c.base.DeleteGoal(ctx, id); err != nil {
		return err
	}
	c.evict(ctx, goalsKey)
	return nil
}

func (c *Cache) ListEvents(ctx context.Context) ([]domain.Event, error) {
	return listThrough(ctx, c, eventsKey, c.base.ListEvents)
}

func (c *Cache) GetEvent(ctx context.Context, id int64) (domain.Event, error) {
	return c.base.GetEvent(ctx, id)
}

func (c *Cache) InsertEvent(ctx context.Context, e domain.Event) (domain.Event, error) {
	created, err := c.base.InsertEvent(ctx, e)
	if err != nil {
		return domain.Event{}, err
	}
	c.evict(ctx, eventsKey)
	return created, nil
}

func (c *Cache) UpdateEvent(ctx context.Context, e domain.Event) (domain.Event, error) {
	updated, err := c.base.UpdateEvent(ctx, e)
	if err != nil {
		return domain.Event{}, err
	}
	c.evict(ctx, eventsKey)
	return updated, nil
}

func (c *Cache) DeleteEvent(ctx context.Context, id int64) error {
	if err := c.base.DeleteEvent(ctx, id); err != nil {
		return err
	}
	c.evict(ctx, eventsKey)
	return nil
}

// Ping reports the health of the backing store, not of Redis: a cold or
// absent cache is degraded performance, not an outage.
func (c *Cache) Ping(ctx context.Context) error {
	return c.base.Ping(ctx)
}
