package storage

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"planner-api/domain"
)

// stubBackend overrides only the methods a test exercises; anything else
// panics through the embedded nil interface.
type stubBackend struct {
	backend
	listTasksFn  func(ctx context.Context) ([]domain.Task, error)
	insertTaskFn func(ctx context.Context, t domain.Task) (domain.Task, error)
}

func (s *stubBackend) ListTasks(ctx context.Context) ([]domain.Task, error) {
	return s.listTasksFn(ctx)
}

func (s *stubBackend) InsertTask(ctx context.Context, t domain.Task) (domain.Task, error) {
	return s.insertTaskFn(ctx, t)
}

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestCacheListTasksMissThenHit(t *testing.T) {
	ctx := context.Background()
	expected := []domain.Task{{ID: 2, Title: "Essay", Category: "School", Priority: "High", Status: "pending"}}

	var calls int
	cache := NewCache(&stubBackend{
		listTasksFn: func(ctx context.Context) ([]domain.Task, error) {
			calls++
			return expected, nil
		},
	}, newTestRedis(t), time.Minute)

	for i := 0; i < 2; i++ {
		tasks, err := cache.ListTasks(ctx)
		if err != nil {
			t.Fatalf("list %d: %v", i, err)
		}
		if len(tasks) != 1 || tasks[0].ID != 2 || tasks[0].Title != "Essay" {
			t.Fatalf("list %d: unexpected result %+v", i, tasks)
		}
	}
	if calls != 1 {
		t.Fatalf("expected 1 backend call, got %d", calls)
	}
}

func TestCacheInsertEvictsList(t *testing.T) {
	ctx := context.Background()

	var listCalls int
	cache := NewCache(&stubBackend{
		listTasksFn: func(ctx context.Context) ([]domain.Task, error) {
			listCalls++
			return []domain.Task{}, nil
		},
		insertTaskFn: func(ctx context.Context, task domain.Task) (domain.Task, error) {
			task.ID = 1
			return task, nil
		},
	}, newTestRedis(t), time.Minute)

	if _, err := cache.ListTasks(ctx); err != nil {
		t.Fatalf("prime cache: %v", err)
	}
	if _, err := cache.InsertTask(ctx, domain.Task{Title: "x"}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if _, err := cache.ListTasks(ctx); err != nil {
		t.Fatalf("list after write: %v", err)
	}
	if listCalls != 2 {
		t.Fatalf("expected write to evict the cached list, backend calls = %d", listCalls)
	}
}

func TestCacheWithoutRedisFallsThrough(t *testing.T) {
	ctx := context.Background()

	var calls int
	cache := NewCache(&stubBackend{
		listTasksFn: func(ctx context.Context) ([]domain.Task, error) {
			calls++
			return []domain.Task{}, nil
		},
	}, nil, time.Minute)

	for i := 0; i < 2; i++ {
		if _, err := cache.ListTasks(ctx); err != nil {
			t.Fatalf("list: %v", err)
		}
	}
	if calls != 2 {
		t.Fatalf("expected every call to hit the backend, got %d", calls)
	}
}

func TestCacheSurvivesRedisOutage(t *testing.T) {
	ctx := context.Background()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	var calls int
	cache := NewCache(&stubBackend{
		listTasksFn: func(ctx context.Context) ([]domain.Task, error) {
			calls++
			return []domain.Task{{ID: 1, Title: "x"}}, nil
		},
	}, client, time.Minute)

	mr.Close()

	tasks, err := cache.ListTasks(ctx)
	if err != nil {
		t.Fatalf("list with redis down: %v", err)
	}
	if len(tasks) != 1 || calls != 1 {
		t.Fatalf("expected fallback to backend, tasks=%+v calls=%d", tasks, calls)
	}
}
