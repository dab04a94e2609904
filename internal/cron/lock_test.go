package cron

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

type fakeLockStore struct {
	values map[string]string
}

func newFakeLockStore() *fakeLockStore {
	return &fakeLockStore{values: map[string]string{}}
}

func (s *fakeLockStore) SetNX(_ context.Context, key string, value any, _ time.Duration) (bool, error) {
	if _, ok := s.values[key]; ok {
		return false, nil
	}
	s.values[key] = value.(string)
	return true, nil
}

func (s *fakeLockStore) Get(_ context.Context, key string) (string, error) {
	val, ok := s.values[key]
	if !ok {
		return "", redis.Nil
	}
	return val, nil
}

func (s *fakeLockStore) Del(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(s.values, key)
	}
	return nil
}

func TestRedisLockAcquireRelease(t *testing.T) {
	ctx := context.Background()
	store := newFakeLockStore()

	lock, err := NewRedisLock(store, "cron:test", time.Minute)
	if err != nil {
		t.Fatalf("NewRedisLock: %v", err)
	}

	ok, err := lock.Acquire(ctx)
	if err != nil || !ok {
		t.Fatalf("first acquire: ok=%v err=%v", ok, err)
	}

	rival, err := NewRedisLock(store, "cron:test", time.Minute)
	if err != nil {
		t.Fatalf("NewRedisLock rival: %v", err)
	}
	if ok, err := rival.Acquire(ctx); err != nil || ok {
		t.Fatalf("rival acquire should fail: ok=%v err=%v", ok, err)
	}

	if err := lock.Release(ctx); err != nil {
		t.Fatalf("release: %v", err)
	}
	if ok, err := rival.Acquire(ctx); err != nil || !ok {
		t.Fatalf("acquire after release: ok=%v err=%v", ok, err)
	}
}

func TestRedisLockReleaseOnlyWhenOwned(t *testing.T) {
	ctx := context.Background()
	store := newFakeLockStore()

	lock, err := NewRedisLock(store, "cron:test", time.Minute)
	if err != nil {
		t.Fatalf("NewRedisLock: %v", err)
	}
	if ok, _ := lock.Acquire(ctx); !ok {
		t.Fatal("acquire failed")
	}

	// Simulate expiry followed by another replica taking the lock.
	store.values["cron:test"] = "someone-else"
	if err := lock.Release(ctx); err != nil {
		t.Fatalf("release with foreign owner: %v", err)
	}
	if store.values["cron:test"] != "someone-else" {
		t.Fatal("release deleted a lock it no longer owned")
	}

	// Releasing without ever acquiring is a no-op.
	idle, _ := NewRedisLock(store, "cron:test", time.Minute)
	if err := idle.Release(ctx); err != nil {
		t.Fatalf("idle release: %v", err)
	}
}
