package sqlite

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"
)

func newTestCache(t *testing.T) *Client {
	t.Helper()

	cache, err := NewSQLiteCache(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("failed to create SQLite cache: %v", err)
	}
	t.Cleanup(func() { _ = cache.Close() })

	return cache
}

func TestSQLiteCache_SetAndGet(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	value := []byte(`{"hello":"world"}`)
	if err := cache.Set(ctx, "key", value, time.Hour); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	got, err := cache.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if !bytes.Equal(got, value) {
		t.Errorf("Get = %q, want %q", got, value)
	}
}

func TestSQLiteCache_GetAbsentKey(t *testing.T) {
	cache := newTestCache(t)

	got, err := cache.Get(context.Background(), "missing")
	if err != nil {
		t.Fatalf("absent key should not be an error, got %v", err)
	}
	if got != nil {
		t.Errorf("absent key should return nil, got %q", got)
	}
}

func TestSQLiteCache_SetOverwrites(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	_ = cache.Set(ctx, "key", []byte("first"), time.Hour)
	_ = cache.Set(ctx, "key", []byte("second"), time.Hour)

	got, _ := cache.Get(ctx, "key")
	if !bytes.Equal(got, []byte("second")) {
		t.Errorf("Get = %q, want the overwritten value", got)
	}
}

func TestSQLiteCache_IsExpired(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	if !cache.IsExpired(ctx, "never-set") {
		t.Error("a key with no row should report expired")
	}

	_ = cache.Set(ctx, "fresh", []byte("v"), time.Hour)
	if cache.IsExpired(ctx, "fresh") {
		t.Error("a freshly set key should not be expired")
	}

	_ = cache.Set(ctx, "stale", []byte("v"), -time.Second)
	if !cache.IsExpired(ctx, "stale") {
		t.Error("a key set with a negative ttl should be expired")
	}
}

func TestSQLiteCache_ExpiredValueStaysReadable(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	_ = cache.Set(ctx, "stale", []byte("still here"), -time.Second)

	got, err := cache.Get(ctx, "stale")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if !bytes.Equal(got, []byte("still here")) {
		t.Error("expiry must not remove the value; only Clear does")
	}
}

func TestSQLiteCache_Clear(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	_ = cache.Set(ctx, "key", []byte("v"), time.Hour)
	if err := cache.Clear(ctx, "key"); err != nil {
		t.Fatalf("Clear returned error: %v", err)
	}

	got, _ := cache.Get(ctx, "key")
	if got != nil {
		t.Error("Get after Clear should miss")
	}
	if !cache.IsExpired(ctx, "key") {
		t.Error("IsExpired after Clear should be true")
	}
}

func TestSQLiteCache_EmptyKeyErrors(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	if _, err := cache.Get(ctx, ""); err == nil {
		t.Error("Get with an empty key should fail")
	}
	if err := cache.Set(ctx, "", []byte("v"), time.Hour); err == nil {
		t.Error("Set with an empty key should fail")
	}
	if err := cache.Clear(ctx, ""); err == nil {
		t.Error("Clear with an empty key should fail")
	}
}

func TestSQLiteCache_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	ctx := context.Background()

	first, err := NewSQLiteCache(path)
	if err != nil {
		t.Fatalf("failed to create SQLite cache: %v", err)
	}
	_ = first.Set(ctx, "key", []byte("persisted"), time.Hour)
	_ = first.Close()

	second, err := NewSQLiteCache(path)
	if err != nil {
		t.Fatalf("failed to reopen SQLite cache: %v", err)
	}
	defer second.Close()

	got, err := second.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if !bytes.Equal(got, []byte("persisted")) {
		t.Error("values should survive reopening the database")
	}
	if second.IsExpired(ctx, "key") {
		t.Error("the TTL record should survive reopening the database")
	}
}
