package memory

import (
	"bytes"
	"context"
	"testing"
	"time"
)

func TestMemoryCache_SetAndGet(t *testing.T) {
	cache := NewMemoryCache()
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

func TestMemoryCache_GetAbsentKey(t *testing.T) {
	cache := NewMemoryCache()

	got, err := cache.Get(context.Background(), "missing")
	if err != nil {
		t.Fatalf("absent key should not be an error, got %v", err)
	}
	if got != nil {
		t.Errorf("absent key should return nil, got %q", got)
	}
}

func TestMemoryCache_GetReturnsCopy(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	value := []byte("original")
	_ = cache.Set(ctx, "key", value, time.Hour)

	first, _ := cache.Get(ctx, "key")
	first[0] = 'X'

	second, _ := cache.Get(ctx, "key")
	if !bytes.Equal(second, []byte("original")) {
		t.Error("mutating a returned value should not affect the stored one")
	}
}

func TestMemoryCache_IsExpired(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	if !cache.IsExpired(ctx, "never-set") {
		t.Error("a key with no TTL record should report expired")
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

func TestMemoryCache_ExpiredValueStaysReadable(t *testing.T) {
	cache := NewMemoryCache()
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

func TestMemoryCache_Clear(t *testing.T) {
	cache := NewMemoryCache()
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

func TestMemoryCache_ClearAbsentKey(t *testing.T) {
	cache := NewMemoryCache()

	if err := cache.Clear(context.Background(), "missing"); err != nil {
		t.Errorf("clearing an absent key should not be an error, got %v", err)
	}
}

func TestMemoryCache_CancelledContext(t *testing.T) {
	cache := NewMemoryCache()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := cache.Get(ctx, "key"); err == nil {
		t.Error("Get with a cancelled context should fail")
	}
	if err := cache.Set(ctx, "key", []byte("v"), time.Hour); err == nil {
		t.Error("Set with a cancelled context should fail")
	}
	if err := cache.Clear(ctx, "key"); err == nil {
		t.Error("Clear with a cancelled context should fail")
	}
}
