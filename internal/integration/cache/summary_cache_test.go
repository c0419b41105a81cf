package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

func newTestCache(t *testing.T, ttl time.Duration) (*miniredis.Miniredis, *summaryCache) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return mr, &summaryCache{client: client, ttl: ttl}
}

func TestSummaryCache(t *testing.T) {
	ctx := context.Background()

	t.Run("get on empty cache is a miss, not an error", func(t *testing.T) {
		_, c := newTestCache(t, time.Minute)

		payload, err := c.Get(ctx, uuid.New())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if payload != nil {
			t.Errorf("expected nil payload, got %q", payload)
		}
	})

	t.Run("set then get round-trips the payload", func(t *testing.T) {
		_, c := newTestCache(t, time.Minute)
		userID := uuid.New()

		if err := c.Set(ctx, userID, []byte(`{"totalSaved":150}`)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		payload, err := c.Get(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(payload) != `{"totalSaved":150}` {
			t.Errorf("unexpected payload %q", payload)
		}
	})

	t.Run("entries are scoped per user", func(t *testing.T) {
		_, c := newTestCache(t, time.Minute)
		userID := uuid.New()

		if err := c.Set(ctx, userID, []byte("a")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		payload, err := c.Get(ctx, uuid.New())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if payload != nil {
			t.Errorf("expected miss for other user, got %q", payload)
		}
	})

	t.Run("invalidate drops the entry", func(t *testing.T) {
		_, c := newTestCache(t, time.Minute)
		userID := uuid.New()

		if err := c.Set(ctx, userID, []byte("a")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := c.Invalidate(ctx, userID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		payload, err := c.Get(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if payload != nil {
			t.Errorf("expected miss after invalidation, got %q", payload)
		}
	})

	t.Run("entries expire after the TTL", func(t *testing.T) {
		mr, c := newTestCache(t, 30*time.Second)
		userID := uuid.New()

		if err := c.Set(ctx, userID, []byte("a")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		mr.FastForward(31 * time.Second)

		payload, err := c.Get(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if payload != nil {
			t.Errorf("expected miss after TTL, got %q", payload)
		}
	})
}
