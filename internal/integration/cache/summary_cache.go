// Package cache implements Redis-backed caches for read-heavy endpoints.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/lopesbrenda/FinApp/internal/application/adapter"
)

// summaryCache implements the adapter.SummaryCache interface on Redis.
type summaryCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSummaryCache creates a new summary cache instance.
func NewSummaryCache(client *redis.Client, ttl time.Duration) adapter.SummaryCache {
	return &summaryCache{
		client: client,
		ttl:    ttl,
	}
}

func summaryKey(userID uuid.UUID) string {
	return "dashboard:summary:" + userID.String()
}

// Get returns the cached summary payload for a user, or nil on miss.
func (c *summaryCache) Get(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	payload, err := c.client.Get(ctx, summaryKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return payload, nil
}

// Set stores the summary payload for a user with the configured TTL.
func (c *summaryCache) Set(ctx context.Context, userID uuid.UUID, payload []byte) error {
	return c.client.Set(ctx, summaryKey(userID), payload, c.ttl).Err()
}

// Invalidate drops the cached summary for a user.
func (c *summaryCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	return c.client.Del(ctx, summaryKey(userID)).Err()
}
