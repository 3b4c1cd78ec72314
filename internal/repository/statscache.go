package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// StatsCache is a small JSON cache in front of the dashboard aggregate
// queries. A nil client disables caching; callers fall through to the
// database on every miss.
type StatsCache struct {
	client *redis.Client
}

// NewStatsCache connects to Redis. An empty addr returns a disabled cache.
func NewStatsCache(addr string) *StatsCache {
	if addr == "" {
		return &StatsCache{}
	}
	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		// Degrade to uncached rather than failing startup.
		return &StatsCache{}
	}
	return &StatsCache{client: client}
}

// Enabled reports whether a Redis connection is available.
func (c *StatsCache) Enabled() bool {
	return c.client != nil
}

// Get retrieves a cached value into dest. Returns false on miss.
func (c *StatsCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	if c.client == nil {
		return false, nil
	}
	raw, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read cache key %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("failed to decode cache key %s: %w", key, err)
	}
	return true, nil
}

// Set stores a value under key with the given TTL.
func (c *StatsCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	if c.client == nil {
		return nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode cache key %s: %w", key, err)
	}
	if err := c.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write cache key %s: %w", key, err)
	}
	return nil
}

// Ping checks Redis health for the system status page.
func (c *StatsCache) Ping(ctx context.Context) error {
	if c.client == nil {
		return fmt.Errorf("redis not configured")
	}
	return c.client.Ping(ctx).Err()
}
