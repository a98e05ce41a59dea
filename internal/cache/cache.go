// Package cache is a small read-through cache for catalog queries,
// backed by redis. A nil *Cache is valid and disables caching entirely,
// so the catalog service never has to branch on deployment shape.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultTTL = 2 * time.Minute

type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New connects to redis. An empty URL returns (nil, nil): caching off.
func New(redisURL string) (*Cache, error) {
	if redisURL == "" {
		return nil, nil
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Cache{client: client, ttl: defaultTTL}, nil
}

// GetJSON loads the cached value into dest. A miss, a decode failure, or
// a nil cache all report false; callers fall through to the database.
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) bool {
	if c == nil {
		return false
	}
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(data, dest) == nil
}

// SetJSON stores the value under key with the cache TTL. Errors are
// dropped: a broken cache must never fail a read path.
func (c *Cache) SetJSON(ctx context.Context, key string, v any) {
	if c == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	c.client.Set(ctx, key, data, c.ttl)
}

// InvalidatePrefix drops every key under the given prefix. Used after
// admin writes to the catalog.
func (c *Cache) InvalidatePrefix(ctx context.Context, prefix string) {
	if c == nil {
		return
	}
	iter := c.client.Scan(ctx, 0, prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		c.client.Del(ctx, iter.Val())
	}
}
