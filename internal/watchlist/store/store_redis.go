package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "complyd:screening:"

// RedisCache persists screening runs in Redis with TTL-based expiry so
// multiple instances share one cache.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context, entityName, country string) (*CachedRun, error) {
	raw, err := c.client.Get(ctx, keyPrefix+Key(entityName, country)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cached screening run: %w", err)
	}

	var run CachedRun
	if err := json.Unmarshal(raw, &run); err != nil {
		// A corrupt entry is treated as a miss; the next Put overwrites it.
		return nil, nil
	}
	return &run, nil
}

func (c *RedisCache) Put(ctx context.Context, run CachedRun) error {
	raw, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("marshal screening run: %w", err)
	}
	if err := c.client.Set(ctx, keyPrefix+Key(run.EntityName, run.Country), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache screening run: %w", err)
	}
	return nil
}
