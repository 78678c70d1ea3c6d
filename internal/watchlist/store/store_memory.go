package store

import (
	"context"
	"sync"
	"time"
)

// InMemoryCache keeps screening runs in process memory with a TTL. Suitable
// for tests and single-instance deployments.
type InMemoryCache struct {
	mu   sync.RWMutex
	runs map[string]CachedRun
	ttl  time.Duration
	now  func() time.Time
}

func NewInMemoryCache(ttl time.Duration) *InMemoryCache {
	return &InMemoryCache{
		runs: make(map[string]CachedRun),
		ttl:  ttl,
		now:  time.Now,
	}
}

func (c *InMemoryCache) Get(_ context.Context, entityName, country string) (*CachedRun, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	run, ok := c.runs[Key(entityName, country)]
	if !ok {
		return nil, nil
	}
	if c.ttl > 0 && c.now().Sub(run.ScreenedAt) > c.ttl {
		return nil, nil
	}
	return &run, nil
}

func (c *InMemoryCache) Put(_ context.Context, run CachedRun) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.runs[Key(run.EntityName, run.Country)] = run
	return nil
}
