package watchlist

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"complyd/internal/domain"
	"complyd/internal/watchlist/store"
)

type countingCache struct {
	inner *store.InMemoryCache
	gets  int
	puts  int
	fail  bool
}

func (c *countingCache) Get(ctx context.Context, entityName, country string) (*store.CachedRun, error) {
	c.gets++
	if c.fail {
		return nil, errors.New("cache unavailable")
	}
	return c.inner.Get(ctx, entityName, country)
}

func (c *countingCache) Put(ctx context.Context, run store.CachedRun) error {
	c.puts++
	if c.fail {
		return errors.New("cache unavailable")
	}
	return c.inner.Put(ctx, run)
}

func newCountedScreener(t *testing.T) (*CachedScreener, *countingCache, *fakeLookup) {
	t.Helper()

	lookups := make([]Lookup, 0, 7)
	var first *fakeLookup
	for _, name := range domain.AllWatchlists() {
		l := &fakeLookup{name: name}
		if first == nil {
			first = l
		}
		lookups = append(lookups, l)
	}
	cache := &countingCache{inner: store.NewInMemoryCache(time.Minute)}
	return NewCachedScreener(New(lookups), cache, nil), cache, first
}

func TestCachedScreenerServesRepeatFromCache(t *testing.T) {
	screener, cache, first := newCountedScreener(t)
	ctx := context.Background()

	results, err := screener.Screen(ctx, "Helvetia Precision AG", "CH")
	require.NoError(t, err)
	require.Len(t, results, 7)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 1, cache.puts)

	again, err := screener.Screen(ctx, "helvetia precision ag", "ch")
	require.NoError(t, err)
	require.Len(t, again, 7)
	assert.Equal(t, 1, first.calls, "second screen should not hit the lists")
	assert.Equal(t, 2, cache.gets)
}

func TestCachedScreenerDegradedCacheFallsThrough(t *testing.T) {
	screener, cache, first := newCountedScreener(t)
	cache.fail = true
	ctx := context.Background()

	results, err := screener.Screen(ctx, "Helvetia Precision AG", "CH")
	require.NoError(t, err)
	require.Len(t, results, 7)
	assert.Equal(t, 1, first.calls)

	_, err = screener.Screen(ctx, "Helvetia Precision AG", "CH")
	require.NoError(t, err)
	assert.Equal(t, 2, first.calls, "cache failure forces a live run")
}
