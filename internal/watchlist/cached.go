package watchlist

import (
	"context"
	"log/slog"
	"time"

	"complyd/internal/domain"
	"complyd/internal/watchlist/store"
)

// CachedScreener serves repeat screenings of an unchanged entity from the
// cache. Cache failures fall through to a live run; a degraded cache never
// blocks screening.
type CachedScreener struct {
	screener *Screener
	cache    store.Cache
	logger   *slog.Logger
	now      func() time.Time
}

func NewCachedScreener(screener *Screener, cache store.Cache, logger *slog.Logger) *CachedScreener {
	if logger == nil {
		logger = slog.Default()
	}
	return &CachedScreener{
		screener: screener,
		cache:    cache,
		logger:   logger,
		now:      time.Now,
	}
}

func (c *CachedScreener) Screen(ctx context.Context, entityName, country string) ([]domain.WatchlistResult, error) {
	if c.cache != nil {
		run, err := c.cache.Get(ctx, entityName, country)
		if err != nil {
			c.logger.Warn("screening cache read failed", "error", err)
		} else if run != nil {
			return run.Results, nil
		}
	}

	results, err := c.screener.Screen(ctx, entityName, country)
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		put := store.CachedRun{
			EntityName: entityName,
			Country:    country,
			Results:    results,
			ScreenedAt: c.now().UTC(),
		}
		if err := c.cache.Put(ctx, put); err != nil {
			c.logger.Warn("screening cache write failed", "error", err)
		}
	}
	return results, nil
}
