// Package store caches the most recent screening run per entity so repeat
// checks against an unchanged entity avoid re-querying every list.
package store

import (
	"context"
	"strings"
	"time"

	"complyd/internal/domain"
)

// CachedRun is a stored screening output with the time it was produced.
type CachedRun struct {
	EntityName string                   `json:"entity_name"`
	Country    string                   `json:"country"`
	Results    []domain.WatchlistResult `json:"results"`
	ScreenedAt time.Time                `json:"screened_at"`
}

// Cache stores and retrieves screening runs. A nil Cache is a valid "no
// caching" configuration at the call sites.
type Cache interface {
	Get(ctx context.Context, entityName, country string) (*CachedRun, error)
	Put(ctx context.Context, run CachedRun) error
}

// Key normalizes the entity identity used for cache addressing.
func Key(entityName, country string) string {
	norm := func(s string) string {
		return strings.ToLower(strings.Join(strings.Fields(s), " "))
	}
	return norm(entityName) + "|" + norm(country)
}
