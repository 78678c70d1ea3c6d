package watchlist

import (
	"context"
	"strings"

	"complyd/internal/domain"
)

// Lookup checks one named list for an entity. Implementations must honor
// ctx cancellation; the screener bounds every call with a timeout.
type Lookup interface {
	Name() domain.WatchlistName
	Check(ctx context.Context, entityName, country string) (domain.WatchlistResult, error)
}

// Entry is one restricted party on a list.
type Entry struct {
	EntityName string
	Country    string
	Aliases    []string
	Program    string
}

// StaticProvider serves a list from an in-memory entries table. Production
// deployments swap in providers backed by the real list feeds; the matching
// contract stays the same.
type StaticProvider struct {
	name    domain.WatchlistName
	entries []Entry
}

func NewStaticProvider(name domain.WatchlistName, entries []Entry) *StaticProvider {
	return &StaticProvider{name: name, entries: entries}
}

func (p *StaticProvider) Name() domain.WatchlistName {
	return p.name
}

// Check performs a case-insensitive name match against entries and aliases.
// An exact name match scores 1.0, an alias match 0.9, a substring match
// restricted to the same country 0.75.
func (p *StaticProvider) Check(ctx context.Context, entityName, country string) (domain.WatchlistResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.WatchlistResult{}, err
	}

	needle := normalizeName(entityName)
	for _, entry := range p.entries {
		if normalizeName(entry.EntityName) == needle {
			return p.match(entry, 1.0, "exact name match"), nil
		}
		for _, alias := range entry.Aliases {
			if normalizeName(alias) == needle {
				return p.match(entry, 0.9, "alias match: "+alias), nil
			}
		}
		if sameCountry(entry.Country, country) && strings.Contains(normalizeName(entry.EntityName), needle) && needle != "" {
			return p.match(entry, 0.75, "partial name match in "+entry.Country), nil
		}
	}

	return domain.WatchlistResult{ListName: p.name, MatchFound: false}, nil
}

func (p *StaticProvider) match(entry Entry, confidence float64, reason string) domain.WatchlistResult {
	if entry.Program != "" {
		reason = reason + " (" + entry.Program + ")"
	}
	return domain.WatchlistResult{
		ListName:          p.name,
		MatchFound:        true,
		MatchedEntityName: entry.EntityName,
		MatchConfidence:   confidence,
		MatchReason:       reason,
	}
}

func normalizeName(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

func sameCountry(a, b string) bool {
	return a != "" && strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
