// Package watchlist orchestrates restricted-party screening across the
// fixed set of seven named lists. Lookups run in parallel, each bounded by
// a timeout; a failed lookup degrades to a no-match result carrying the
// failure reason instead of aborting the batch. Output always contains one
// result per list, in canonical order.
package watchlist

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"complyd/internal/domain"
	"complyd/internal/watchlist/metrics"
	dErrors "complyd/pkg/domain-errors"
)

// Screener fans one entity out across every configured list.
type Screener struct {
	lookups []Lookup
	timeout time.Duration
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// Option configures the Screener.
type Option func(*Screener)

func WithTimeout(d time.Duration) Option {
	return func(s *Screener) {
		if d > 0 {
			s.timeout = d
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Screener) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Screener) {
		s.metrics = m
	}
}

// New creates a screener over the given lookups. Every list in
// domain.AllWatchlists must have exactly one lookup; missing lists surface
// as permanent lookup failures in the output rather than construction
// errors, so a partially configured deployment still screens what it can.
func New(lookups []Lookup, opts ...Option) *Screener {
	s := &Screener{
		lookups: lookups,
		timeout: 3 * time.Second,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Screen runs the entity against all seven lists. The returned slice always
// has one entry per list, in canonical order, regardless of how many
// lookups fail or time out.
func (s *Screener) Screen(ctx context.Context, entityName, country string) ([]domain.WatchlistResult, error) {
	if strings.TrimSpace(entityName) == "" {
		return nil, dErrors.NewWithFields(dErrors.CodeValidation, "entity name is required", []string{"entity_name"})
	}

	byName := make(map[domain.WatchlistName]Lookup, len(s.lookups))
	for _, l := range s.lookups {
		byName[l.Name()] = l
	}

	order := domain.AllWatchlists()
	results := make([]domain.WatchlistResult, len(order))

	g, gctx := errgroup.WithContext(ctx)
	for i, name := range order {
		lookup, ok := byName[name]
		if !ok {
			results[i] = failedResult(name, "no provider configured")
			s.recordFailure(name)
			continue
		}

		g.Go(func() error {
			results[i] = s.checkOne(gctx, lookup, entityName, country)
			return nil
		})
	}
	// Workers never return errors; failures are data.
	_ = g.Wait()

	return results, nil
}

func (s *Screener) checkOne(ctx context.Context, lookup Lookup, entityName, country string) domain.WatchlistResult {
	name := lookup.Name()
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	result, err := lookup.Check(ctx, entityName, country)
	if s.metrics != nil {
		s.metrics.LookupDuration.WithLabelValues(name.String()).Observe(time.Since(start).Seconds())
	}
	if err != nil {
		s.logger.WarnContext(ctx, "watchlist lookup failed",
			"list", name.String(),
			"error", err,
		)
		s.recordFailure(name)
		return failedResult(name, err.Error())
	}

	// Providers fill their own list name; enforce it anyway so a misbehaving
	// provider cannot shift the output ordering contract.
	result.ListName = name
	if result.MatchFound && s.metrics != nil {
		s.metrics.Matches.WithLabelValues(name.String()).Inc()
	}
	return result
}

func (s *Screener) recordFailure(name domain.WatchlistName) {
	if s.metrics != nil {
		s.metrics.LookupFailures.WithLabelValues(name.String()).Inc()
	}
}

func failedResult(name domain.WatchlistName, reason string) domain.WatchlistResult {
	return domain.WatchlistResult{
		ListName:    name,
		MatchFound:  false,
		MatchReason: "lookup failed: " + reason,
	}
}
