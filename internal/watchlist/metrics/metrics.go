package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks per-list screening behavior.
type Metrics struct {
	LookupDuration *prometheus.HistogramVec
	LookupFailures *prometheus.CounterVec
	Matches        *prometheus.CounterVec
}

func New() *Metrics {
	return &Metrics{
		LookupDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "complyd_watchlist_lookup_duration_seconds",
			Help:    "Duration of individual watchlist lookups",
			Buckets: prometheus.DefBuckets,
		}, []string{"list"}),
		LookupFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "complyd_watchlist_lookup_failures_total",
			Help: "Watchlist lookups that failed or timed out",
		}, []string{"list"}),
		Matches: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "complyd_watchlist_matches_total",
			Help: "Watchlist lookups that found a match",
		}, []string{"list"}),
	}
}
