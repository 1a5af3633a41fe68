package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ============================================
// PROMETHEUS METRICS
// ============================================

var (
	// CacheHits counts cache lookups served without touching Postgres,
	// labeled by the logical cache they hit.
	CacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pulse_cache_hits_total",
		Help: "Cache lookups answered from Redis.",
	}, []string{"cache"})

	// CacheMisses counts cache lookups that fell through to Postgres.
	CacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pulse_cache_misses_total",
		Help: "Cache lookups that fell through to the database.",
	}, []string{"cache"})

	// SuggestionsServed counts users returned by the suggestion pipeline.
	SuggestionsServed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pulse_suggestions_served_total",
		Help: "Suggested users returned to viewers.",
	})

	// SharesRecorded counts share events by platform.
	SharesRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pulse_shares_recorded_total",
		Help: "Post share events recorded.",
	}, []string{"platform"})

	// HackerNewsItemsUpserted counts feed items written during sync runs.
	HackerNewsItemsUpserted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pulse_hackernews_items_upserted_total",
		Help: "Hacker News feed items inserted or refreshed.",
	})
)
