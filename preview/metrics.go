package preview

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cacheHitsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "recipeshelf_preview",
			Name:      "cache_hits_total",
			Help:      "Lookups served from an existing cache slot.",
		},
	)

	cacheMissesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "recipeshelf_preview",
			Name:      "cache_misses_total",
			Help:      "Lookups that created a new cache slot and fetch.",
		},
	)
)
