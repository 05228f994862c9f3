package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

//nolint:gochecknoglobals // Prometheus metrics
var (
	ConditionHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "polymarket_pnl_condition_cache_hits_total",
		Help: "Total number of condition-id cache hits",
	})

	ConditionMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "polymarket_pnl_condition_cache_misses_total",
		Help: "Total number of condition-id cache misses",
	})

	ConditionSetsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "polymarket_pnl_condition_cache_sets_total",
		Help: "Total number of condition-id cache sets",
	})
)
