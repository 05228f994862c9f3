package gamma

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

//nolint:gochecknoglobals // Prometheus metrics
var (
	// LookupsTotal tracks completed slug lookups.
	LookupsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "polymarket_pnl_gamma_lookups_total",
		Help: "Total number of completed Gamma API slug lookups",
	})

	// LookupErrorsTotal tracks failed slug lookups.
	LookupErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "polymarket_pnl_gamma_lookup_errors_total",
		Help: "Total number of failed Gamma API slug lookups",
	})

	// LookupDurationSeconds tracks Gamma API request latency.
	LookupDurationSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "polymarket_pnl_gamma_lookup_duration_seconds",
		Help:    "Duration of Gamma API slug lookup requests",
		Buckets: prometheus.DefBuckets,
	})
)
