package trades

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

//nolint:gochecknoglobals // Prometheus metrics
var (
	// PagesFetchedTotal tracks data API pages retrieved.
	PagesFetchedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "polymarket_pnl_trades_pages_total",
		Help: "Total number of data API trade pages fetched",
	})

	// FillsFetchedTotal tracks fills retrieved across all markets.
	FillsFetchedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "polymarket_pnl_trades_fills_total",
		Help: "Total number of fills fetched from the data API",
	})

	// FetchErrorsTotal tracks failed page fetches.
	FetchErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "polymarket_pnl_trades_fetch_errors_total",
		Help: "Total number of failed data API page fetches",
	})

	// FetchDurationSeconds tracks data API request latency.
	FetchDurationSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "polymarket_pnl_trades_fetch_duration_seconds",
		Help:    "Duration of data API trade page requests",
		Buckets: prometheus.DefBuckets,
	})
)
