package fetch

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

//nolint:gochecknoglobals // Prometheus metrics
var (
	// MarketsScannedTotal tracks markets handed to the worker pool.
	MarketsScannedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "polymarket_pnl_fetch_markets_scanned_total",
		Help: "Total number of candidate markets scanned",
	})

	// MarketsSkippedTotal tracks markets skipped because the resolver
	// found no condition id.
	MarketsSkippedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "polymarket_pnl_fetch_markets_skipped_total",
		Help: "Total number of markets skipped during condition lookup",
	})
)
