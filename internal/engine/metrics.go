package engine

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

//nolint:gochecknoglobals // Prometheus metrics
var (
	// MarketsReplayedTotal tracks markets processed by the replay engine.
	MarketsReplayedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "polymarket_pnl_engine_markets_replayed_total",
		Help: "Total number of markets replayed",
	})

	// FillsReplayedTotal tracks fills consumed by the replay engine.
	FillsReplayedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "polymarket_pnl_engine_fills_replayed_total",
		Help: "Total number of fills replayed",
	})
)
