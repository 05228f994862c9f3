package report

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

//nolint:gochecknoglobals // Prometheus metrics
var (
	// ReportsWrittenTotal tracks JSON report files written to disk.
	ReportsWrittenTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "polymarket_pnl_reports_written_total",
		Help: "Total number of market report files written",
	})
)
