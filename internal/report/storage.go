// Package report persists replay results: one structured record per market
// plus a console summary, with an optional postgres backend.
package report

import (
	"context"
	"time"

	"github.com/mselser95/polymarket-pnl/internal/engine"
)

// Storage is the interface for persisting per-market replay reports.
type Storage interface {
	// StoreReport persists one market's replay report.
	StoreReport(ctx context.Context, report *engine.MarketReport) error

	// Close closes the storage backend.
	Close() error
}

// RunInfo identifies one analyzer run; it is stamped on every export.
type RunInfo struct {
	ID          string
	Wallet      string
	DisplayName string
	MarketLabel string
	Hours       int
}

// formatTimestamp renders unix seconds in the export's local time format.
func formatTimestamp(ts int64) string {
	return time.Unix(ts, 0).Format("2006-01-02 15:04:05")
}
