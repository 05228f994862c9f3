// Package fetch fans the market universe out across the resolver and the
// fill retriever with a bounded worker pool, and aggregates the tagged fills
// per market.
package fetch

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/mselser95/polymarket-pnl/internal/gamma"
	"github.com/mselser95/polymarket-pnl/pkg/types"
)

// progressLogEvery is how many completed markets between progress log lines.
const progressLogEvery = 20

// Resolver maps a market slug to its condition identifier.
type Resolver interface {
	ResolveCondition(ctx context.Context, slug string) (string, error)
}

// FillSource returns a wallet's fills for one market. Implementations may
// return partial fills together with a non-nil error; the orchestrator keeps
// whatever was retrieved.
type FillSource interface {
	FetchFills(ctx context.Context, user, conditionID string) ([]types.Fill, error)
}

// Orchestrator coordinates per-market retrieval across a worker pool. The
// pool bound respects upstream rate limits; pagination within one market
// stays sequential inside the FillSource.
type Orchestrator struct {
	resolver Resolver
	fills    FillSource
	workers  int
	logger   *zap.Logger

	total            atomic.Int64
	completed        atomic.Int64
	marketsWithFills atomic.Int64
	fillCount        atomic.Int64
}

// New creates a new orchestrator with the given worker bound.
func New(resolver Resolver, fills FillSource, workers int, logger *zap.Logger) *Orchestrator {
	return &Orchestrator{
		resolver: resolver,
		fills:    fills,
		workers:  workers,
		logger:   logger,
	}
}

// Result is the aggregated outcome of one retrieval run: an owned, growable
// fill sequence per market slug, consumed exactly once by the replay engine.
type Result struct {
	FillsBySlug map[string][]types.Fill
	TotalFills  int
}

// ProgressSnapshot is a point-in-time view of retrieval progress.
type ProgressSnapshot struct {
	TotalMarkets     int64 `json:"total_markets"`
	CompletedMarkets int64 `json:"completed_markets"`
	MarketsWithFills int64 `json:"markets_with_fills"`
	Fills            int64 `json:"fills"`
}

// Progress returns the current retrieval progress. Safe to call from other
// goroutines while Fetch runs.
func (o *Orchestrator) Progress() ProgressSnapshot {
	return ProgressSnapshot{
		TotalMarkets:     o.total.Load(),
		CompletedMarkets: o.completed.Load(),
		MarketsWithFills: o.marketsWithFills.Load(),
		Fills:            o.fillCount.Load(),
	}
}

type marketFills struct {
	slug  string
	fills []types.Fill
}

// Fetch retrieves the wallet's fills for every slug and groups them by
// market. Markets the resolver cannot find are skipped entirely; retrieval
// failures keep already-fetched pages. The returned map only contains slugs
// that produced at least one fill, and every fill set in it is complete as
// far as the upstream allowed — the engine never sees a market mid-pagination.
func (o *Orchestrator) Fetch(ctx context.Context, user string, slugs []string) *Result {
	o.total.Store(int64(len(slugs)))
	o.completed.Store(0)
	o.marketsWithFills.Store(0)
	o.fillCount.Store(0)

	o.logger.Info("retrieval-starting",
		zap.String("wallet", user),
		zap.Int("markets", len(slugs)),
		zap.Int("workers", o.workers))

	jobs := make(chan string)
	results := make(chan marketFills)

	var wg sync.WaitGroup
	for w := 0; w < o.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for slug := range jobs {
				results <- marketFills{slug: slug, fills: o.fetchMarket(ctx, user, slug)}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, slug := range slugs {
			select {
			case jobs <- slug:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	result := &Result{FillsBySlug: make(map[string][]types.Fill)}
	for mf := range results {
		o.noteCompleted(len(slugs))

		if len(mf.fills) == 0 {
			continue
		}

		o.marketsWithFills.Add(1)
		o.fillCount.Add(int64(len(mf.fills)))
		result.FillsBySlug[mf.slug] = mf.fills
		result.TotalFills += len(mf.fills)
	}

	o.logger.Info("retrieval-complete",
		zap.Int("markets-scanned", len(slugs)),
		zap.Int("markets-with-fills", len(result.FillsBySlug)),
		zap.Int("fills", result.TotalFills))

	return result
}

// fetchMarket resolves one slug and drains its fill pagination. All errors
// are absorbed here: they shrink the result to whatever was retrieved rather
// than propagating into the engine.
func (o *Orchestrator) fetchMarket(ctx context.Context, user, slug string) []types.Fill {
	MarketsScannedTotal.Inc()

	conditionID, err := o.resolver.ResolveCondition(ctx, slug)
	if err != nil {
		if errors.Is(err, gamma.ErrMarketNotFound) {
			o.logger.Debug("market-not-listed", zap.String("slug", slug))
		} else {
			o.logger.Warn("condition-lookup-failed",
				zap.String("slug", slug),
				zap.Error(err))
		}
		MarketsSkippedTotal.Inc()
		return nil
	}

	fills, err := o.fills.FetchFills(ctx, user, conditionID)
	if err != nil {
		// Partial pages are kept: better an incomplete replay than none.
		o.logger.Warn("fill-retrieval-failed",
			zap.String("slug", slug),
			zap.Int("fills-kept", len(fills)),
			zap.Error(err))
	}

	for i := range fills {
		fills[i].MarketSlug = slug
	}

	return fills
}

func (o *Orchestrator) noteCompleted(total int) {
	completed := o.completed.Add(1)
	if completed%progressLogEvery == 0 || completed == int64(total) {
		o.logger.Info("retrieval-progress",
			zap.Int64("completed", completed),
			zap.Int("total", total),
			zap.Int64("markets-with-fills", o.marketsWithFills.Load()),
			zap.Int64("fills", o.fillCount.Load()))
	}
}
