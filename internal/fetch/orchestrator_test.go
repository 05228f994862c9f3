package fetch

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/mselser95/polymarket-pnl/internal/gamma"
	"github.com/mselser95/polymarket-pnl/pkg/types"
)

type fakeResolver struct {
	mu         sync.Mutex
	conditions map[string]string
	err        error
}

func (f *fakeResolver) ResolveCondition(ctx context.Context, slug string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return "", f.err
	}

	conditionID, ok := f.conditions[slug]
	if !ok {
		return "", fmt.Errorf("%w: %s", gamma.ErrMarketNotFound, slug)
	}
	return conditionID, nil
}

type fakeFillSource struct {
	mu       sync.Mutex
	fills    map[string][]types.Fill
	err      error
	inFlight atomic.Int64
	maxSeen  atomic.Int64
}

func (f *fakeFillSource) FetchFills(ctx context.Context, user, conditionID string) ([]types.Fill, error) {
	current := f.inFlight.Add(1)
	defer f.inFlight.Add(-1)

	for {
		peak := f.maxSeen.Load()
		if current <= peak || f.maxSeen.CompareAndSwap(peak, current) {
			break
		}
	}

	time.Sleep(time.Millisecond)

	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fills[conditionID], f.err
}

func TestOrchestrator_Fetch_GroupsAndTags(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	resolver := &fakeResolver{conditions: map[string]string{
		"btc-updown-15m-1": "0xaaa",
		"eth-updown-15m-1": "0xbbb",
	}}
	source := &fakeFillSource{fills: map[string][]types.Fill{
		"0xaaa": {
			{Timestamp: 1, Side: "BUY", Outcome: "Up", Price: 0.4, Size: 10},
			{Timestamp: 2, Side: "SELL", Outcome: "Up", Price: 0.5, Size: 4},
		},
		"0xbbb": {
			{Timestamp: 3, Side: "BUY", Outcome: "Down", Price: 0.5, Size: 3},
		},
	}}

	o := New(resolver, source, 4, logger)
	result := o.Fetch(context.Background(), "0xwallet", []string{
		"btc-updown-15m-1",
		"eth-updown-15m-1",
		"btc-updown-15m-2", // not listed
	})

	if len(result.FillsBySlug) != 2 {
		t.Fatalf("expected 2 markets with fills, got %d", len(result.FillsBySlug))
	}

	if result.TotalFills != 3 {
		t.Errorf("expected 3 fills total, got %d", result.TotalFills)
	}

	for slug, fills := range result.FillsBySlug {
		for _, f := range fills {
			if f.MarketSlug != slug {
				t.Errorf("fill not tagged with slug: got %q, want %q", f.MarketSlug, slug)
			}
		}
	}
}

func TestOrchestrator_Fetch_SkipsUnresolvedMarkets(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	resolver := &fakeResolver{conditions: map[string]string{}}
	source := &fakeFillSource{}

	o := New(resolver, source, 2, logger)
	result := o.Fetch(context.Background(), "0xwallet", []string{"a", "b", "c"})

	// Unresolved markets never enter the per-market set, not even as
	// empty entries.
	if len(result.FillsBySlug) != 0 {
		t.Errorf("expected no markets, got %d", len(result.FillsBySlug))
	}
}

func TestOrchestrator_Fetch_KeepsPartialFillsOnError(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	resolver := &fakeResolver{conditions: map[string]string{"slug": "0xaaa"}}
	source := &fakeFillSource{
		fills: map[string][]types.Fill{
			"0xaaa": {{Timestamp: 1, Side: "BUY", Outcome: "Up", Price: 0.4, Size: 1}},
		},
		err: errors.New("pagination died"),
	}

	o := New(resolver, source, 1, logger)
	result := o.Fetch(context.Background(), "0xwallet", []string{"slug"})

	if len(result.FillsBySlug["slug"]) != 1 {
		t.Errorf("expected partial fills to be kept, got %d", len(result.FillsBySlug["slug"]))
	}
}

func TestOrchestrator_Fetch_RespectsWorkerBound(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	conditions := make(map[string]string)
	fills := make(map[string][]types.Fill)
	slugs := make([]string, 50)
	for i := range slugs {
		slug := fmt.Sprintf("slug-%d", i)
		conditionID := fmt.Sprintf("0x%d", i)
		slugs[i] = slug
		conditions[slug] = conditionID
		fills[conditionID] = []types.Fill{{Timestamp: int64(i), Side: "BUY", Outcome: "Up", Size: 1}}
	}

	resolver := &fakeResolver{conditions: conditions}
	source := &fakeFillSource{fills: fills}

	const workers = 5
	o := New(resolver, source, workers, logger)
	result := o.Fetch(context.Background(), "0xwallet", slugs)

	if len(result.FillsBySlug) != 50 {
		t.Errorf("expected 50 markets, got %d", len(result.FillsBySlug))
	}

	if peak := source.maxSeen.Load(); peak > workers {
		t.Errorf("observed %d concurrent fetches, bound is %d", peak, workers)
	}
}

func TestOrchestrator_Fetch_EmptyUniverse(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	o := New(&fakeResolver{}, &fakeFillSource{}, 4, logger)
	result := o.Fetch(context.Background(), "0xwallet", nil)

	if len(result.FillsBySlug) != 0 || result.TotalFills != 0 {
		t.Errorf("expected empty result, got %+v", result)
	}
}

func TestOrchestrator_Progress(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	resolver := &fakeResolver{conditions: map[string]string{"slug": "0xaaa"}}
	source := &fakeFillSource{fills: map[string][]types.Fill{
		"0xaaa": {{Timestamp: 1, Side: "BUY", Outcome: "Up", Size: 2}},
	}}

	o := New(resolver, source, 1, logger)
	o.Fetch(context.Background(), "0xwallet", []string{"slug", "missing"})

	progress := o.Progress()
	if progress.TotalMarkets != 2 {
		t.Errorf("TotalMarkets = %d, want 2", progress.TotalMarkets)
	}
	if progress.CompletedMarkets != 2 {
		t.Errorf("CompletedMarkets = %d, want 2", progress.CompletedMarkets)
	}
	if progress.MarketsWithFills != 1 {
		t.Errorf("MarketsWithFills = %d, want 1", progress.MarketsWithFills)
	}
	if progress.Fills != 1 {
		t.Errorf("Fills = %d, want 1", progress.Fills)
	}
}
