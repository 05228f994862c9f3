// Package engine reconstructs per-market positions and PnL from raw fill
// streams. It is pure computation: no I/O, no shared state, no error paths.
// Malformed fills are absorbed by the defaulting rules in pkg/types rather
// than rejected, so the replay is total over whatever fill set the retrieval
// layer hands it, including partial sets from failed pagination.
package engine

import (
	"sort"

	"github.com/mselser95/polymarket-pnl/pkg/types"
)

// Snapshot records the running position after one fill is applied. One
// snapshot per fill, numbered from 1, forms the market's audit trail.
type Snapshot struct {
	TradeNumber int
	Fill        types.Fill

	YesBuyShares  float64
	YesBuyCost    float64
	YesSellShares float64
	YesSellCost   float64
	NoBuyShares   float64
	NoBuyCost     float64
	NoSellShares  float64
	NoSellCost    float64

	YesExposure float64
	NoExposure  float64
}

// Stats is the terminal per-market output of a replay.
type Stats struct {
	TradeCount int

	YesBuyShares  float64
	YesBuyCost    float64
	YesSellShares float64
	YesSellCost   float64
	NoBuyShares   float64
	NoBuyCost     float64
	NoSellShares  float64
	NoSellCost    float64

	YesExposure float64
	NoExposure  float64

	TotalSpent float64
	FinalValue float64
	PnL        float64
	PnLPercent float64

	// First/LastTrade are unix seconds of the chronologically first and
	// last fill. Meaningful only when TradeCount > 0.
	FirstTrade int64
	LastTrade  int64
}

// MarketReport bundles everything the exporter needs for one market.
type MarketReport struct {
	Slug       string
	Resolution types.Resolution
	Stats      Stats

	// Fills is the time-sorted fill sequence the replay consumed.
	Fills []types.Fill

	// Trail is the per-fill audit trail, parallel to Fills.
	Trail []Snapshot
}

// Replay reconstructs one market's position from an unordered fill set.
//
// Fills are ordered by timestamp with a stable sort (arrival order breaks
// ties; the upstream data carries no secondary ordering key), the resolution
// is inferred from the chronologically last fill, and a single forward pass
// accumulates the four (shares, cost) buckets and both exposure counters,
// snapshotting after every fill.
func Replay(slug string, fills []types.Fill) *MarketReport {
	sorted := make([]types.Fill, len(fills))
	copy(sorted, fills)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp < sorted[j].Timestamp
	})

	resolution := InferResolution(sorted)

	report := &MarketReport{
		Slug:       slug,
		Resolution: resolution,
		Fills:      sorted,
		Trail:      make([]Snapshot, 0, len(sorted)),
	}

	var st Stats
	for i := range sorted {
		f := &sorted[i]
		cost := f.Cost()

		switch {
		case f.IsBuy() && f.IsYes():
			st.YesBuyShares += f.Size
			st.YesBuyCost += cost
			st.YesExposure += f.Size
		case f.IsBuy():
			st.NoBuyShares += f.Size
			st.NoBuyCost += cost
			st.NoExposure += f.Size
		case f.IsYes():
			st.YesSellShares += f.Size
			st.YesSellCost += cost
			st.YesExposure -= f.Size
		default:
			st.NoSellShares += f.Size
			st.NoSellCost += cost
			st.NoExposure -= f.Size
		}

		report.Trail = append(report.Trail, Snapshot{
			TradeNumber:   i + 1,
			Fill:          *f,
			YesBuyShares:  st.YesBuyShares,
			YesBuyCost:    st.YesBuyCost,
			YesSellShares: st.YesSellShares,
			YesSellCost:   st.YesSellCost,
			NoBuyShares:   st.NoBuyShares,
			NoBuyCost:     st.NoBuyCost,
			NoSellShares:  st.NoSellShares,
			NoSellCost:    st.NoSellCost,
			YesExposure:   st.YesExposure,
			NoExposure:    st.NoExposure,
		})
	}

	st.TradeCount = len(sorted)
	if st.TradeCount > 0 {
		st.FirstTrade = sorted[0].Timestamp
		st.LastTrade = sorted[len(sorted)-1].Timestamp
	}

	st.TotalSpent = (st.YesBuyCost - st.YesSellCost) + (st.NoBuyCost - st.NoSellCost)

	// Each winning share settles at exactly 1 unit. Unresolved markets are
	// conservatively marked to zero, not to last traded price.
	switch resolution {
	case types.ResolutionYes:
		st.FinalValue = st.YesExposure * 1.0
	case types.ResolutionNo:
		st.FinalValue = st.NoExposure * 1.0
	default:
		st.FinalValue = 0
	}

	st.PnL = st.FinalValue - st.TotalSpent
	if st.TotalSpent > 0 {
		st.PnLPercent = st.PnL / st.TotalSpent * 100
	}

	report.Stats = st

	MarketsReplayedTotal.Inc()
	FillsReplayedTotal.Add(float64(len(sorted)))

	return report
}
