package engine

import "github.com/mselser95/polymarket-pnl/pkg/types"

// resolutionThreshold is the last-trade price above which the traded outcome
// token is assumed to be the winner.
const resolutionThreshold = 0.5

// InferResolution infers the settled side from the chronologically last fill.
// fills must already be sorted by timestamp ascending.
//
// A price at or above the threshold on a token signals that token won; a
// price below it implies the opposite token won. This trusts the last traded
// price instead of an authoritative oracle: a market whose last fill happened
// far from actual resolution time can be inferred wrong. Known accuracy
// caveat, kept for compatibility with historical exports.
func InferResolution(fills []types.Fill) types.Resolution {
	if len(fills) == 0 {
		return types.ResolutionPending
	}

	last := fills[len(fills)-1]
	if !last.HasKnownOutcome() {
		return types.ResolutionPending
	}

	winning := last.Price >= resolutionThreshold
	if last.IsYes() == winning {
		return types.ResolutionYes
	}
	return types.ResolutionNo
}
