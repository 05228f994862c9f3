package engine

// RunSummary aggregates per-market statistics across one run. Unresolved
// markets contribute nothing: they are excluded from the PnL sum and from
// both sides of the win rate, not counted as losses.
type RunSummary struct {
	Markets  int
	Resolved int
	Wins     int
	TotalPnL float64
}

// Aggregate folds per-market reports into run totals.
func Aggregate(reports []*MarketReport) RunSummary {
	var summary RunSummary

	for _, report := range reports {
		summary.Markets++

		if !report.Resolution.Resolved() {
			continue
		}

		summary.Resolved++
		summary.TotalPnL += report.Stats.PnL
		if report.Stats.PnL > 0 {
			summary.Wins++
		}
	}

	return summary
}

// WinRate returns the share of resolved markets with positive PnL, in
// percent. ok is false when no market resolved and the rate is undefined.
func (s RunSummary) WinRate() (rate float64, ok bool) {
	if s.Resolved == 0 {
		return 0, false
	}
	return float64(s.Wins) / float64(s.Resolved) * 100, true
}
