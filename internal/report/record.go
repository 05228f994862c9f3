package report

import (
	"math"

	"github.com/mselser95/polymarket-pnl/internal/engine"
)

// Record is the structured per-market export. Field names and rounding
// (shares to 2 decimals, currency to 4) are load-bearing: historical
// consumers of the JSON files parse this shape.
type Record struct {
	Slug       string        `json:"slug"`
	Wallet     string        `json:"wallet"`
	RunID      string        `json:"run_id"`
	ExportedAt string        `json:"exported_at"`
	Summary    RecordSummary `json:"summary"`
	Trades     []TradeDetail `json:"trades"`
}

// RecordSummary is the market-level summary block of a Record.
type RecordSummary struct {
	Resolution    string        `json:"resolution"`
	TotalTrades   int           `json:"total_trades"`
	TimeRange     TimeRange     `json:"time_range"`
	FinalPosition FinalPosition `json:"final_position"`
	Costs         Costs         `json:"costs"`
	PnL           PnL           `json:"pnl"`
}

// TimeRange bounds the market's fill activity. Timestamps are null when the
// market produced no fills.
type TimeRange struct {
	FirstTrade   string `json:"first_trade"`
	LastTrade    string `json:"last_trade"`
	FirstTradeTs *int64 `json:"first_trade_ts"`
	LastTradeTs  *int64 `json:"last_trade_ts"`
}

// FinalPosition is the terminal exposure per side.
type FinalPosition struct {
	RemainingYesShares float64 `json:"remaining_yes_shares"`
	RemainingNoShares  float64 `json:"remaining_no_shares"`
}

// Costs holds the four (shares, cost) accumulator pairs.
type Costs struct {
	YesBuyShares  float64 `json:"yes_buy_shares"`
	YesBuyCost    float64 `json:"yes_buy_cost"`
	YesSellShares float64 `json:"yes_sell_shares"`
	YesSellCost   float64 `json:"yes_sell_cost"`
	NoBuyShares   float64 `json:"no_buy_shares"`
	NoBuyCost     float64 `json:"no_buy_cost"`
	NoSellShares  float64 `json:"no_sell_shares"`
	NoSellCost    float64 `json:"no_sell_cost"`
}

// PnL is the market's final accounting.
type PnL struct {
	TotalSpent float64 `json:"total_spent"`
	FinalValue float64 `json:"final_value"`
	PnL        float64 `json:"pnl"`
	PnLPercent float64 `json:"pnl_percent"`
}

// TradeDetail is one audit-trail entry: the fill itself plus the running
// position after applying it.
type TradeDetail struct {
	TradeNumber int     `json:"trade_number"`
	Timestamp   int64   `json:"timestamp"`
	Datetime    string  `json:"datetime"`
	Action      string  `json:"action"`
	Outcome     string  `json:"outcome"`
	Price       float64 `json:"price"`
	PriceCents  float64 `json:"price_cents"`
	Shares      float64 `json:"shares"`
	CostUSD     float64 `json:"cost_usd"`

	RunningYesBuyShares  float64 `json:"running_yes_buy_shares"`
	RunningYesBuyCost    float64 `json:"running_yes_buy_cost"`
	RunningYesSellShares float64 `json:"running_yes_sell_shares"`
	RunningYesSellCost   float64 `json:"running_yes_sell_cost"`
	RunningNoBuyShares   float64 `json:"running_no_buy_shares"`
	RunningNoBuyCost     float64 `json:"running_no_buy_cost"`
	RunningNoSellShares  float64 `json:"running_no_sell_shares"`
	RunningNoSellCost    float64 `json:"running_no_sell_cost"`
	YesExposure          float64 `json:"yes_exposure"`
	NoExposure           float64 `json:"no_exposure"`

	TransactionHash string   `json:"transaction_hash"`
	Raw             RawTrade `json:"raw"`
}

// RawTrade preserves upstream identifiers for debugging.
type RawTrade struct {
	ProxyWallet  string `json:"proxyWallet"`
	Asset        string `json:"asset"`
	ConditionID  string `json:"conditionId"`
	OutcomeIndex int    `json:"outcomeIndex"`
}

// buildRecord converts a replay report into the export shape.
func buildRecord(run RunInfo, exportedAt string, r *engine.MarketReport) *Record {
	st := r.Stats

	record := &Record{
		Slug:       r.Slug,
		Wallet:     run.Wallet,
		RunID:      run.ID,
		ExportedAt: exportedAt,
		Summary: RecordSummary{
			Resolution:  string(r.Resolution),
			TotalTrades: st.TradeCount,
			TimeRange: TimeRange{
				FirstTrade: "N/A",
				LastTrade:  "N/A",
			},
			FinalPosition: FinalPosition{
				RemainingYesShares: round2(st.YesExposure),
				RemainingNoShares:  round2(st.NoExposure),
			},
			Costs: Costs{
				YesBuyShares:  round2(st.YesBuyShares),
				YesBuyCost:    round4(st.YesBuyCost),
				YesSellShares: round2(st.YesSellShares),
				YesSellCost:   round4(st.YesSellCost),
				NoBuyShares:   round2(st.NoBuyShares),
				NoBuyCost:     round4(st.NoBuyCost),
				NoSellShares:  round2(st.NoSellShares),
				NoSellCost:    round4(st.NoSellCost),
			},
			PnL: PnL{
				TotalSpent: round4(st.TotalSpent),
				FinalValue: round4(st.FinalValue),
				PnL:        round4(st.PnL),
				PnLPercent: round2(st.PnLPercent),
			},
		},
		Trades: make([]TradeDetail, 0, len(r.Trail)),
	}

	if st.TradeCount > 0 {
		first, last := st.FirstTrade, st.LastTrade
		record.Summary.TimeRange = TimeRange{
			FirstTrade:   formatTimestamp(first),
			LastTrade:    formatTimestamp(last),
			FirstTradeTs: &first,
			LastTradeTs:  &last,
		}
	}

	for _, snap := range r.Trail {
		f := snap.Fill

		outcome := "NO"
		if f.IsYes() {
			outcome = "YES"
		}

		record.Trades = append(record.Trades, TradeDetail{
			TradeNumber: snap.TradeNumber,
			Timestamp:   f.Timestamp,
			Datetime:    formatTimestamp(f.Timestamp),
			Action:      f.Side,
			Outcome:     outcome,
			Price:       round4(f.Price),
			PriceCents:  round2(f.Price * 100),
			Shares:      round2(f.Size),
			CostUSD:     round4(f.Cost()),

			RunningYesBuyShares:  round2(snap.YesBuyShares),
			RunningYesBuyCost:    round4(snap.YesBuyCost),
			RunningYesSellShares: round2(snap.YesSellShares),
			RunningYesSellCost:   round4(snap.YesSellCost),
			RunningNoBuyShares:   round2(snap.NoBuyShares),
			RunningNoBuyCost:     round4(snap.NoBuyCost),
			RunningNoSellShares:  round2(snap.NoSellShares),
			RunningNoSellCost:    round4(snap.NoSellCost),
			YesExposure:          round2(snap.YesExposure),
			NoExposure:           round2(snap.NoExposure),

			TransactionHash: f.TransactionHash,
			Raw: RawTrade{
				ProxyWallet:  f.ProxyWallet,
				Asset:        f.Asset,
				ConditionID:  f.ConditionID,
				OutcomeIndex: f.OutcomeIndex,
			},
		})
	}

	return record
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
