package types

import (
	"strings"
	"time"

	json "github.com/goccy/go-json"
)

// Fill sides as reported by the data API.
const (
	SideBuy  = "BUY"
	SideSell = "SELL"
)

// Fill represents a single executed trade leg from the Polymarket data API.
//
// Up/down markets encode the binary outcome as "Up"/"Down"; "Up" is the YES
// token. Fields the API omits take documented defaults rather than failing:
// side defaults to BUY, price and size to 0, and a missing outcome is treated
// as non-YES. These defaults must not change: downstream consumers of the
// export depend on them.
type Fill struct {
	Timestamp       int64   `json:"timestamp"`
	Side            string  `json:"side"`
	Outcome         string  `json:"outcome"`
	Price           float64 `json:"price"`
	Size            float64 `json:"size"`
	ProxyWallet     string  `json:"proxyWallet"`
	Asset           string  `json:"asset"`
	ConditionID     string  `json:"conditionId"`
	OutcomeIndex    int     `json:"outcomeIndex"`
	TransactionHash string  `json:"transactionHash"`

	// MarketSlug tags the fill with its originating market. It is assigned
	// by the retrieval orchestrator, not present in the API payload.
	MarketSlug string `json:"-"`
}

// UnmarshalJSON decodes a fill and applies the defaulting rules.
func (f *Fill) UnmarshalJSON(data []byte) error {
	type Alias Fill
	aux := (*Alias)(f)

	err := json.Unmarshal(data, aux)
	if err != nil {
		return err
	}

	if f.Side == "" {
		f.Side = SideBuy
	} else {
		f.Side = strings.ToUpper(f.Side)
	}

	return nil
}

// IsBuy reports whether the fill is a buy. Anything other than an explicit
// SELL counts as a buy, matching the historical export behavior.
func (f *Fill) IsBuy() bool {
	return f.Side != SideSell
}

// IsYes reports whether the fill concerns the YES outcome token ("Up").
func (f *Fill) IsYes() bool {
	return strings.EqualFold(f.Outcome, "up")
}

// HasKnownOutcome reports whether the outcome field names a tradeable side.
// Resolution inference requires a known outcome on the latest fill.
func (f *Fill) HasKnownOutcome() bool {
	o := strings.ToLower(f.Outcome)
	return o == "up" || o == "down"
}

// Cost returns the settlement-currency cost of the fill.
func (f *Fill) Cost() float64 {
	return f.Price * f.Size
}

// Time returns the fill's event time.
func (f *Fill) Time() time.Time {
	return time.Unix(f.Timestamp, 0)
}
