// Package universe enumerates the candidate market slugs for a lookback
// window. Generation is a pure function of (now, lookback, cadence): slug
// construction mirrors Polymarket's up/down market naming and never consults
// the network, so the same inputs always produce the same sequence.
package universe

import (
	"fmt"
	"strings"
	"time"
)

// Cadence selects the market series recurrence period.
type Cadence string

const (
	// CadenceShort is the 15-minute up/down series.
	CadenceShort Cadence = "15m"
	// CadenceLong is the hourly up/down series.
	CadenceLong Cadence = "1h"
)

// Valid reports whether the cadence names a known market series.
func (c Cadence) Valid() bool {
	return c == CadenceShort || c == CadenceLong
}

// Label returns the human-readable market-type label used in output.
func (c Cadence) Label() string {
	if c == CadenceShort {
		return "15-min"
	}
	return "1-hour"
}

// OutputDir returns the per-cadence export subdirectory name.
func (c Cadence) OutputDir() string {
	if c == CadenceShort {
		return "15m-market"
	}
	return "1hr-market"
}

const shortWindowSeconds = 900

// Tracked underlying assets, one slug per asset per window.
var shortAssets = []string{"btc", "eth"}
var longAssets = []string{"bitcoin", "ethereum"}

// Generate returns the candidate slugs for the given lookback, most recent
// window first. lookbackHours <= 0 yields an empty sequence.
func Generate(now time.Time, lookbackHours int, cadence Cadence) []string {
	switch cadence {
	case CadenceLong:
		return generateHourly(now, lookbackHours)
	default:
		return generateQuarterHour(now, lookbackHours)
	}
}

// generateQuarterHour emits slugs for 900-second windows aligned to absolute
// epoch boundaries, e.g. btc-updown-15m-1700000100. Epoch alignment (not
// calendar alignment) keeps results reproducible for a frozen now.
func generateQuarterHour(now time.Time, lookbackHours int) []string {
	if lookbackHours <= 0 {
		return nil
	}

	epoch := now.Unix()
	windowStart := epoch - epoch%shortWindowSeconds
	windows := lookbackHours * 4

	slugs := make([]string, 0, windows*len(shortAssets))
	for i := 0; i < windows; i++ {
		ts := windowStart - int64(i)*shortWindowSeconds
		for _, asset := range shortAssets {
			slugs = append(slugs, fmt.Sprintf("%s-updown-15m-%d", asset, ts))
		}
	}

	return slugs
}

// generateHourly emits slugs for calendar hours in local time, e.g.
// bitcoin-up-or-down-december-23-8am-et.
func generateHourly(now time.Time, lookbackHours int) []string {
	if lookbackHours <= 0 {
		return nil
	}

	currentHour := time.Date(now.Year(), now.Month(), now.Day(), now.Hour(), 0, 0, 0, now.Location())

	slugs := make([]string, 0, lookbackHours*len(longAssets))
	for i := 0; i < lookbackHours; i++ {
		dt := currentHour.Add(-time.Duration(i) * time.Hour)

		month := strings.ToLower(dt.Month().String())
		day := dt.Day()
		hourLabel := hourLabel(dt.Hour())

		for _, asset := range longAssets {
			slugs = append(slugs, fmt.Sprintf("%s-up-or-down-%s-%d-%s-et", asset, month, day, hourLabel))
		}
	}

	return slugs
}

// hourLabel maps a 24-hour clock hour to the 12-hour label used in slugs:
// 0 -> 12am, 1..11 -> Nam, 12 -> 12pm, 13..23 -> (N-12)pm.
func hourLabel(hour int) string {
	switch {
	case hour == 0:
		return "12am"
	case hour < 12:
		return fmt.Sprintf("%dam", hour)
	case hour == 12:
		return "12pm"
	default:
		return fmt.Sprintf("%dpm", hour-12)
	}
}
