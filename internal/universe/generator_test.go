package universe

import (
	"fmt"
	"reflect"
	"testing"
	"time"
)

func TestGenerate_QuarterHour(t *testing.T) {
	// 2023-11-14 22:15:00 UTC plus 130s into the window.
	now := time.Unix(1700000230, 0).UTC()

	slugs := Generate(now, 1, CadenceShort)

	// 1 hour -> 4 windows, 2 assets each.
	if len(slugs) != 8 {
		t.Fatalf("expected 8 slugs, got %d", len(slugs))
	}

	// 1700000230 - (1700000230 % 900) = 1700000100.
	want := []string{
		"btc-updown-15m-1700000100",
		"eth-updown-15m-1700000100",
		"btc-updown-15m-1699999200",
		"eth-updown-15m-1699999200",
		"btc-updown-15m-1699998300",
		"eth-updown-15m-1699998300",
		"btc-updown-15m-1699997400",
		"eth-updown-15m-1699997400",
	}

	if !reflect.DeepEqual(slugs, want) {
		t.Errorf("slugs = %v, want %v", slugs, want)
	}
}

func TestGenerate_QuarterHour_Deterministic(t *testing.T) {
	now := time.Unix(1700000230, 0).UTC()

	first := Generate(now, 6, CadenceShort)
	second := Generate(now, 6, CadenceShort)

	if !reflect.DeepEqual(first, second) {
		t.Error("expected identical sequences for a frozen now")
	}

	if len(first) != 6*4*2 {
		t.Errorf("expected 48 slugs for 6 hours, got %d", len(first))
	}
}

func TestGenerate_QuarterHour_WindowAligned(t *testing.T) {
	// Exactly on a window boundary: the boundary window is the newest.
	now := time.Unix(1700000100, 0).UTC()

	slugs := Generate(now, 1, CadenceShort)

	if slugs[0] != "btc-updown-15m-1700000100" {
		t.Errorf("expected boundary window first, got %s", slugs[0])
	}
}

func TestGenerate_Hourly(t *testing.T) {
	// 2025-12-23 20:40 ET.
	loc := time.FixedZone("ET", -5*3600)
	now := time.Date(2025, time.December, 23, 20, 40, 0, 0, loc)

	slugs := Generate(now, 2, CadenceLong)

	want := []string{
		"bitcoin-up-or-down-december-23-8pm-et",
		"ethereum-up-or-down-december-23-8pm-et",
		"bitcoin-up-or-down-december-23-7pm-et",
		"ethereum-up-or-down-december-23-7pm-et",
	}

	if !reflect.DeepEqual(slugs, want) {
		t.Errorf("slugs = %v, want %v", slugs, want)
	}
}

func TestGenerate_Hourly_CrossesMidnightAndMonth(t *testing.T) {
	loc := time.FixedZone("ET", -5*3600)
	now := time.Date(2026, time.January, 1, 0, 10, 0, 0, loc)

	slugs := Generate(now, 2, CadenceLong)

	want := []string{
		"bitcoin-up-or-down-january-1-12am-et",
		"ethereum-up-or-down-january-1-12am-et",
		"bitcoin-up-or-down-december-31-11pm-et",
		"ethereum-up-or-down-december-31-11pm-et",
	}

	if !reflect.DeepEqual(slugs, want) {
		t.Errorf("slugs = %v, want %v", slugs, want)
	}
}

func TestHourLabel(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{0, "12am"},
		{1, "1am"},
		{11, "11am"},
		{12, "12pm"},
		{13, "1pm"},
		{23, "11pm"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("hour-%d", tt.hour), func(t *testing.T) {
			if got := hourLabel(tt.hour); got != tt.want {
				t.Errorf("hourLabel(%d) = %q, want %q", tt.hour, got, tt.want)
			}
		})
	}
}

func TestGenerate_NonPositiveLookback(t *testing.T) {
	now := time.Unix(1700000230, 0).UTC()

	for _, cadence := range []Cadence{CadenceShort, CadenceLong} {
		if slugs := Generate(now, 0, cadence); len(slugs) != 0 {
			t.Errorf("%s: expected empty sequence for zero lookback, got %d", cadence, len(slugs))
		}
		if slugs := Generate(now, -3, cadence); len(slugs) != 0 {
			t.Errorf("%s: expected empty sequence for negative lookback, got %d", cadence, len(slugs))
		}
	}
}

func TestCadence_Valid(t *testing.T) {
	if !CadenceShort.Valid() || !CadenceLong.Valid() {
		t.Error("expected known cadences to be valid")
	}

	if Cadence("2h").Valid() {
		t.Error("expected unknown cadence to be invalid")
	}
}
