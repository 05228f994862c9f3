package engine

import (
	"testing"

	"github.com/mselser95/polymarket-pnl/pkg/types"
)

func TestInferResolution(t *testing.T) {
	tests := []struct {
		name    string
		outcome string
		price   float64
		want    types.Resolution
	}{
		{"yes-above-threshold", "Up", 0.6, types.ResolutionYes},
		{"yes-at-threshold", "Up", 0.5, types.ResolutionYes},
		{"yes-below-threshold", "Up", 0.4, types.ResolutionNo},
		{"no-above-threshold", "Down", 0.6, types.ResolutionNo},
		{"no-at-threshold", "Down", 0.5, types.ResolutionNo},
		{"no-below-threshold", "Down", 0.4, types.ResolutionYes},
		{"invalid-outcome", "Maybe", 0.9, types.ResolutionPending},
		{"empty-outcome", "", 0.9, types.ResolutionPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fills := []types.Fill{
				{Timestamp: 1, Side: "BUY", Outcome: "Up", Price: 0.2, Size: 1},
				{Timestamp: 2, Side: "BUY", Outcome: tt.outcome, Price: tt.price, Size: 1},
			}

			got := InferResolution(fills)
			if got != tt.want {
				t.Errorf("InferResolution() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInferResolution_EmptyFillSet(t *testing.T) {
	got := InferResolution(nil)
	if got != types.ResolutionPending {
		t.Errorf("InferResolution(nil) = %v, want PENDING", got)
	}
}

// Only the chronologically last fill matters; earlier prices are ignored.
func TestInferResolution_UsesLastFillOnly(t *testing.T) {
	fills := []types.Fill{
		{Timestamp: 1, Outcome: "Up", Price: 0.99},
		{Timestamp: 2, Outcome: "Up", Price: 0.98},
		{Timestamp: 3, Outcome: "Up", Price: 0.01},
	}

	got := InferResolution(fills)
	if got != types.ResolutionNo {
		t.Errorf("InferResolution() = %v, want NO", got)
	}
}
