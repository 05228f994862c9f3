package cmd

import (
	"strings"
	"testing"
)

func TestValidateAnalyzeInput(t *testing.T) {
	tests := []struct {
		name       string
		wallet     string
		marketType string
		hours      int
		wantErr    string
	}{
		{
			name:       "valid 15m",
			wallet:     "0x56687bf447db6ffa42ffe2204a05edaa20f55839",
			marketType: "15m",
			hours:      6,
		},
		{
			name:       "valid 1h",
			wallet:     "0x56687bf447db6ffa42ffe2204a05edaa20f55839",
			marketType: "1h",
			hours:      24,
		},
		{
			name:       "not an address",
			wallet:     "not-a-wallet",
			marketType: "15m",
			hours:      6,
			wantErr:    "invalid wallet address",
		},
		{
			name:       "truncated address",
			wallet:     "0x56687bf447db6ffa",
			marketType: "15m",
			hours:      6,
			wantErr:    "invalid wallet address",
		},
		{
			name:       "unknown market type",
			wallet:     "0x56687bf447db6ffa42ffe2204a05edaa20f55839",
			marketType: "4h",
			hours:      6,
			wantErr:    "invalid market type",
		},
		{
			name:       "zero hours",
			wallet:     "0x56687bf447db6ffa42ffe2204a05edaa20f55839",
			marketType: "15m",
			hours:      0,
			wantErr:    "hours must be positive",
		},
		{
			name:       "negative hours",
			wallet:     "0x56687bf447db6ffa42ffe2204a05edaa20f55839",
			marketType: "1h",
			hours:      -3,
			wantErr:    "hours must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateAnalyzeInput(tt.wallet, tt.marketType, tt.hours)

			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
				return
			}

			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}
