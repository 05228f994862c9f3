package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "polymarket-pnl",
	Short: "Polymarket short-cycle market PnL analyzer",
	Long: `Polymarket PnL analyzer for short-cycle crypto up/down markets.

Given a trading wallet, the analyzer enumerates every 15-minute or hourly
up/down market in a lookback window, retrieves the wallet's fills for each,
replays them into per-market positions, infers each market's resolution from
the final trade, and reports realized PnL per market and in aggregate.

Each market's full audit trail is exported as a JSON file for offline review.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
