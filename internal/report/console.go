package report

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mselser95/polymarket-pnl/internal/engine"
)

const consoleRule = "================================================================"

// ConsoleStorage implements Storage by pretty-printing each market block to
// stdout. Log output goes to stderr, so the blocks stay pipeable.
type ConsoleStorage struct {
	logger *zap.Logger
}

// NewConsoleStorage creates a new console storage.
func NewConsoleStorage(logger *zap.Logger) *ConsoleStorage {
	logger.Info("console-storage-initialized")
	return &ConsoleStorage{
		logger: logger,
	}
}

// PrintRunHeader prints the banner for one analyzer run.
func (c *ConsoleStorage) PrintRunHeader(run RunInfo, markets, fills int) {
	fmt.Println("\n" + consoleRule)
	fmt.Printf("POSITION ANALYSIS: %s\n", run.DisplayName)
	fmt.Println(consoleRule)
	fmt.Printf("Wallet:      %s\n", run.Wallet)
	fmt.Printf("Market type: %s\n", run.MarketLabel)
	fmt.Printf("Lookback:    %d hours\n", run.Hours)
	fmt.Printf("Markets:     %d with activity\n", markets)
	fmt.Printf("Fills:       %d\n", fills)
	fmt.Println(consoleRule)
}

// StoreReport pretty-prints one market's replay outcome.
func (c *ConsoleStorage) StoreReport(ctx context.Context, report *engine.MarketReport) error {
	st := report.Stats

	fmt.Printf("\n--- %s ---\n", report.Slug)
	fmt.Printf("Resolution:  %s\n", report.Resolution)
	fmt.Printf("Trades:      %d\n", st.TradeCount)
	fmt.Printf("YES position: %.2f shares (bought %.2f / sold %.2f)\n",
		st.YesExposure, st.YesBuyShares, st.YesSellShares)
	fmt.Printf("NO position:  %.2f shares (bought %.2f / sold %.2f)\n",
		st.NoExposure, st.NoBuyShares, st.NoSellShares)
	fmt.Printf("Total spent:  $%.4f\n", st.TotalSpent)
	fmt.Printf("Final value:  $%.4f\n", st.FinalValue)

	if report.Resolution.Resolved() {
		fmt.Printf("PnL:          $%+.4f", st.PnL)
		if st.TotalSpent > 0 {
			fmt.Printf(" (%+.2f%%)", st.PnLPercent)
		}
		fmt.Println()
	} else {
		fmt.Println("PnL:          pending resolution")
	}

	return nil
}

// PrintRunTotals prints the aggregated run summary. Pending markets are not
// part of the totals.
func (c *ConsoleStorage) PrintRunTotals(summary engine.RunSummary) {
	fmt.Println("\n" + consoleRule)
	fmt.Println("TOTALS")
	fmt.Println(consoleRule)
	fmt.Printf("Markets analyzed: %d (%d resolved, %d pending)\n",
		summary.Markets, summary.Resolved, summary.Markets-summary.Resolved)
	fmt.Printf("Total PnL:        $%+.4f\n", summary.TotalPnL)

	if rate, ok := summary.WinRate(); ok {
		fmt.Printf("Win rate:         %.1f%% (%d/%d)\n", rate, summary.Wins, summary.Resolved)
	} else {
		fmt.Println("Win rate:         N/A (no resolved markets)")
	}
	fmt.Println(consoleRule)
}

// Close is a no-op for console storage.
func (c *ConsoleStorage) Close() error {
	c.logger.Info("closing-console-storage")
	return nil
}
