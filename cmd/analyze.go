package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mselser95/polymarket-pnl/internal/engine"
	"github.com/mselser95/polymarket-pnl/internal/fetch"
	"github.com/mselser95/polymarket-pnl/internal/gamma"
	"github.com/mselser95/polymarket-pnl/internal/report"
	"github.com/mselser95/polymarket-pnl/internal/trades"
	"github.com/mselser95/polymarket-pnl/internal/universe"
	"github.com/mselser95/polymarket-pnl/pkg/cache"
	"github.com/mselser95/polymarket-pnl/pkg/config"
	"github.com/mselser95/polymarket-pnl/pkg/httpserver"
)

//nolint:gochecknoglobals // Cobra boilerplate
var analyzeCmd = &cobra.Command{
	Use:   "analyze <wallet-address>",
	Short: "Replay a wallet's fills in short-cycle markets and report PnL",
	Long: `Analyzes a wallet's trading activity in Polymarket's short-cycle
crypto up/down markets (BTC and ETH).

The market universe is generated locally from the lookback window: 15-minute
markets use epoch-aligned windows, hourly markets use calendar hours in local
time. For each candidate market the wallet's fills are retrieved and replayed
into a position, the market's resolution is inferred from the last trade, and
per-market PnL is computed against a $1 settlement per winning share.

Markets whose resolution cannot be inferred are reported as PENDING and are
excluded from aggregate PnL and win rate.

Examples:
  # Last 6 hours of 15-minute markets
  polymarket-pnl analyze 0x56687bf447db6ffa42ffe2204a05edaa20f55839

  # Last 24 hours of hourly markets, named export directory
  polymarket-pnl analyze 0x5668...5839 --hours 24 --type 1h --username trader1`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

var (
	lookbackHours int
	marketType    string
	username      string
)

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().IntVarP(&lookbackHours, "hours", "H", 6, "Lookback window in hours")
	analyzeCmd.Flags().StringVarP(&marketType, "type", "t", "15m", "Market cadence: 15m or 1h")
	analyzeCmd.Flags().StringVarP(&username, "username", "u", "", "Display name for output (defaults to the wallet address)")
}

func runAnalyze(cmd *cobra.Command, args []string) (err error) {
	wallet := strings.ToLower(args[0])

	err = validateAnalyzeInput(wallet, marketType, lookbackHours)
	if err != nil {
		return err
	}

	err = godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("load .env: %w", err)
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := config.NewLogger()
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck // stderr sync failure is harmless on exit

	cadence := universe.Cadence(marketType)

	displayName := username
	if displayName == "" {
		displayName = wallet
	}

	run := report.RunInfo{
		ID:          uuid.NewString(),
		Wallet:      wallet,
		DisplayName: displayName,
		MarketLabel: cadence.Label(),
		Hours:       lookbackHours,
	}

	logger.Info("analyze-starting",
		zap.String("run-id", run.ID),
		zap.String("wallet", wallet),
		zap.String("market-type", string(cadence)),
		zap.Int("hours", lookbackHours))

	conditions, err := cache.NewConditionCache(&cache.Config{
		MaxEntries: cfg.ConditionCache,
		TTL:        cfg.ConditionTTL,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("create condition cache: %w", err)
	}
	defer conditions.Close()

	gammaClient := gamma.NewClient(cfg.PolymarketGammaURL, cfg.GammaTimeout, conditions, logger)
	tradesClient := trades.NewClient(cfg.PolymarketDataURL, cfg.FetchPageSize, cfg.TradesTimeout, logger)
	orchestrator := fetch.New(gammaClient, tradesClient, cfg.FetchWorkers, logger)

	ctx := cmd.Context()

	if cfg.MetricsEnabled {
		server := httpserver.New(&httpserver.Config{
			Port:     cfg.HTTPPort,
			Logger:   logger,
			Progress: orchestrator,
		})
		server.SetReady(true)

		go func() {
			if serveErr := server.Start(); serveErr != nil {
				logger.Warn("http-server-failed", zap.Error(serveErr))
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if shutdownErr := server.Shutdown(shutdownCtx); shutdownErr != nil {
				logger.Warn("http-server-shutdown-failed", zap.Error(shutdownErr))
			}
		}()
	}

	slugs := universe.Generate(time.Now(), lookbackHours, cadence)
	result := orchestrator.Fetch(ctx, wallet, slugs)

	if len(result.FillsBySlug) == 0 {
		fmt.Printf("No trades found in the last %d hours of %s markets for wallet %s\n",
			lookbackHours, cadence.Label(), wallet)
		return nil
	}

	storages, outputDir, err := buildStorages(cfg, cadence, run, logger)
	if err != nil {
		return err
	}
	defer func() {
		for _, s := range storages {
			if closeErr := s.Close(); closeErr != nil {
				logger.Warn("storage-close-failed", zap.Error(closeErr))
			}
		}
	}()

	console := report.NewConsoleStorage(logger)
	console.PrintRunHeader(run, len(result.FillsBySlug), result.TotalFills)

	// Deterministic report order regardless of retrieval completion order.
	ordered := make([]string, 0, len(result.FillsBySlug))
	for slug := range result.FillsBySlug {
		ordered = append(ordered, slug)
	}
	sort.Strings(ordered)

	reports := make([]*engine.MarketReport, 0, len(ordered))
	for _, slug := range ordered {
		marketReport := engine.Replay(slug, result.FillsBySlug[slug])
		reports = append(reports, marketReport)

		if storeErr := console.StoreReport(ctx, marketReport); storeErr != nil {
			logger.Warn("console-report-failed",
				zap.String("slug", slug),
				zap.Error(storeErr))
		}

		for _, s := range storages {
			if storeErr := s.StoreReport(ctx, marketReport); storeErr != nil {
				logger.Warn("store-report-failed",
					zap.String("slug", slug),
					zap.Error(storeErr))
			}
		}
	}

	console.PrintRunTotals(engine.Aggregate(reports))

	if outputDir != "" {
		fmt.Printf("\nDetailed reports written to %s\n", outputDir)
	}

	logger.Info("analyze-complete",
		zap.String("run-id", run.ID),
		zap.Int("markets", len(reports)),
		zap.Int("fills", result.TotalFills))

	return nil
}

// validateAnalyzeInput rejects malformed invocations before any I/O happens.
func validateAnalyzeInput(wallet, marketType string, hours int) error {
	if !common.IsHexAddress(wallet) {
		return fmt.Errorf("invalid wallet address: %s", wallet)
	}

	if !universe.Cadence(marketType).Valid() {
		return fmt.Errorf("invalid market type: %s (valid: 15m, 1h)", marketType)
	}

	if hours <= 0 {
		return fmt.Errorf("hours must be positive, got %d", hours)
	}

	return nil
}

// buildStorages assembles the persistent export backends for a run. Console
// output is handled separately so it always happens, whatever the mode.
func buildStorages(
	cfg *config.Config,
	cadence universe.Cadence,
	run report.RunInfo,
	logger *zap.Logger,
) (storages []report.Storage, outputDir string, err error) {
	switch cfg.StorageMode {
	case "postgres":
		pg, err := report.NewPostgresStorage(&report.PostgresConfig{
			Host:     cfg.PostgresHost,
			Port:     cfg.PostgresPort,
			User:     cfg.PostgresUser,
			Password: cfg.PostgresPass,
			Database: cfg.PostgresDB,
			SSLMode:  cfg.PostgresSSL,
			Run:      run,
			Logger:   logger,
		})
		if err != nil {
			return nil, "", fmt.Errorf("create postgres storage: %w", err)
		}
		storages = append(storages, pg)
	default:
		outputDir = filepath.Join(cfg.OutputDir, run.DisplayName, cadence.OutputDir())
		file, err := report.NewFileStorage(outputDir, run, logger)
		if err != nil {
			return nil, "", fmt.Errorf("create file storage: %w", err)
		}
		storages = append(storages, file)
	}

	return storages, outputDir, nil
}
