package report

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/mselser95/polymarket-pnl/internal/engine"
)

// PostgresStorage implements Storage using PostgreSQL. Only the summary row
// is stored; the audit trail stays in the JSON exports.
type PostgresStorage struct {
	db     *sql.DB
	run    RunInfo
	logger *zap.Logger
}

// PostgresConfig holds PostgreSQL configuration.
type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
	SSLMode  string
	Run      RunInfo
	Logger   *zap.Logger
}

// NewPostgresStorage creates a new PostgreSQL storage.
func NewPostgresStorage(cfg *PostgresConfig) (*PostgresStorage, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Database, cfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	err = db.Ping()
	if err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	cfg.Logger.Info("postgres-storage-connected",
		zap.String("host", cfg.Host),
		zap.String("database", cfg.Database))

	return &PostgresStorage{
		db:     db,
		run:    cfg.Run,
		logger: cfg.Logger,
	}, nil
}

// StoreReport inserts the market's summary row.
func (p *PostgresStorage) StoreReport(ctx context.Context, report *engine.MarketReport) error {
	st := report.Stats

	query := `
		INSERT INTO market_reports (
			run_id, wallet, market_slug, resolution, trade_count,
			yes_buy_shares, yes_buy_cost, yes_sell_shares, yes_sell_cost,
			no_buy_shares, no_buy_cost, no_sell_shares, no_sell_cost,
			yes_exposure, no_exposure,
			total_spent, final_value, pnl,
			first_trade_at, last_trade_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20
		)
	`

	var firstTrade, lastTrade sql.NullTime
	if st.TradeCount > 0 {
		firstTrade = sql.NullTime{Time: time.Unix(st.FirstTrade, 0).UTC(), Valid: true}
		lastTrade = sql.NullTime{Time: time.Unix(st.LastTrade, 0).UTC(), Valid: true}
	}

	_, err := p.db.ExecContext(ctx, query,
		p.run.ID,
		p.run.Wallet,
		report.Slug,
		string(report.Resolution),
		st.TradeCount,
		st.YesBuyShares,
		st.YesBuyCost,
		st.YesSellShares,
		st.YesSellCost,
		st.NoBuyShares,
		st.NoBuyCost,
		st.NoSellShares,
		st.NoSellCost,
		st.YesExposure,
		st.NoExposure,
		st.TotalSpent,
		st.FinalValue,
		st.PnL,
		firstTrade,
		lastTrade,
	)

	if err != nil {
		return fmt.Errorf("insert market report: %w", err)
	}

	p.logger.Debug("report-stored",
		zap.String("market-slug", report.Slug),
		zap.String("resolution", string(report.Resolution)),
		zap.Int("trade-count", st.TradeCount))

	return nil
}

// Close closes the database connection.
func (p *PostgresStorage) Close() error {
	p.logger.Info("closing-postgres-storage")
	return p.db.Close()
}
