package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/mselser95/polymarket-pnl/internal/engine"
)

// FileStorage implements Storage by writing one JSON record per market under
// <dir>/<slug>.json.
type FileStorage struct {
	dir    string
	run    RunInfo
	logger *zap.Logger

	now func() time.Time
}

// NewFileStorage creates a file storage rooted at dir, creating the directory
// tree if needed.
func NewFileStorage(dir string, run RunInfo, logger *zap.Logger) (*FileStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	logger.Info("file-storage-initialized",
		zap.String("dir", dir),
		zap.String("run-id", run.ID))

	return &FileStorage{
		dir:    dir,
		run:    run,
		logger: logger,
		now:    time.Now,
	}, nil
}

// StoreReport writes the market's full record, summary and per-fill audit
// trail included, as indented JSON.
func (f *FileStorage) StoreReport(ctx context.Context, report *engine.MarketReport) error {
	record := buildRecord(f.run, f.now().Format("2006-01-02 15:04:05"), report)

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report %s: %w", report.Slug, err)
	}

	path := filepath.Join(f.dir, sanitizeSlug(report.Slug)+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report %s: %w", report.Slug, err)
	}

	f.logger.Debug("report-written",
		zap.String("slug", report.Slug),
		zap.String("path", path),
		zap.Int("trades", report.Stats.TradeCount))

	ReportsWrittenTotal.Inc()

	return nil
}

// Close is a no-op for file storage.
func (f *FileStorage) Close() error {
	f.logger.Info("closing-file-storage", zap.String("dir", f.dir))
	return nil
}

// sanitizeSlug makes a slug safe to use as a file name.
func sanitizeSlug(slug string) string {
	return strings.ReplaceAll(slug, "/", "-")
}
