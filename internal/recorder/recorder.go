package recorder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/alejandrodnm/pricelog/internal/domain"
	"github.com/alejandrodnm/pricelog/internal/ports"
)

// Config controls one sync pass.
type Config struct {
	// BucketMinutes is the bucket width the clock floors to.
	BucketMinutes int
	// PointType tags every written row, e.g. "10min".
	PointType string
	// DryRun plans the writes without issuing them. Reads still happen.
	DryRun bool
}

// DefaultConfig returns the production configuration.
func DefaultConfig() Config {
	return Config{
		BucketMinutes: 10,
		PointType:     "10min",
	}
}

// Recorder runs one sync pass: floor the clock to a bucket, read the
// open trades, read the bucket's existing history rows, reconcile.
type Recorder struct {
	cfg      Config
	now      func() time.Time
	trades   ports.TradeSource
	history  ports.HistoryStore
	notifier ports.Notifier
}

// New creates a Recorder with all dependencies injected. now is the
// clock the bucket derives from; pass a zone-aware time.Now in
// production, a fixed clock in tests.
func New(
	cfg Config,
	now func() time.Time,
	trades ports.TradeSource,
	history ports.HistoryStore,
	notifier ports.Notifier,
) *Recorder {
	if now == nil {
		now = time.Now
	}
	return &Recorder{
		cfg:      cfg,
		now:      now,
		trades:   trades,
		history:  history,
		notifier: notifier,
	}
}

// RunOnce executes exactly one sync pass and returns its summary.
// The pipeline is strictly sequential: every step completes before the
// next starts, and the first failing step aborts the pass.
func (r *Recorder) RunOnce(ctx context.Context) (domain.RunSummary, error) {
	start := r.now()
	bucket := domain.FloorToBucket(start, r.cfg.BucketMinutes)

	slog.Info("bucket resolved",
		"time", bucket.Start.Format(time.RFC3339),
		"key", bucket.Key(),
		"minutes", bucket.Minutes,
	)

	trades, err := r.trades.FetchOpenTrades(ctx)
	if err != nil {
		return domain.RunSummary{}, fmt.Errorf("recorder.RunOnce: fetch open trades: %w", err)
	}
	slog.Info("open trades fetched", "count", len(trades))

	existing, err := r.history.FetchExistingForBucket(ctx, bucket.Key())
	if err != nil {
		return domain.RunSummary{}, fmt.Errorf("recorder.RunOnce: fetch existing rows: %w", err)
	}
	slog.Debug("existing bucket rows fetched", "count", len(existing))

	summary, err := r.reconcile(ctx, trades, existing, bucket)
	if err != nil {
		return summary, err
	}

	if r.notifier != nil {
		if err := r.notifier.Notify(ctx, summary); err != nil {
			slog.Warn("notifier error", "err", err)
		}
	}

	slog.Info("sync pass complete",
		"created", summary.Created,
		"updated", summary.Updated,
		"skipped", summary.Skipped,
		"duration", time.Since(start).Round(time.Millisecond),
	)
	return summary, nil
}
