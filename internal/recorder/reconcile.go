package recorder

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alejandrodnm/pricelog/internal/domain"
)

// Skip reasons carried on the summary actions.
const (
	reasonEmptyTicker  = "empty ticker"
	reasonMissingPrice = "missing price"
)

// reconcile walks the open trades in source order and issues one write
// per usable row: an update when the bucket already holds the ticker, a
// create otherwise. Malformed rows are counted and skipped. The first
// write error aborts the pass; writes already committed stay committed.
//
// existing is not extended as creates land, so a second open trade on
// the same ticker creates a second row. The pre-read of the next run
// flags that duplicate and resolves it last-wins.
func (r *Recorder) reconcile(
	ctx context.Context,
	trades []domain.TradeRecord,
	existing map[string]string,
	bucket domain.Bucket,
) (domain.RunSummary, error) {
	summary := domain.RunSummary{Bucket: bucket, DryRun: r.cfg.DryRun}

	for _, trade := range trades {
		ticker := domain.NormalizeTicker(trade.Ticker)

		if ticker == "" {
			summary.Skipped++
			summary.Actions = append(summary.Actions, domain.Action{
				Kind:   domain.ActionSkip,
				Ticker: trade.Ticker,
				Reason: reasonEmptyTicker,
			})
			slog.Warn("skipping trade without ticker", "page_id", trade.PageID)
			continue
		}
		if trade.Close == nil {
			summary.Skipped++
			summary.Actions = append(summary.Actions, domain.Action{
				Kind:   domain.ActionSkip,
				Ticker: ticker,
				Reason: reasonMissingPrice,
			})
			slog.Warn("skipping trade without price", "ticker", ticker)
			continue
		}

		point := domain.PricePoint{
			Ticker:    ticker,
			TradeID:   trade.PageID,
			Time:      bucket.Start,
			BucketKey: bucket.Key(),
			Price:     *trade.Close,
			PointType: r.cfg.PointType,
		}

		if pageID, ok := existing[ticker]; ok {
			if !r.cfg.DryRun {
				if err := r.history.UpdatePoint(ctx, pageID, point); err != nil {
					return summary, fmt.Errorf("recorder.reconcile: update %s: %w", ticker, err)
				}
			}
			summary.Updated++
			summary.Actions = append(summary.Actions, domain.Action{
				Kind:   domain.ActionUpdate,
				Ticker: ticker,
				Price:  point.Price,
				PageID: pageID,
			})
			slog.Debug("price point updated", "ticker", ticker, "price", point.Price)
			continue
		}

		if !r.cfg.DryRun {
			if err := r.history.CreatePoint(ctx, point); err != nil {
				return summary, fmt.Errorf("recorder.reconcile: create %s: %w", ticker, err)
			}
		}
		summary.Created++
		summary.Actions = append(summary.Actions, domain.Action{
			Kind:   domain.ActionCreate,
			Ticker: ticker,
			Price:  point.Price,
		})
		slog.Debug("price point created", "ticker", ticker, "price", point.Price)
	}

	return summary, nil
}
