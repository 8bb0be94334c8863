package notion

// trades.go — trading-log reader.

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alejandrodnm/pricelog/internal/domain"
)

// FetchOpenTrades returns every trading-log row whose status equals the
// configured open value.
//
// Notion models status columns two ways depending on how the database
// was built: the dedicated status type or a plain select. The status
// variant is tried first; any failure switches to the select variant
// for exactly one more attempt. Both failing aborts the run.
func (c *Client) FetchOpenTrades(ctx context.Context) ([]domain.TradeRecord, error) {
	open := equalsClause{Equals: c.schema.Trading.OpenValue}
	filters := []any{
		statusFilter{Property: c.schema.Trading.Status, Status: open},
		selectFilter{Property: c.schema.Trading.Status, Select: open},
	}

	var pages []page
	var err error
	for i, filter := range filters {
		pages, err = c.queryAll(ctx, c.tradingDB, filter)
		if err == nil {
			break
		}
		if i == 0 {
			slog.Warn("status filter rejected, retrying as select", "err", err)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("notion.FetchOpenTrades: %w", err)
	}

	trades := make([]domain.TradeRecord, 0, len(pages))
	for _, p := range pages {
		trades = append(trades, domain.TradeRecord{
			PageID: p.ID,
			Ticker: pageTitle(p, c.schema.Trading.Ticker),
			Close:  pageNumber(p, c.schema.Trading.Price),
		})
	}
	return trades, nil
}
