package ports

import (
	"context"

	"github.com/alejandrodnm/pricelog/internal/domain"
)

// TradeSource reads open positions from the trading log.
type TradeSource interface {
	// FetchOpenTrades returns every row whose status marks an open
	// position, draining pagination before returning. The rows come
	// back in the order the API yields them.
	FetchOpenTrades(ctx context.Context) ([]domain.TradeRecord, error)
}
