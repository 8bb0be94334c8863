package ports

import (
	"context"

	"github.com/alejandrodnm/pricelog/internal/domain"
)

// HistoryStore reads and writes rows of the price-history database.
type HistoryStore interface {
	// FetchExistingForBucket maps normalized ticker to the page ID of
	// the history row already holding that ticker's price for the
	// given bucket key. Rows without a ticker are ignored.
	FetchExistingForBucket(ctx context.Context, bucketKey string) (map[string]string, error)

	// CreatePoint inserts a new history row.
	CreatePoint(ctx context.Context, point domain.PricePoint) error

	// UpdatePoint rewrites the properties of an existing history row.
	UpdatePoint(ctx context.Context, pageID string, point domain.PricePoint) error
}
