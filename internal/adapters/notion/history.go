package notion

// history.go — price-history reader and writer.

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alejandrodnm/pricelog/internal/domain"
)

// FetchExistingForBucket returns normalized ticker → page ID for every
// history row already carrying the given bucket key. One query up
// front, so the upsert loop never reads per ticker.
//
// Two rows with the same ticker inside one bucket should not exist; if
// they do, the later page wins the slot and a warning names the ticker
// so the duplicate is visible instead of silently folded.
func (c *Client) FetchExistingForBucket(ctx context.Context, bucketKey string) (map[string]string, error) {
	filter := textFilter{
		Property: c.schema.History.BucketKey,
		RichText: equalsClause{Equals: bucketKey},
	}

	pages, err := c.queryAll(ctx, c.historyDB, filter)
	if err != nil {
		return nil, fmt.Errorf("notion.FetchExistingForBucket %q: %w", bucketKey, err)
	}

	existing := make(map[string]string, len(pages))
	for _, p := range pages {
		ticker := domain.NormalizeTicker(pageTitle(p, c.schema.History.Ticker))
		if ticker == "" {
			continue
		}
		if prev, ok := existing[ticker]; ok {
			slog.Warn("duplicate history row in bucket, later page wins",
				"ticker", ticker,
				"bucket_key", bucketKey,
				"replaced", shortID(prev),
			)
		}
		existing[ticker] = p.ID
	}
	return existing, nil
}

// CreatePoint inserts a new history row for the point.
func (c *Client) CreatePoint(ctx context.Context, point domain.PricePoint) error {
	body := createPageRequest{
		Parent:     parentRef{DatabaseID: c.historyDB},
		Properties: c.pointProperties(point),
	}
	if err := c.post(ctx, "/v1/pages", body, nil); err != nil {
		return fmt.Errorf("notion.CreatePoint %s: %w", point.Ticker, err)
	}
	return nil
}

// UpdatePoint rewrites the properties of an existing history row.
func (c *Client) UpdatePoint(ctx context.Context, pageID string, point domain.PricePoint) error {
	body := updatePageRequest{Properties: c.pointProperties(point)}
	if err := c.patch(ctx, "/v1/pages/"+pageID, body, nil); err != nil {
		return fmt.Errorf("notion.UpdatePoint %s: %w", point.Ticker, err)
	}
	return nil
}

// pointProperties renders a PricePoint as the full property payload.
// Create and update send the same set, so an update refreshes every
// cell, not just the price.
func (c *Client) pointProperties(point domain.PricePoint) map[string]propValue {
	h := c.schema.History

	props := map[string]propValue{
		h.Ticker:    titleProp(point.Ticker),
		h.Time:      dateProp(point.Time),
		h.BucketKey: textProp(point.BucketKey),
		h.Price:     numberProp(point.Price),
	}
	if point.TradeID != "" {
		props[h.Trade] = relationProp(point.TradeID)
	}
	if point.PointType != "" {
		props[h.PointType] = selectProp(point.PointType)
	}
	return props
}
