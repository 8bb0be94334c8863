package domain

import "time"

// PricePoint is one price observation for one ticker at one bucket,
// the row shape this tool owns in the price-history database. At most
// one point exists per (ticker, bucket key); re-runs inside the same
// window update the point in place instead of appending.
type PricePoint struct {
	// PageID is the Notion page of the history row, empty until the
	// row exists.
	PageID string
	// Ticker in canonical form, used as the row title.
	Ticker string
	// TradeID is the trading-log page this point was sampled from,
	// written to the relation column.
	TradeID string
	// Time is the bucket start, written as an ISO-8601 date with the
	// zone offset preserved.
	Time time.Time
	// BucketKey is Bucket.Key() for Time, the value the upsert matches
	// rows on.
	BucketKey string
	Price     float64
	// PointType tags the row with the bucket granularity ("10min" by
	// default) so charts can filter series of one width.
	PointType string
}
