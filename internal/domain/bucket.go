package domain

import "time"

// BucketKeyLayout renders a bucket start as the idempotency key stored
// in the history database, e.g. "2026-08-23 09:40".
const BucketKeyLayout = "2006-01-02 15:04"

// Bucket is a fixed-width time window identified by its floored start.
// Two observations inside the same window share the same Bucket and
// therefore the same Key.
type Bucket struct {
	Start   time.Time
	Minutes int
}

// FloorToBucket floors t to the enclosing bucket boundary: the minute
// is rounded down to a multiple of minutes, seconds and sub-seconds are
// zeroed, the wall clock and location of t are preserved. minutes=60
// gives whole-hour buckets.
func FloorToBucket(t time.Time, minutes int) Bucket {
	if minutes <= 0 {
		minutes = 1
	}
	floored := time.Date(
		t.Year(), t.Month(), t.Day(),
		t.Hour(), t.Minute()-t.Minute()%minutes,
		0, 0, t.Location(),
	)
	return Bucket{Start: floored, Minutes: minutes}
}

// Key returns the canonical bucket key for Start.
func (b Bucket) Key() string {
	return b.Start.Format(BucketKeyLayout)
}
