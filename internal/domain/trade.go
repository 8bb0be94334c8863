package domain

import "strings"

// TradeRecord is one open position row read from the trading log.
type TradeRecord struct {
	// PageID identifies the Notion page holding the row; history rows
	// link back to it through their relation column.
	PageID string
	// Ticker is the title cell as written by the user, surrounding
	// whitespace removed. May be empty.
	Ticker string
	// Close is the current price cell. nil when the cell is empty,
	// which skips the record instead of failing the run.
	Close *float64
}

// NormalizeTicker maps a free-form ticker cell to its canonical form:
// whitespace trimmed, upper-cased. " aapl " and "AAPL" are the same
// instrument.
func NormalizeTicker(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}
