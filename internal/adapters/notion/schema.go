package notion

// Schema names the database columns this client touches. Notion
// addresses properties by display name, so renamed columns only need a
// config change, not a code change.
type Schema struct {
	Trading TradingSchema
	History HistorySchema
}

// TradingSchema is the trading-log side: the columns read.
type TradingSchema struct {
	Ticker string // title
	Price  string // number, the current close
	Status string // status or select
	// OpenValue is the status value marking a position as open.
	OpenValue string
}

// HistorySchema is the price-history side: the columns written.
type HistorySchema struct {
	Ticker    string // title
	Trade     string // relation to the trading-log page
	Time      string // date, bucket start
	BucketKey string // rich_text, the upsert key
	Price     string // number
	PointType string // select
}

// applyDefaults fills empty fields with the stock template names.
func (s *Schema) applyDefaults() {
	if s.Trading.Ticker == "" {
		s.Trading.Ticker = "Ticker"
	}
	if s.Trading.Price == "" {
		s.Trading.Price = "Close"
	}
	if s.Trading.Status == "" {
		s.Trading.Status = "Status"
	}
	if s.Trading.OpenValue == "" {
		s.Trading.OpenValue = "Open"
	}

	if s.History.Ticker == "" {
		s.History.Ticker = "Ticker"
	}
	if s.History.Trade == "" {
		s.History.Trade = "Stock"
	}
	if s.History.Time == "" {
		s.History.Time = "Time"
	}
	if s.History.BucketKey == "" {
		s.History.BucketKey = "HourKey"
	}
	if s.History.Price == "" {
		s.History.Price = "Price"
	}
	if s.History.PointType == "" {
		s.History.PointType = "Point Type"
	}
}
