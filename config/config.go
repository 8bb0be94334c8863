package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the full configuration of the recorder.
type Config struct {
	Notion NotionConfig `yaml:"notion"`
	Sync   SyncConfig   `yaml:"sync"`
	Log    LogConfig    `yaml:"log"`
}

// NotionConfig holds API access and the column layout of both databases.
type NotionConfig struct {
	// Token comes from NOTION_TOKEN only; secrets never live in the
	// YAML file.
	Token       string        `yaml:"-"`
	TradingDBID string        `yaml:"trading_db_id"`
	HistoryDBID string        `yaml:"history_db_id"`
	BaseURL     string        `yaml:"base_url"` // override for tests / proxies
	Trading     TradingSchema `yaml:"trading"`
	History     HistorySchema `yaml:"history"`
}

// TradingSchema names the trading-log columns the recorder reads.
type TradingSchema struct {
	TickerProp string `yaml:"ticker_prop"` // title
	PriceProp  string `yaml:"price_prop"`  // number, current close
	StatusProp string `yaml:"status_prop"` // status or select
	OpenValue  string `yaml:"open_value"`  // value marking an open position
}

// HistorySchema names the price-history columns the recorder writes.
type HistorySchema struct {
	TickerProp    string `yaml:"ticker_prop"`     // title
	TradeProp     string `yaml:"trade_prop"`      // relation to the trading row
	TimeProp      string `yaml:"time_prop"`       // date, bucket start
	BucketKeyProp string `yaml:"bucket_key_prop"` // rich text, upsert key
	PriceProp     string `yaml:"price_prop"`      // number
	PointTypeProp string `yaml:"point_type_prop"` // select
}

// SyncConfig controls bucketing.
type SyncConfig struct {
	Timezone      string `yaml:"timezone"`
	BucketMinutes int    `yaml:"bucket_minutes"` // 1..60
	PointType     string `yaml:"point_type"`     // written to the point-type select
}

// LogConfig controls logging format and level.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // text | json
}

// Load builds the configuration from the YAML file at path, the .env
// file when present, and the process environment, in that order of
// precedence (environment wins). A missing YAML file is not an error:
// env-only deployments, a cron job with secrets injected, are the
// common case and the file only customizes column names and logging.
func Load(path string) (*Config, error) {
	// Load .env if present (silences the error when there is none).
	_ = godotenv.Load()

	var cfg Config
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("config.Load: parse YAML %q: %w", path, err)
		}
	case os.IsNotExist(err):
		// Env + defaults only.
	default:
		return nil, fmt.Errorf("config.Load: read %q: %w", path, err)
	}

	if err := applyEnvOverrides(&cfg); err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	setDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate fails fast on anything that would only surface mid-run:
// missing credentials, malformed database IDs, an unknown timezone or
// an out-of-range bucket width. Database IDs are canonicalized to the
// dashed form as a side effect.
func (c *Config) Validate() error {
	if c.Notion.Token == "" {
		return fmt.Errorf("config: NOTION_TOKEN is required")
	}

	if c.Notion.TradingDBID == "" {
		return fmt.Errorf("config: NOTION_TRADING_DB_ID is required")
	}
	id, err := canonicalDBID(c.Notion.TradingDBID)
	if err != nil {
		return fmt.Errorf("config: NOTION_TRADING_DB_ID: %w", err)
	}
	c.Notion.TradingDBID = id

	if c.Notion.HistoryDBID == "" {
		return fmt.Errorf("config: NOTION_HISTORY_DB_ID is required")
	}
	id, err = canonicalDBID(c.Notion.HistoryDBID)
	if err != nil {
		return fmt.Errorf("config: NOTION_HISTORY_DB_ID: %w", err)
	}
	c.Notion.HistoryDBID = id

	if c.Sync.BucketMinutes < 1 || c.Sync.BucketMinutes > 60 {
		return fmt.Errorf("config: bucket_minutes must be between 1 and 60, got %d", c.Sync.BucketMinutes)
	}

	if _, err := time.LoadLocation(c.Sync.Timezone); err != nil {
		return fmt.Errorf("config: timezone %q: %w", c.Sync.Timezone, err)
	}

	return nil
}

// Location returns the configured timezone. Validate has already
// checked the name, so a parse failure here only happens on hand-built
// configs and falls back to UTC.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Sync.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// applyEnvOverrides layers environment variables over the YAML values.
// The names match what the cron deployment already exports.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("NOTION_TOKEN"); v != "" {
		cfg.Notion.Token = v
	}
	if v := os.Getenv("NOTION_TRADING_DB_ID"); v != "" {
		cfg.Notion.TradingDBID = v
	}
	if v := os.Getenv("NOTION_HISTORY_DB_ID"); v != "" {
		cfg.Notion.HistoryDBID = v
	}
	if v := os.Getenv("TIMEZONE"); v != "" {
		cfg.Sync.Timezone = v
	}
	if v := os.Getenv("BUCKET_MINUTES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("BUCKET_MINUTES %q is not a number", v)
		}
		// Checked here, not in Validate, so an explicit 0 cannot slip
		// through setDefaults as "unset".
		if n < 1 || n > 60 {
			return fmt.Errorf("BUCKET_MINUTES must be between 1 and 60, got %d", n)
		}
		cfg.Sync.BucketMinutes = n
	}
	if v := os.Getenv("POINT_TYPE_VALUE"); v != "" {
		cfg.Sync.PointType = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	return nil
}

// setDefaults fills everything optional with the values the stock
// Notion template uses.
func setDefaults(cfg *Config) {
	if cfg.Notion.BaseURL == "" {
		cfg.Notion.BaseURL = "https://api.notion.com"
	}

	t := &cfg.Notion.Trading
	if t.TickerProp == "" {
		t.TickerProp = "Ticker"
	}
	if t.PriceProp == "" {
		t.PriceProp = "Close"
	}
	if t.StatusProp == "" {
		t.StatusProp = "Status"
	}
	if t.OpenValue == "" {
		t.OpenValue = "Open"
	}

	h := &cfg.Notion.History
	if h.TickerProp == "" {
		h.TickerProp = "Ticker"
	}
	if h.TradeProp == "" {
		h.TradeProp = "Stock"
	}
	if h.TimeProp == "" {
		h.TimeProp = "Time"
	}
	if h.BucketKeyProp == "" {
		h.BucketKeyProp = "HourKey"
	}
	if h.PriceProp == "" {
		h.PriceProp = "Price"
	}
	if h.PointTypeProp == "" {
		h.PointTypeProp = "Point Type"
	}

	if cfg.Sync.Timezone == "" {
		cfg.Sync.Timezone = "America/New_York"
	}
	if cfg.Sync.BucketMinutes == 0 {
		cfg.Sync.BucketMinutes = 10
	}
	if cfg.Sync.PointType == "" {
		cfg.Sync.PointType = "10min"
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
}

// canonicalDBID validates a Notion database ID and returns its dashed
// canonical form. Notion hands out raw 32-hex IDs in URLs and dashed
// UUIDs in the API; both parse, everything else fails fast.
func canonicalDBID(raw string) (string, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("not a database id: %w", err)
	}
	return id.String(), nil
}
