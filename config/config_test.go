package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alejandrodnm/pricelog/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("NOTION_TOKEN", "secret-token")
	t.Setenv("NOTION_TRADING_DB_ID", "11111111aaaa4bbb8ccc0000000000aa") // raw hex, as copied from a URL
	t.Setenv("NOTION_HISTORY_DB_ID", "22222222-bbbb-4ccc-8ddd-0000000000bb")
}

func clearOptionalEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"TIMEZONE", "BUCKET_MINUTES", "POINT_TYPE_VALUE", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(k, "")
	}
}

func TestLoad_EnvOnly(t *testing.T) {
	setRequiredEnv(t)
	clearOptionalEnv(t)

	cfg, err := config.Load("does-not-exist.yaml")
	require.NoError(t, err, "a missing YAML file is fine, env covers everything")

	assert.Equal(t, "secret-token", cfg.Notion.Token)
	// Raw-hex IDs come out canonicalized.
	assert.Equal(t, "11111111-aaaa-4bbb-8ccc-0000000000aa", cfg.Notion.TradingDBID)
	assert.Equal(t, "22222222-bbbb-4ccc-8ddd-0000000000bb", cfg.Notion.HistoryDBID)
	assert.Equal(t, "https://api.notion.com", cfg.Notion.BaseURL)

	assert.Equal(t, "America/New_York", cfg.Sync.Timezone)
	assert.Equal(t, 10, cfg.Sync.BucketMinutes)
	assert.Equal(t, "10min", cfg.Sync.PointType)

	assert.Equal(t, "Ticker", cfg.Notion.Trading.TickerProp)
	assert.Equal(t, "Close", cfg.Notion.Trading.PriceProp)
	assert.Equal(t, "Status", cfg.Notion.Trading.StatusProp)
	assert.Equal(t, "Open", cfg.Notion.Trading.OpenValue)
	assert.Equal(t, "Stock", cfg.Notion.History.TradeProp)
	assert.Equal(t, "HourKey", cfg.Notion.History.BucketKeyProp)
	assert.Equal(t, "Point Type", cfg.Notion.History.PointTypeProp)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoad_MissingToken(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("NOTION_TOKEN", "")

	_, err := config.Load("does-not-exist.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NOTION_TOKEN")
}

func TestLoad_MissingDatabaseIDs(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("NOTION_TRADING_DB_ID", "")

	_, err := config.Load("does-not-exist.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NOTION_TRADING_DB_ID")
}

func TestLoad_MalformedDatabaseID(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("NOTION_HISTORY_DB_ID", "my-history-db")

	_, err := config.Load("does-not-exist.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NOTION_HISTORY_DB_ID")
}

func TestLoad_BucketMinutes(t *testing.T) {
	setRequiredEnv(t)
	clearOptionalEnv(t)

	t.Setenv("BUCKET_MINUTES", "60")
	cfg, err := config.Load("does-not-exist.yaml")
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.Sync.BucketMinutes)

	for _, bad := range []string{"abc", "0", "61", "-10"} {
		t.Setenv("BUCKET_MINUTES", bad)
		_, err := config.Load("does-not-exist.yaml")
		assert.Error(t, err, "BUCKET_MINUTES=%s must be rejected", bad)
	}
}

func TestLoad_BadTimezone(t *testing.T) {
	setRequiredEnv(t)
	clearOptionalEnv(t)
	t.Setenv("TIMEZONE", "Mars/Olympus")

	_, err := config.Load("does-not-exist.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timezone")
}

func TestLoad_YAMLWithEnvPrecedence(t *testing.T) {
	setRequiredEnv(t)
	clearOptionalEnv(t)
	t.Setenv("TIMEZONE", "UTC") // env beats the YAML value

	path := filepath.Join(t.TempDir(), "config.yaml")
	yml := `
notion:
  trading:
    status_prop: State
    open_value: Active
  history:
    bucket_key_prop: TimeKey
sync:
  timezone: America/New_York
  bucket_minutes: 30
  point_type: 30min
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "UTC", cfg.Sync.Timezone)
	assert.Equal(t, 30, cfg.Sync.BucketMinutes)
	assert.Equal(t, "30min", cfg.Sync.PointType)
	assert.Equal(t, "State", cfg.Notion.Trading.StatusProp)
	assert.Equal(t, "Active", cfg.Notion.Trading.OpenValue)
	assert.Equal(t, "TimeKey", cfg.Notion.History.BucketKeyProp)
	// Untouched fields still get the stock defaults.
	assert.Equal(t, "Ticker", cfg.Notion.Trading.TickerProp)
	assert.Equal(t, "Price", cfg.Notion.History.PriceProp)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_MalformedYAML(t *testing.T) {
	setRequiredEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("notion: ["), 0o644))

	_, err := config.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse YAML")
}

func TestConfig_Location(t *testing.T) {
	setRequiredEnv(t)
	clearOptionalEnv(t)
	t.Setenv("TIMEZONE", "UTC")

	cfg, err := config.Load("does-not-exist.yaml")
	require.NoError(t, err)
	assert.Equal(t, time.UTC, cfg.Location())
}
