package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alejandrodnm/pricelog/config"
	"github.com/alejandrodnm/pricelog/internal/adapters/notify"
	"github.com/alejandrodnm/pricelog/internal/adapters/notion"
	"github.com/alejandrodnm/pricelog/internal/recorder"
	"github.com/google/uuid"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "path to config file")
	dryRun := flag.Bool("dry-run", false, "read and reconcile without writing to Notion")
	verbose := flag.Bool("verbose", false, "set log level to debug")
	logFormat := flag.String("format", "", "log format: text|json (overrides config)")
	table := flag.Bool("table", false, "print full per-trade table (default: compact 1-line)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "err", err, "path", *configPath)
		os.Exit(1)
	}

	if *verbose {
		cfg.Log.Level = "debug"
	}
	if *logFormat != "" {
		cfg.Log.Format = *logFormat
	}
	setupLogger(cfg.Log)
	slog.SetDefault(slog.Default().With("run_id", uuid.NewString()[:8]))

	slog.Info("pricelog starting",
		"config", *configPath,
		"trading_db", cfg.Notion.TradingDBID,
		"history_db", cfg.Notion.HistoryDBID,
		"timezone", cfg.Sync.Timezone,
		"bucket_minutes", cfg.Sync.BucketMinutes,
		"dry_run", *dryRun,
	)

	client := notion.NewClient(notion.Options{
		BaseURL:     cfg.Notion.BaseURL,
		Token:       cfg.Notion.Token,
		TradingDBID: cfg.Notion.TradingDBID,
		HistoryDBID: cfg.Notion.HistoryDBID,
		Schema:      toSchema(cfg),
	})

	notifier := notify.NewConsole(*table)

	recCfg := recorder.DefaultConfig()
	recCfg.BucketMinutes = cfg.Sync.BucketMinutes
	recCfg.PointType = cfg.Sync.PointType
	recCfg.DryRun = *dryRun

	loc := cfg.Location()
	clock := func() time.Time { return time.Now().In(loc) }

	rec := recorder.New(recCfg, clock, client, client, notifier)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	summary, err := rec.RunOnce(ctx)
	if err != nil {
		slog.Error("sync failed", "err", err)
		os.Exit(1)
	}

	slog.Info("pricelog finished",
		"bucket", summary.Bucket.Key(),
		"created", summary.Created,
		"updated", summary.Updated,
		"skipped", summary.Skipped,
	)
}

// toSchema maps the YAML-facing property names onto the Notion client's
// schema. Anything the config leaves blank falls back to the client's
// own defaults.
func toSchema(cfg *config.Config) notion.Schema {
	return notion.Schema{
		Trading: notion.TradingSchema{
			Ticker:    cfg.Notion.Trading.TickerProp,
			Price:     cfg.Notion.Trading.PriceProp,
			Status:    cfg.Notion.Trading.StatusProp,
			OpenValue: cfg.Notion.Trading.OpenValue,
		},
		History: notion.HistorySchema{
			Ticker:    cfg.Notion.History.TickerProp,
			Trade:     cfg.Notion.History.TradeProp,
			Time:      cfg.Notion.History.TimeProp,
			BucketKey: cfg.Notion.History.BucketKeyProp,
			Price:     cfg.Notion.History.PriceProp,
			PointType: cfg.Notion.History.PointTypeProp,
		},
	}
}

func setupLogger(cfg config.LogConfig) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}
