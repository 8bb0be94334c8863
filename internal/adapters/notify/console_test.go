package notify_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/alejandrodnm/pricelog/internal/adapters/notify"
	"github.com/alejandrodnm/pricelog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeSummary() domain.RunSummary {
	bucket := domain.FloorToBucket(
		time.Date(2026, 8, 23, 9, 47, 12, 0, time.UTC), 10)
	return domain.RunSummary{
		Bucket:  bucket,
		Created: 1,
		Updated: 1,
		Skipped: 1,
		Actions: []domain.Action{
			{Kind: domain.ActionUpdate, Ticker: "AAPL", Price: 227.3, PageID: "hist-aapl"},
			{Kind: domain.ActionCreate, Ticker: "MSFT", Price: 415.0},
			{Kind: domain.ActionSkip, Ticker: "NVDA", Reason: "missing price"},
		},
	}
}

func TestConsole_Notify_Compact(t *testing.T) {
	var buf bytes.Buffer
	n := notify.NewConsoleWriter(&buf, false)

	err := n.Notify(context.Background(), makeSummary())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "2026-08-23 09:40")
	assert.Contains(t, out, "3 open trades")
	assert.Contains(t, out, "created=1 updated=1 skipped=1")
	assert.NotContains(t, out, "AAPL", "compact mode stays one line")
}

func TestConsole_Notify_Table(t *testing.T) {
	var buf bytes.Buffer
	n := notify.NewConsoleWriter(&buf, true)

	err := n.Notify(context.Background(), makeSummary())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "AAPL")
	assert.Contains(t, out, "MSFT")
	assert.Contains(t, out, "update")
	assert.Contains(t, out, "create")
	assert.Contains(t, out, "missing price")
	assert.Contains(t, out, "created=1 updated=1 skipped=1")
}

func TestConsole_Notify_DryRunTagged(t *testing.T) {
	var buf bytes.Buffer
	n := notify.NewConsoleWriter(&buf, false)

	summary := makeSummary()
	summary.DryRun = true

	require.NoError(t, n.Notify(context.Background(), summary))
	assert.Contains(t, buf.String(), "[dry-run]")
}

func TestConsole_Notify_EmptyRun(t *testing.T) {
	var buf bytes.Buffer
	n := notify.NewConsoleWriter(&buf, true)

	err := n.Notify(context.Background(), domain.RunSummary{
		Bucket: domain.FloorToBucket(time.Date(2026, 8, 23, 9, 47, 0, 0, time.UTC), 10),
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "no open trades")
}
