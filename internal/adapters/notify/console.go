package notify

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alejandrodnm/pricelog/internal/domain"
	"github.com/olekukonko/tablewriter"
)

// Console implements ports.Notifier.
type Console struct {
	out   io.Writer
	table bool
}

// NewConsole creates a notifier that writes to stdout.
func NewConsole(table bool) *Console {
	return &Console{out: os.Stdout, table: table}
}

// NewConsoleWriter creates a notifier for tests.
func NewConsoleWriter(w io.Writer, table bool) *Console {
	return &Console{out: w, table: table}
}

// Notify prints the run summary in the configured mode.
func (c *Console) Notify(_ context.Context, summary domain.RunSummary) error {
	if summary.Total() == 0 {
		fmt.Fprintf(c.out, "[%s] bucket %s | no open trades\n",
			time.Now().Format("15:04:05"), summary.Bucket.Key())
		return nil
	}

	if c.table {
		c.printFull(summary)
	} else {
		c.printCompact(summary)
	}
	return nil
}

// printCompact prints the essentials on one line.
func (c *Console) printCompact(s domain.RunSummary) {
	fmt.Fprintf(c.out, "[%s] %sbucket %s | %d open trades | created=%d updated=%d skipped=%d\n",
		time.Now().Format("15:04:05"), dryRunTag(s),
		s.Bucket.Key(), s.Total(), s.Created, s.Updated, s.Skipped)
}

// printFull prints the per-ticker action table plus the totals.
func (c *Console) printFull(s domain.RunSummary) {
	fmt.Fprintf(c.out, "\n[%s] %sbucket %s (%d min) — %d open trades\n",
		time.Now().Format("15:04:05"), dryRunTag(s),
		s.Bucket.Key(), s.Bucket.Minutes, s.Total())

	table := tablewriter.NewWriter(c.out)
	table.Header("#", "Ticker", "Action", "Price", "Detail")

	for i, a := range s.Actions {
		table.Append(
			fmt.Sprintf("%d", i+1),
			tickerLabel(a.Ticker),
			string(a.Kind),
			priceLabel(a),
			actionDetail(a),
		)
	}
	table.Render()

	fmt.Fprintf(c.out, "  created=%d updated=%d skipped=%d\n\n",
		s.Created, s.Updated, s.Skipped)
}

// --- helpers ---

func dryRunTag(s domain.RunSummary) string {
	if s.DryRun {
		return "[dry-run] "
	}
	return ""
}

func tickerLabel(t string) string {
	if t == "" {
		return "(none)"
	}
	return truncate(t, 12)
}

func priceLabel(a domain.Action) string {
	if a.Kind == domain.ActionSkip {
		return "-"
	}
	return fmt.Sprintf("%.2f", a.Price)
}

func actionDetail(a domain.Action) string {
	switch a.Kind {
	case domain.ActionSkip:
		return a.Reason
	case domain.ActionUpdate:
		return "page " + truncate(a.PageID, 8)
	default:
		return ""
	}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
