package ports

import (
	"context"

	"github.com/alejandrodnm/pricelog/internal/domain"
)

// Notifier presents the outcome of a sync pass to the user.
type Notifier interface {
	// Notify reports the run summary. The console implementation
	// prints either a compact line or a full per-ticker table.
	Notify(ctx context.Context, summary domain.RunSummary) error
}
