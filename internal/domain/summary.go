package domain

// ActionKind classifies what the reconciler did with one trade row.
type ActionKind string

const (
	ActionCreate ActionKind = "create"
	ActionUpdate ActionKind = "update"
	ActionSkip   ActionKind = "skip"
)

// Action records the outcome for a single trade row, in source order.
type Action struct {
	Kind   ActionKind
	Ticker string
	Price  float64
	// PageID is the history row that was updated; empty for creates
	// and skips.
	PageID string
	// Reason explains a skip; empty otherwise.
	Reason string
}

// RunSummary aggregates one sync pass.
type RunSummary struct {
	Bucket Bucket
	// DryRun marks a pass that planned the writes without issuing them.
	DryRun  bool
	Created int
	Updated int
	Skipped int
	Actions []Action
}

// Total returns the number of trade rows examined.
func (s RunSummary) Total() int {
	return s.Created + s.Updated + s.Skipped
}
