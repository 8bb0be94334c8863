package notion

// Raw API DTOs. Only used inside this package; props.go converts
// between these shapes and domain values.

// queryRequest is the body of POST /v1/databases/{id}/query.
type queryRequest struct {
	Filter      any    `json:"filter,omitempty"`
	StartCursor string `json:"start_cursor,omitempty"`
}

// queryResponse is one page of query results.
type queryResponse struct {
	Results    []page `json:"results"`
	NextCursor string `json:"next_cursor"`
	HasMore    bool   `json:"has_more"`
}

// page is one database row. Property cells stay raw here; the
// extractors in props.go dig typed values out.
type page struct {
	ID         string              `json:"id"`
	Properties map[string]property `json:"properties"`
}

// property is one cell of a row. The field matching the "type"
// discriminator is set, the rest stay zero.
type property struct {
	Type     string     `json:"type"`
	Title    []richText `json:"title,omitempty"`
	RichText []richText `json:"rich_text,omitempty"`
	Number   *float64   `json:"number,omitempty"`
}

// richText is one fragment of a title or rich_text cell. Reads use
// PlainText; writes set Text.
type richText struct {
	PlainText string    `json:"plain_text,omitempty"`
	Text      *textSpan `json:"text,omitempty"`
}

type textSpan struct {
	Content string `json:"content"`
}

// --- query filters ---

// statusFilter matches a status-type column by exact value.
type statusFilter struct {
	Property string       `json:"property"`
	Status   equalsClause `json:"status"`
}

// selectFilter matches a select-type column by exact value. Fallback
// for trading logs whose status column is a plain select.
type selectFilter struct {
	Property string       `json:"property"`
	Select   equalsClause `json:"select"`
}

// textFilter matches a rich_text column by exact value.
type textFilter struct {
	Property string       `json:"property"`
	RichText equalsClause `json:"rich_text"`
}

type equalsClause struct {
	Equals string `json:"equals"`
}

// --- write payloads ---

// createPageRequest is the body of POST /v1/pages.
type createPageRequest struct {
	Parent     parentRef            `json:"parent"`
	Properties map[string]propValue `json:"properties"`
}

// updatePageRequest is the body of PATCH /v1/pages/{id}.
type updatePageRequest struct {
	Properties map[string]propValue `json:"properties"`
}

type parentRef struct {
	DatabaseID string `json:"database_id"`
}

// propValue is one property in a write payload. Exactly one field is
// set, matching the type of the target column.
type propValue struct {
	Title    []richText    `json:"title,omitempty"`
	RichText []richText    `json:"rich_text,omitempty"`
	Number   *float64      `json:"number,omitempty"`
	Date     *dateValue    `json:"date,omitempty"`
	Select   *selectValue  `json:"select,omitempty"`
	Relation []relationRef `json:"relation,omitempty"`
}

type dateValue struct {
	Start string `json:"start"`
}

type selectValue struct {
	Name string `json:"name"`
}

type relationRef struct {
	ID string `json:"id"`
}
