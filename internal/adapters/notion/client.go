package notion

// client.go — Notion REST API client.
//
// One shared HTTP client serves both databases. Calls are paced with a
// token bucket sized for Notion's documented 3 req/s average. Pacing
// spaces requests out but never retries: a request that still comes
// back 429 fails the run like any other API error.

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultBaseURL = "https://api.notion.com"
	apiVersion     = "2022-06-28"

	requestTimeout = 30 * time.Second

	// Notion allows 3 requests per second on average per integration.
	requestsPerSec = 3
)

// APIError is a non-2xx answer from the Notion API. The response body
// is kept verbatim: Notion puts the useful detail (validation messages,
// unknown property names) there, not in the status line.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("notion api error %d: %s", e.StatusCode, e.Body)
}

// Client talks to the Notion REST API for the trading-log and
// price-history databases. It implements ports.TradeSource and
// ports.HistoryStore.
type Client struct {
	http      *http.Client
	baseURL   string
	token     string
	tradingDB string
	historyDB string
	schema    Schema
	limiter   *rate.Limiter
}

// Options configures a Client. Zero-value Schema fields fall back to
// the stock template column names.
type Options struct {
	// BaseURL overrides the production API endpoint; tests point it at
	// a local server.
	BaseURL     string
	Token       string
	TradingDBID string
	HistoryDBID string
	Schema      Schema
}

// NewClient creates a Client for the given databases.
func NewClient(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = defaultBaseURL
	}
	opts.Schema.applyDefaults()

	return &Client{
		http:      &http.Client{Timeout: requestTimeout},
		baseURL:   strings.TrimRight(opts.BaseURL, "/"),
		token:     opts.Token,
		tradingDB: opts.TradingDBID,
		historyDB: opts.HistoryDBID,
		schema:    opts.Schema,
		limiter:   rate.NewLimiter(requestsPerSec, requestsPerSec),
	}
}

// post sends a JSON POST and decodes the answer into out when non-nil.
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// patch sends a JSON PATCH and decodes the answer into out when non-nil.
func (c *Client) patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, body, out)
}

// do executes exactly one request. There is no retry loop: the tool
// runs on a schedule and the next invocation is the retry.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Notion-Version", apiVersion)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(respBody)),
		}
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// queryAll drains a database query, following next_cursor while
// has_more holds, and returns the accumulated rows in API order.
func (c *Client) queryAll(ctx context.Context, dbID string, filter any) ([]page, error) {
	var all []page
	cursor := ""

	for {
		req := queryRequest{Filter: filter, StartCursor: cursor}

		var resp queryResponse
		if err := c.post(ctx, "/v1/databases/"+dbID+"/query", req, &resp); err != nil {
			return nil, err
		}
		all = append(all, resp.Results...)

		slog.Debug("fetched query page",
			"db", shortID(dbID),
			"count", len(resp.Results),
			"total", len(all),
			"has_more", resp.HasMore,
		)

		if !resp.HasMore || resp.NextCursor == "" {
			break
		}
		cursor = resp.NextCursor
	}

	return all, nil
}

// shortID abbreviates a Notion ID for log lines.
func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
