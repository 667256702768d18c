// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pdiddy/patent-lens/internal/httputil"
	"github.com/pdiddy/patent-lens/pkg/types"
)

// defaultBaseURL is the PatentsView patent query endpoint. Tests and
// alternate deployments override it through SearchConfig.BaseURL.
const defaultBaseURL = "https://api.patentsview.org/patents/query"

// searchFields lists the fields requested from the API. The normalizer
// depends on exactly this set.
const searchFields = `["patent_number","patent_date","patent_title","patent_abstract","patent_firstnamed_assignee_country","patent_type"]`

const (
	defaultPerPage = 1000
	maxPerPage     = 1000
	defaultTimeout = 30 * time.Second
	defaultAgent   = "patent-lens/0.1"
)

// Response is the decoded API payload. Patents keeps the raw objects for
// the normalizer; Count and Total are the API's own bookkeeping.
type Response struct {
	Patents []map[string]any `json:"patents"`
	Count   int              `json:"count"`
	Total   int              `json:"total_patent_count"`
}

// Client issues PatentsView queries. Construct it with NewClient so the
// configuration is validated and defaulted once.
type Client struct {
	// HTTPClient is defaulted by NewClient; tests substitute an
	// httptest client here.
	HTTPClient *http.Client

	cfg types.SearchConfig
}

// NewClient validates cfg and returns a ready client. The API key is
// required: PatentsView rejects anonymous queries, so a missing key is a
// configuration error surfaced here rather than a mid-search HTTP 403.
func NewClient(cfg types.SearchConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, &ValidationError{Field: "api_key", Reason: "PatentsView API key is not configured"}
	}
	if cfg.PerPage <= 0 {
		cfg.PerPage = defaultPerPage
	}
	if cfg.PerPage > maxPerPage {
		cfg.PerPage = maxPerPage
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultAgent
	}

	return &Client{
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
		cfg:        cfg,
	}, nil
}

// PerPage returns the effective page size after defaulting and capping.
func (c *Client) PerPage() int { return c.cfg.PerPage }

// Search executes one query against the API: GET with q (boolean query),
// f (field list), and o (result options) parameters and the X-Api-Key
// header. HTTP 429 responses are retried with backoff before failing.
func (c *Client) Search(ctx context.Context, q Query) (*Response, error) {
	queryJSON, err := BuildQuery(q)
	if err != nil {
		return nil, err
	}

	params := url.Values{
		"q": {queryJSON},
		"f": {searchFields},
		"o": {fmt.Sprintf(`{"per_page":%d}`, c.cfg.PerPage)},
	}
	reqURL := c.cfg.BaseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	req.Header.Set("X-Api-Key", c.cfg.APIKey)

	resp, err := httputil.DoWithRetry(ctx, c.HTTPClient, req, c.cfg.MaxRetries)
	if err != nil {
		return nil, fmt.Errorf("PatentsView API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, fmt.Errorf("PatentsView rate limit exceeded (HTTP 429)")
	}
	if resp.StatusCode != http.StatusOK {
		if snippet := readErrorBody(resp.Body); snippet != "" {
			return nil, fmt.Errorf("PatentsView API returned HTTP %d: %s", resp.StatusCode, snippet)
		}
		return nil, fmt.Errorf("PatentsView API returned HTTP %d", resp.StatusCode)
	}

	var r Response
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return nil, fmt.Errorf("parsing PatentsView response: %w", err)
	}
	return &r, nil
}

// readErrorBody returns a short, single-line excerpt of an error response
// body for diagnostics.
func readErrorBody(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 512))
	if err != nil {
		return ""
	}
	return strings.Join(strings.Fields(string(data)), " ")
}
