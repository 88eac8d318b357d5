package tvmaze

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://api.tvmaze.com"

// Sentinel errors for TVMaze API responses.
var (
	ErrNotFound    = errors.New("show not found")
	ErrUnavailable = errors.New("tvmaze unavailable")
)

// Client is a TVMaze API client. The API is keyless.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a new TVMaze client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) get(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// SearchShows searches shows by name. TVMaze has no pagination; the API
// returns its full ranked result set in one response.
func (c *Client) SearchShows(ctx context.Context, query string) ([]SearchResult, error) {
	var results []SearchResult
	if err := c.get(ctx, "/search/shows?q="+url.QueryEscape(query), &results); err != nil {
		return nil, fmt.Errorf("search shows: %w", err)
	}
	return results, nil
}

// Show fetches a show by TVMaze ID.
func (c *Client) Show(ctx context.Context, id int64) (*Show, error) {
	var s Show
	if err := c.get(ctx, fmt.Sprintf("/shows/%d", id), &s); err != nil {
		return nil, fmt.Errorf("show %d: %w", id, err)
	}
	return &s, nil
}
