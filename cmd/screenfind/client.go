package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Client wraps HTTP calls to the screenfind server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new screenfind API client.
func NewClient(serverURL string) *Client {
	return &Client{
		baseURL: serverURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) get(path string, result any) error {
	resp, err := c.httpClient.Get(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server error %d: %s", resp.StatusCode, string(body))
	}

	return json.NewDecoder(resp.Body).Decode(result)
}

func (c *Client) post(path string, body any, result any) error {
	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal error: %w", err)
		}
		reader = bytes.NewReader(jsonBody)
	}

	resp, err := c.httpClient.Post(c.baseURL+path, "application/json", reader)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server error %d: %s", resp.StatusCode, string(respBody))
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}
	return nil
}

func (c *Client) put(path string, body any) error {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}

	req, err := http.NewRequest(http.MethodPut, c.baseURL+path, bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("request creation failed: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server error %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

func (c *Client) delete(path string) error {
	req, err := http.NewRequest(http.MethodDelete, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("request creation failed: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server error %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

// API response types (mirror server types)

type StatusResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type Item struct {
	ID         int64    `json:"id"`
	Source     string   `json:"source"`
	Type       string   `json:"type"`
	Title      string   `json:"title"`
	Overview   string   `json:"overview"`
	Year       string   `json:"year"`
	Rating     float64  `json:"rating"`
	Popularity float64  `json:"popularity"`
	Genres     []string `json:"genres"`
	Network    string   `json:"network"`
	Status     string   `json:"status"`
	Runtime    int      `json:"runtime"`
}

type ResultsResponse struct {
	Query      string `json:"query"`
	Page       int    `json:"page"`
	TotalPages int    `json:"total_pages"`
	Items      []Item `json:"items"`
}

type WatchlistEntry struct {
	ID       int64   `json:"id"`
	Source   string  `json:"source"`
	Type     string  `json:"type"`
	Title    string  `json:"title"`
	Year     string  `json:"year"`
	Rating   float64 `json:"rating"`
	Category string  `json:"category"`
	AddedAt  string  `json:"added_at"`
}

type HomeResponse struct {
	Trending       []Item `json:"trending"`
	TopRatedMovies []Item `json:"top_rated_movies"`
	PopularTV      []Item `json:"popular_tv"`
}

type RecentResponse struct {
	Searches []string `json:"searches"`
}

type SuggestResponse struct {
	Suggestions []string `json:"suggestions"`
}

// Status fetches server status.
func (c *Client) Status() (*StatusResponse, error) {
	var out StatusResponse
	if err := c.get("/api/v1/status", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Search runs a paged catalog search.
func (c *Client) Search(query string, page int) (*ResultsResponse, error) {
	v := url.Values{}
	v.Set("q", query)
	if page > 1 {
		v.Set("page", strconv.Itoa(page))
	}
	var out ResultsResponse
	if err := c.get("/api/v1/search?"+v.Encode(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DiscoverParams are the browse filters.
type DiscoverParams struct {
	Type      string
	Genre     int
	MinRating float64
	YearFrom  int
	YearTo    int
	Sort      string
	Page      int
}

// Discover browses the catalog by filters.
func (c *Client) Discover(p DiscoverParams) (*ResultsResponse, error) {
	v := url.Values{}
	if p.Type != "" {
		v.Set("type", p.Type)
	}
	if p.Genre > 0 {
		v.Set("genre", strconv.Itoa(p.Genre))
	}
	if p.MinRating > 0 {
		v.Set("min_rating", strconv.FormatFloat(p.MinRating, 'f', -1, 64))
	}
	if p.YearFrom > 0 {
		v.Set("year_from", strconv.Itoa(p.YearFrom))
	}
	if p.YearTo > 0 {
		v.Set("year_to", strconv.Itoa(p.YearTo))
	}
	if p.Sort != "" {
		v.Set("sort", p.Sort)
	}
	if p.Page > 1 {
		v.Set("page", strconv.Itoa(p.Page))
	}
	var out ResultsResponse
	if err := c.get("/api/v1/discover?"+v.Encode(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Surprise asks the server for one random pick.
func (c *Client) Surprise(typeSel string, genre int) (*Item, error) {
	v := url.Values{}
	if typeSel != "" {
		v.Set("type", typeSel)
	}
	if genre > 0 {
		v.Set("genre", strconv.Itoa(genre))
	}
	path := "/api/v1/surprise"
	if len(v) > 0 {
		path += "?" + v.Encode()
	}
	var out Item
	if err := c.post(path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Home fetches the landing-page rows.
func (c *Client) Home() (*HomeResponse, error) {
	var out HomeResponse
	if err := c.get("/api/v1/home", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Details fetches one item's full metadata.
func (c *Client) Details(source, mediaType string, id int64) (*Item, error) {
	var out Item
	if err := c.get(fmt.Sprintf("/api/v1/items/%s/%s/%d", source, mediaType, id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Watchlist fetches all watchlist entries.
func (c *Client) Watchlist() ([]WatchlistEntry, error) {
	var out []WatchlistEntry
	if err := c.get("/api/v1/watchlist", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// WatchlistAdd adds an item to the watchlist.
func (c *Client) WatchlistAdd(e WatchlistEntry) error {
	return c.post("/api/v1/watchlist", e, nil)
}

// WatchlistRemove removes an entry by identity.
func (c *Client) WatchlistRemove(source string, id int64) error {
	return c.delete(fmt.Sprintf("/api/v1/watchlist/%s/%d", source, id))
}

// WatchlistSetCategory moves an entry to a category.
func (c *Client) WatchlistSetCategory(source string, id int64, category string) error {
	return c.put(fmt.Sprintf("/api/v1/watchlist/%s/%d/category", source, id),
		map[string]string{"category": category})
}

// Recent fetches the recent search list.
func (c *Client) Recent() (*RecentResponse, error) {
	var out RecentResponse
	if err := c.get("/api/v1/recent", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Suggest fetches did-you-mean corrections for a partial query.
func (c *Client) Suggest(q string) (*SuggestResponse, error) {
	var out SuggestResponse
	if err := c.get("/api/v1/recent/suggest?q="+url.QueryEscape(q), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
