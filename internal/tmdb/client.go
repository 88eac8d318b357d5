package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultBaseURL = "https://api.themoviedb.org"

// Sentinel errors for TMDB API responses.
var (
	ErrNotFound    = errors.New("resource not found")
	ErrUnavailable = errors.New("tmdb unavailable")
)

// Client is a TMDB API client.
type Client struct {
	apiKey     string
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

// NewClient creates a new TMDB client.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
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

// get performs a GET against the v3 API and decodes the JSON response into v.
func (c *Client) get(ctx context.Context, path string, params url.Values, v any) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/3"+path+"?"+params.Encode(), nil)
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

// SearchMulti searches movies, TV shows, and people in one call.
func (c *Client) SearchMulti(ctx context.Context, query string, page int) (*Page, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("page", strconv.Itoa(page))

	var p Page
	if err := c.get(ctx, "/search/multi", params, &p); err != nil {
		return nil, fmt.Errorf("search multi: %w", err)
	}
	return &p, nil
}

// DiscoverMovies lists movies matching the given filters.
func (c *Client) DiscoverMovies(ctx context.Context, dp DiscoverParams) (*Page, error) {
	params := discoverValues(dp, "primary_release_date")

	var p Page
	if err := c.get(ctx, "/discover/movie", params, &p); err != nil {
		return nil, fmt.Errorf("discover movies: %w", err)
	}
	return &p, nil
}

// DiscoverTV lists TV shows matching the given filters.
func (c *Client) DiscoverTV(ctx context.Context, dp DiscoverParams) (*Page, error) {
	params := discoverValues(dp, "first_air_date")

	var p Page
	if err := c.get(ctx, "/discover/tv", params, &p); err != nil {
		return nil, fmt.Errorf("discover tv: %w", err)
	}
	return &p, nil
}

// discoverValues builds the query parameters for a discover request.
// dateField is the type-specific date field name for year bounds.
func discoverValues(dp DiscoverParams, dateField string) url.Values {
	params := url.Values{}

	sortBy := dp.SortBy
	if sortBy == "" {
		sortBy = "popularity.desc"
	}
	params.Set("sort_by", sortBy)

	if dp.GenreID > 0 {
		params.Set("with_genres", strconv.Itoa(dp.GenreID))
	}
	if dp.MinRating > 0 {
		params.Set("vote_average.gte", strconv.FormatFloat(dp.MinRating, 'f', -1, 64))
	}
	if dp.YearFrom > 0 {
		params.Set(dateField+".gte", fmt.Sprintf("%04d-01-01", dp.YearFrom))
	}
	if dp.YearTo > 0 {
		params.Set(dateField+".lte", fmt.Sprintf("%04d-12-31", dp.YearTo))
	}

	page := dp.Page
	if page < 1 {
		page = 1
	}
	params.Set("page", strconv.Itoa(page))

	return params
}

// Trending lists trending content. mediaType is "all", "movie", or "tv";
// window is "day" or "week".
func (c *Client) Trending(ctx context.Context, mediaType, window string) (*Page, error) {
	var p Page
	if err := c.get(ctx, "/trending/"+mediaType+"/"+window, nil, &p); err != nil {
		return nil, fmt.Errorf("trending: %w", err)
	}
	return &p, nil
}

// TopRatedMovies lists top rated movies.
func (c *Client) TopRatedMovies(ctx context.Context, page int) (*Page, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))

	var p Page
	if err := c.get(ctx, "/movie/top_rated", params, &p); err != nil {
		return nil, fmt.Errorf("top rated movies: %w", err)
	}
	return &p, nil
}

// PopularTV lists popular TV shows.
func (c *Client) PopularTV(ctx context.Context, page int) (*Page, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))

	var p Page
	if err := c.get(ctx, "/tv/popular", params, &p); err != nil {
		return nil, fmt.Errorf("popular tv: %w", err)
	}
	return &p, nil
}

// MovieDetails fetches full movie metadata by TMDB ID.
func (c *Client) MovieDetails(ctx context.Context, id int64) (*Movie, error) {
	var m Movie
	if err := c.get(ctx, fmt.Sprintf("/movie/%d", id), nil, &m); err != nil {
		return nil, fmt.Errorf("movie details %d: %w", id, err)
	}
	return &m, nil
}

// TVDetails fetches full TV show metadata by TMDB ID.
func (c *Client) TVDetails(ctx context.Context, id int64) (*TVShow, error) {
	var s TVShow
	if err := c.get(ctx, fmt.Sprintf("/tv/%d", id), nil, &s); err != nil {
		return nil, fmt.Errorf("tv details %d: %w", id, err)
	}
	return &s, nil
}
