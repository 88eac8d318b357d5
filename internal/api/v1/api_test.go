package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"screenfind/internal/aggregate"
	"screenfind/internal/api/v1/mocks"
	"screenfind/internal/genres"
	"screenfind/internal/media"
	"screenfind/internal/store"
)

type testServer struct {
	srv      *Server
	mux      *http.ServeMux
	searcher *mocks.MockSearcher
	deps     ServerDeps
}

func setupServer(t *testing.T) *testServer {
	t.Helper()

	db, err := store.Open(":memory:")
	require.NoError(t, err, "open db")
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	records := store.NewRecords(db)

	ctrl := gomock.NewController(t)
	deps := ServerDeps{
		Searcher:    mocks.NewMockSearcher(ctrl),
		Watchlist:   store.NewWatchlist(records, nil, log),
		Preferences: store.NewPreferences(records, nil),
		Recent:      store.NewRecentSearches(records, nil),
		Genres:      genres.NewCatalog(),
	}

	srv, err := New(deps, log)
	require.NoError(t, err, "New")

	mux := http.NewServeMux()
	srv.RegisterRoutes(mux)
	return &testServer{
		srv:      srv,
		mux:      mux,
		searcher: deps.Searcher.(*mocks.MockSearcher),
		deps:     deps,
	}
}

func (ts *testServer) do(t *testing.T, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, target, reader)
	w := httptest.NewRecorder()
	ts.mux.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(w.Body).Decode(&v))
	return v
}

func sampleResult() *aggregate.Result {
	return &aggregate.Result{
		Items: []media.Item{
			{ID: 603, Source: media.SourceTMDB, Type: media.TypeMovie, Title: "The Matrix", GenreIDs: []int{28, 878}},
			{ID: 82, Source: media.SourceTVMaze, Type: media.TypeSeries, Title: "Game of Thrones"},
		},
		TotalPages: 4,
	}
}

func TestNewValidatesDeps(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	_, err := New(ServerDeps{}, log)
	require.Error(t, err)
}

func TestSearch(t *testing.T) {
	ts := setupServer(t)
	ts.searcher.EXPECT().Search(gomock.Any(), "matrix", 1).Return(sampleResult(), nil)

	w := ts.do(t, http.MethodGet, "/api/v1/search?q=matrix", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[resultsResponse](t, w)
	assert.Equal(t, "matrix", resp.Query)
	assert.Equal(t, 4, resp.TotalPages)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, []string{"Action", "Science Fiction"}, resp.Items[0].Genres, "genre ids resolved to names")

	assert.Equal(t, []string{"matrix"}, ts.deps.Recent.List(), "query recorded as recent search")
}

func TestSearch_EmptyQueryNotRecorded(t *testing.T) {
	ts := setupServer(t)
	ts.searcher.EXPECT().Search(gomock.Any(), "", 1).Return(&aggregate.Result{TotalPages: 1}, nil)

	w := ts.do(t, http.MethodGet, "/api/v1/search", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, ts.deps.Recent.List())
}

func TestSearch_WhitespaceQueryNotRecorded(t *testing.T) {
	ts := setupServer(t)
	ts.searcher.EXPECT().Search(gomock.Any(), "   ", 1).Return(&aggregate.Result{TotalPages: 1}, nil)

	w := ts.do(t, http.MethodGet, "/api/v1/search?q=+++", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, ts.deps.Recent.List(), "blank queries never enter the recent list")
}

func TestSearch_AppliesFiltersToMergedResults(t *testing.T) {
	ts := setupServer(t)
	ts.searcher.EXPECT().Search(gomock.Any(), "matrix", 1).Return(sampleResult(), nil)

	w := ts.do(t, http.MethodGet, "/api/v1/search?q=matrix&type=series", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[resultsResponse](t, w)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "series", resp.Items[0].Type)
}

func TestSearch_PageClamp(t *testing.T) {
	ts := setupServer(t)
	ts.searcher.EXPECT().Search(gomock.Any(), "x y", 1).Return(&aggregate.Result{TotalPages: 1}, nil)

	w := ts.do(t, http.MethodGet, "/api/v1/search?q=x+y&page=-3", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestSearch_UpstreamError(t *testing.T) {
	ts := setupServer(t)
	ts.searcher.EXPECT().Search(gomock.Any(), "matrix", 1).Return(nil, errors.New("all sources failed"))

	w := ts.do(t, http.MethodGet, "/api/v1/search?q=matrix", nil)
	require.Equal(t, http.StatusBadGateway, w.Code)
	resp := decode[errorResponse](t, w)
	assert.Equal(t, "UPSTREAM_ERROR", resp.Code)
}

func TestDiscover_ForwardsFilters(t *testing.T) {
	ts := setupServer(t)
	want := aggregate.Filters{
		Type:      "movie",
		GenreID:   28,
		MinRating: 7.5,
		YearFrom:  1990,
		YearTo:    1999,
		Sort:      "rating",
	}
	ts.searcher.EXPECT().Discover(gomock.Any(), want, 2).Return(sampleResult(), nil)

	w := ts.do(t, http.MethodGet,
		"/api/v1/discover?type=movie&genre=28&min_rating=7.5&year_from=1990&year_to=1999&sort=rating&page=2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, decode[resultsResponse](t, w).Page)
}

func TestDiscover_UpstreamError(t *testing.T) {
	ts := setupServer(t)
	ts.searcher.EXPECT().Discover(gomock.Any(), gomock.Any(), 1).Return(nil, errors.New("tmdb 500"))

	w := ts.do(t, http.MethodGet, "/api/v1/discover?type=movie", nil)
	require.Equal(t, http.StatusBadGateway, w.Code)
}

func TestSurprise(t *testing.T) {
	ts := setupServer(t)
	item := &media.Item{ID: 42, Source: media.SourceTMDB, Type: media.TypeMovie, Title: "Pick"}
	ts.searcher.EXPECT().Surprise(gomock.Any(), "movie", 0).Return(item, nil)

	w := ts.do(t, http.MethodPost, "/api/v1/surprise?type=movie", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Pick", decode[ItemResponse](t, w).Title)
}

func TestSurprise_NoResults(t *testing.T) {
	ts := setupServer(t)
	ts.searcher.EXPECT().Surprise(gomock.Any(), "", 0).Return(nil, aggregate.ErrNoResults)

	w := ts.do(t, http.MethodPost, "/api/v1/surprise", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NO_RESULTS", decode[errorResponse](t, w).Code)
}

func TestHome(t *testing.T) {
	ts := setupServer(t)
	ts.searcher.EXPECT().Home(gomock.Any()).Return(&aggregate.HomeResult{
		Trending:       []media.Item{{ID: 1, Source: media.SourceTMDB, Type: media.TypeMovie, Title: "Dune", GenreIDs: []int{878}}},
		TopRatedMovies: []media.Item{{ID: 2, Source: media.SourceTMDB, Type: media.TypeMovie, Title: "The Godfather"}},
		PopularTV:      []media.Item{{ID: 3, Source: media.SourceTMDB, Type: media.TypeSeries, Title: "The Bear"}},
	}, nil)

	w := ts.do(t, http.MethodGet, "/api/v1/home", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[homeResponse](t, w)
	require.Len(t, resp.Trending, 1)
	assert.Equal(t, []string{"Science Fiction"}, resp.Trending[0].Genres, "genre ids resolved to names")
	require.Len(t, resp.TopRatedMovies, 1)
	assert.Equal(t, "The Godfather", resp.TopRatedMovies[0].Title)
	require.Len(t, resp.PopularTV, 1)
}

func TestHome_UpstreamError(t *testing.T) {
	ts := setupServer(t)
	ts.searcher.EXPECT().Home(gomock.Any()).Return(nil, errors.New("tmdb down"))

	w := ts.do(t, http.MethodGet, "/api/v1/home", nil)
	require.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, "UPSTREAM_ERROR", decode[errorResponse](t, w).Code)
}

func TestGetItem(t *testing.T) {
	ts := setupServer(t)
	item := &media.Item{
		ID:         603,
		Source:     media.SourceTMDB,
		Type:       media.TypeMovie,
		Title:      "The Matrix",
		Runtime:    136,
		GenreNames: []string{"Action", "Science Fiction"},
	}
	ts.searcher.EXPECT().
		Details(gomock.Any(), media.SourceTMDB, media.TypeMovie, int64(603)).
		Return(item, nil)

	w := ts.do(t, http.MethodGet, "/api/v1/items/tmdb/movie/603", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[ItemResponse](t, w)
	assert.Equal(t, "The Matrix", resp.Title)
	assert.Equal(t, 136, resp.Runtime)
	assert.Equal(t, []string{"Action", "Science Fiction"}, resp.Genres)
}

func TestGetItem_NotFound(t *testing.T) {
	ts := setupServer(t)
	ts.searcher.EXPECT().
		Details(gomock.Any(), media.SourceTMDB, media.TypeMovie, int64(999)).
		Return(nil, aggregate.ErrNotFound)

	w := ts.do(t, http.MethodGet, "/api/v1/items/tmdb/movie/999", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", decode[errorResponse](t, w).Code)
}

func TestGetItem_InvalidPath(t *testing.T) {
	ts := setupServer(t)

	w := ts.do(t, http.MethodGet, "/api/v1/items/imdb/movie/603", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_ID", decode[errorResponse](t, w).Code)

	w = ts.do(t, http.MethodGet, "/api/v1/items/tmdb/person/603", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_TYPE", decode[errorResponse](t, w).Code)
}

func TestWatchlistLifecycle(t *testing.T) {
	ts := setupServer(t)

	add := addWatchlistRequest{ID: 603, Source: "tmdb", Type: "movie", Title: "The Matrix", Year: "1999", Rating: 8.2}
	w := ts.do(t, http.MethodPost, "/api/v1/watchlist", add)
	require.Equal(t, http.StatusCreated, w.Code)

	w = ts.do(t, http.MethodGet, "/api/v1/watchlist", nil)
	require.Equal(t, http.StatusOK, w.Code)
	entries := decode[[]watchlistEntryResponse](t, w)
	require.Len(t, entries, 1)
	assert.Equal(t, "To Watch", entries[0].Category)

	w = ts.do(t, http.MethodPut, "/api/v1/watchlist/tmdb/603/category", setCategoryRequest{Category: "Watching Now"})
	require.Equal(t, http.StatusNoContent, w.Code)

	w = ts.do(t, http.MethodGet, "/api/v1/watchlist", nil)
	entries = decode[[]watchlistEntryResponse](t, w)
	require.Len(t, entries, 1)
	assert.Equal(t, "Watching Now", entries[0].Category)

	w = ts.do(t, http.MethodDelete, "/api/v1/watchlist/tmdb/603", nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = ts.do(t, http.MethodGet, "/api/v1/watchlist", nil)
	assert.Empty(t, decode[[]watchlistEntryResponse](t, w))
}

func TestWatchlist_AddInvalidBody(t *testing.T) {
	ts := setupServer(t)

	w := ts.do(t, http.MethodPost, "/api/v1/watchlist", addWatchlistRequest{Title: "no id"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_BODY", decode[errorResponse](t, w).Code)
}

func TestWatchlist_UnknownSource(t *testing.T) {
	ts := setupServer(t)

	w := ts.do(t, http.MethodDelete, "/api/v1/watchlist/imdb/603", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_ID", decode[errorResponse](t, w).Code)
}

func TestWatchlist_InvalidCategory(t *testing.T) {
	ts := setupServer(t)
	require.NoError(t, ts.deps.Watchlist.Add(media.Item{ID: 1, Source: media.SourceTMDB, Type: media.TypeMovie, Title: "x"}))

	w := ts.do(t, http.MethodPut, "/api/v1/watchlist/tmdb/1/category", setCategoryRequest{Category: "Binging"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_CATEGORY", decode[errorResponse](t, w).Code)
}

func TestPreferences_RoundTrip(t *testing.T) {
	ts := setupServer(t)

	w := ts.do(t, http.MethodGet, "/api/v1/preferences", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, store.ThemeDark, decode[store.Prefs](t, w).Theme)

	saved := store.Prefs{Theme: store.ThemeLight, Filters: aggregate.Filters{Type: "series", Sort: "rating"}}
	w = ts.do(t, http.MethodPut, "/api/v1/preferences", saved)
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.do(t, http.MethodGet, "/api/v1/preferences", nil)
	assert.Equal(t, saved, decode[store.Prefs](t, w))
}

func TestRecentAndSuggest(t *testing.T) {
	ts := setupServer(t)
	require.NoError(t, ts.deps.Recent.Add("breaking bad"))
	require.NoError(t, ts.deps.Recent.Add("the wire"))

	w := ts.do(t, http.MethodGet, "/api/v1/recent", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"the wire", "breaking bad"}, decode[recentResponse](t, w).Searches)

	w = ts.do(t, http.MethodGet, "/api/v1/recent/suggest?q=breaking+b", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, decode[suggestResponse](t, w).Suggestions, "breaking bad")
}

func TestGenres(t *testing.T) {
	ts := setupServer(t)

	w := ts.do(t, http.MethodGet, "/api/v1/genres", nil)
	require.Equal(t, http.StatusOK, w.Code)
	lists := decode[genres.Lists](t, w)
	assert.NotEmpty(t, lists.Movie)
	assert.NotEmpty(t, lists.TV)
}

func TestStatus(t *testing.T) {
	ts := setupServer(t)

	w := ts.do(t, http.MethodGet, "/api/v1/status", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode[statusResponse](t, w).Status)
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "application/json"))
}
