// Package v1 implements the native REST API.
package v1

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"screenfind/internal/aggregate"
	"screenfind/internal/media"
	"screenfind/internal/store"
)

// Version is reported by the status endpoint.
const Version = "0.1.0"

// Server is the v1 API server.
type Server struct {
	deps ServerDeps
	log  *slog.Logger
}

// New creates a new v1 API server. The genre catalog is loaded up front so
// handlers can resolve names without an error path.
func New(deps ServerDeps, log *slog.Logger) (*Server, error) {
	if err := deps.Validate(); err != nil {
		return nil, err
	}
	if err := deps.Genres.Load(); err != nil {
		return nil, err
	}
	return &Server{deps: deps, log: log}, nil
}

// RegisterRoutes registers API routes on the given mux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	// Discovery
	mux.HandleFunc("GET /api/v1/home", s.home)
	mux.HandleFunc("GET /api/v1/search", s.search)
	mux.HandleFunc("GET /api/v1/discover", s.discover)
	mux.HandleFunc("POST /api/v1/surprise", s.surprise)
	mux.HandleFunc("GET /api/v1/items/{source}/{type}/{id}", s.getItem)

	// Watchlist
	mux.HandleFunc("GET /api/v1/watchlist", s.listWatchlist)
	mux.HandleFunc("POST /api/v1/watchlist", s.addWatchlist)
	mux.HandleFunc("DELETE /api/v1/watchlist/{source}/{id}", s.removeWatchlist)
	mux.HandleFunc("PUT /api/v1/watchlist/{source}/{id}/category", s.setWatchlistCategory)

	// Preferences
	mux.HandleFunc("GET /api/v1/preferences", s.getPreferences)
	mux.HandleFunc("PUT /api/v1/preferences", s.savePreferences)

	// Recent searches
	mux.HandleFunc("GET /api/v1/recent", s.listRecent)
	mux.HandleFunc("GET /api/v1/recent/suggest", s.suggestRecent)

	// Catalog
	mux.HandleFunc("GET /api/v1/genres", s.listGenres)

	// System
	mux.HandleFunc("GET /api/v1/status", s.getStatus)
}

// Error response
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, code int, errCode, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: message, Code: errCode})
}

func writeJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(data)
}

// pathKey extracts the (id, source) identity from the URL path.
func pathKey(r *http.Request) (int64, media.Source, error) {
	source := media.Source(r.PathValue("source"))
	if source != media.SourceTMDB && source != media.SourceTVMaze {
		return 0, "", fmt.Errorf("unknown source: %q", r.PathValue("source"))
	}
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, "", fmt.Errorf("invalid id: %q", r.PathValue("id"))
	}
	return id, source, nil
}

// queryInt extracts an optional integer from query string.
func queryInt(r *http.Request, name string, defaultVal int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return i
}

// queryFloat extracts an optional float from query string.
func queryFloat(r *http.Request, name string) float64 {
	val := r.URL.Query().Get(name)
	if val == "" {
		return 0
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0
	}
	return f
}

// queryFilters parses the shared discover/search filter params.
func queryFilters(r *http.Request) aggregate.Filters {
	return aggregate.Filters{
		Type:      r.URL.Query().Get("type"),
		GenreID:   queryInt(r, "genre", 0),
		MinRating: queryFloat(r, "min_rating"),
		YearFrom:  queryInt(r, "year_from", 0),
		YearTo:    queryInt(r, "year_to", 0),
		Sort:      r.URL.Query().Get("sort"),
	}
}

func (s *Server) home(w http.ResponseWriter, r *http.Request) {
	home, err := s.deps.Searcher.Home(r.Context())
	if err != nil {
		writeError(w, http.StatusBadGateway, "UPSTREAM_ERROR", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, homeResponse{
		Trending:       itemResponses(home.Trending, s.deps.Genres),
		TopRatedMovies: itemResponses(home.TopRatedMovies, s.deps.Genres),
		PopularTV:      itemResponses(home.PopularTV, s.deps.Genres),
	})
}

func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	page := queryInt(r, "page", 1)
	if page < 1 {
		page = 1
	}

	result, err := s.deps.Searcher.Search(r.Context(), query, page)
	if err != nil {
		writeError(w, http.StatusBadGateway, "UPSTREAM_ERROR", err.Error())
		return
	}

	// The light provider cannot filter server-side, so active filters are
	// applied to the merged list here.
	items := aggregate.ApplyFilters(result.Items, queryFilters(r))

	if trimmed := strings.TrimSpace(query); trimmed != "" {
		if err := s.deps.Recent.Add(trimmed); err != nil {
			s.log.Warn("recording recent search failed", "error", err)
		}
	}

	writeJSON(w, http.StatusOK, resultsResponse{
		Query:      query,
		Page:       page,
		TotalPages: result.TotalPages,
		Items:      itemResponses(items, s.deps.Genres),
	})
}

func (s *Server) discover(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	if page < 1 {
		page = 1
	}
	f := queryFilters(r)

	result, err := s.deps.Searcher.Discover(r.Context(), f, page)
	if err != nil {
		writeError(w, http.StatusBadGateway, "UPSTREAM_ERROR", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, resultsResponse{
		Page:       page,
		TotalPages: result.TotalPages,
		Items:      itemResponses(result.Items, s.deps.Genres),
	})
}

func (s *Server) surprise(w http.ResponseWriter, r *http.Request) {
	typeSel := r.URL.Query().Get("type")
	genreID := queryInt(r, "genre", 0)

	item, err := s.deps.Searcher.Surprise(r.Context(), typeSel, genreID)
	switch {
	case errors.Is(err, aggregate.ErrNoResults):
		writeError(w, http.StatusNotFound, "NO_RESULTS", "nothing to pick from")
		return
	case err != nil:
		writeError(w, http.StatusBadGateway, "UPSTREAM_ERROR", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, itemResponse(*item, s.deps.Genres))
}

func (s *Server) getItem(w http.ResponseWriter, r *http.Request) {
	id, source, err := pathKey(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", err.Error())
		return
	}
	t := media.Type(r.PathValue("type"))
	if t != media.TypeMovie && t != media.TypeSeries {
		writeError(w, http.StatusBadRequest, "INVALID_TYPE", fmt.Sprintf("unknown type: %q", r.PathValue("type")))
		return
	}

	item, err := s.deps.Searcher.Details(r.Context(), source, t, id)
	switch {
	case errors.Is(err, aggregate.ErrNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", err.Error())
		return
	case err != nil:
		writeError(w, http.StatusBadGateway, "UPSTREAM_ERROR", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, itemResponse(*item, s.deps.Genres))
}

func (s *Server) listWatchlist(w http.ResponseWriter, r *http.Request) {
	entries := s.deps.Watchlist.List()
	resp := make([]watchlistEntryResponse, len(entries))
	for i, e := range entries {
		resp[i] = entryResponse(e)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) addWatchlist(w http.ResponseWriter, r *http.Request) {
	var req addWatchlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}
	if req.ID == 0 || req.Source == "" || req.Title == "" {
		writeError(w, http.StatusBadRequest, "INVALID_BODY", "id, source and title are required")
		return
	}

	item := media.Item{
		ID:          req.ID,
		Source:      media.Source(req.Source),
		Type:        media.Type(req.Type),
		Title:       req.Title,
		Poster:      req.Poster,
		PosterSmall: req.PosterSmall,
		Year:        req.Year,
		Rating:      req.Rating,
	}
	if err := s.deps.Watchlist.Add(item); err != nil {
		writeError(w, http.StatusInternalServerError, "STORE_ERROR", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]bool{"added": true})
}

func (s *Server) removeWatchlist(w http.ResponseWriter, r *http.Request) {
	id, source, err := pathKey(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", err.Error())
		return
	}
	if err := s.deps.Watchlist.Remove(id, source); err != nil {
		writeError(w, http.StatusInternalServerError, "STORE_ERROR", err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) setWatchlistCategory(w http.ResponseWriter, r *http.Request) {
	id, source, err := pathKey(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", err.Error())
		return
	}

	var req setCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	err = s.deps.Watchlist.SetCategory(id, source, store.Category(req.Category))
	switch {
	case errors.Is(err, store.ErrInvalidCategory):
		writeError(w, http.StatusBadRequest, "INVALID_CATEGORY", err.Error())
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "STORE_ERROR", err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) getPreferences(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.deps.Preferences.Get())
}

func (s *Server) savePreferences(w http.ResponseWriter, r *http.Request) {
	var prefs PrefsPayload
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}
	if err := s.deps.Preferences.Save(prefs); err != nil {
		writeError(w, http.StatusInternalServerError, "STORE_ERROR", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, s.deps.Preferences.Get())
}

func (s *Server) listRecent(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, recentResponse{Searches: s.deps.Recent.List()})
}

func (s *Server) suggestRecent(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	writeJSON(w, http.StatusOK, suggestResponse{Suggestions: s.deps.Recent.Suggest(q)})
}

func (s *Server) listGenres(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.deps.Genres.All())
}

func (s *Server) getStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, statusResponse{Status: "ok", Version: Version})
}
