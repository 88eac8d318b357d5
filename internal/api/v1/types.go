package v1

import (
	"time"

	"screenfind/internal/genres"
	"screenfind/internal/media"
	"screenfind/internal/store"
)

// ItemResponse is the wire form of a catalog item.
type ItemResponse struct {
	ID          int64    `json:"id"`
	Source      string   `json:"source"`
	Type        string   `json:"type"`
	Title       string   `json:"title"`
	Overview    string   `json:"overview,omitempty"`
	Poster      string   `json:"poster,omitempty"`
	PosterSmall string   `json:"poster_small,omitempty"`
	Backdrop    string   `json:"backdrop,omitempty"`
	Date        string   `json:"date,omitempty"`
	Year        string   `json:"year,omitempty"`
	Rating      float64  `json:"rating"`
	VoteCount   int      `json:"vote_count,omitempty"`
	Popularity  float64  `json:"popularity,omitempty"`
	Genres      []string `json:"genres,omitempty"`
	Language    string   `json:"language,omitempty"`
	Network     string   `json:"network,omitempty"`
	Status      string   `json:"status,omitempty"`
	Runtime     int      `json:"runtime,omitempty"`
}

type resultsResponse struct {
	Query      string         `json:"query,omitempty"`
	Page       int            `json:"page"`
	TotalPages int            `json:"total_pages"`
	Items      []ItemResponse `json:"items"`
}

type homeResponse struct {
	Trending       []ItemResponse `json:"trending"`
	TopRatedMovies []ItemResponse `json:"top_rated_movies"`
	PopularTV      []ItemResponse `json:"popular_tv"`
}

type watchlistEntryResponse struct {
	ID          int64   `json:"id"`
	Source      string  `json:"source"`
	Type        string  `json:"type"`
	Title       string  `json:"title"`
	Poster      string  `json:"poster,omitempty"`
	PosterSmall string  `json:"poster_small,omitempty"`
	Year        string  `json:"year,omitempty"`
	Rating      float64 `json:"rating"`
	Category    string  `json:"category"`
	AddedAt     string  `json:"added_at"`
}

type addWatchlistRequest struct {
	ID          int64   `json:"id"`
	Source      string  `json:"source"`
	Type        string  `json:"type"`
	Title       string  `json:"title"`
	Poster      string  `json:"poster"`
	PosterSmall string  `json:"poster_small"`
	Year        string  `json:"year"`
	Rating      float64 `json:"rating"`
}

type setCategoryRequest struct {
	Category string `json:"category"`
}

// PrefsPayload is the wire form of saved preferences. Filters reuse the
// store's JSON shape so saved discover state round-trips unchanged.
type PrefsPayload = store.Prefs

type recentResponse struct {
	Searches []string `json:"searches"`
}

type suggestResponse struct {
	Suggestions []string `json:"suggestions"`
}

type statusResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

func itemResponse(item media.Item, catalog *genres.Catalog) ItemResponse {
	r := ItemResponse{
		ID:          item.ID,
		Source:      string(item.Source),
		Type:        string(item.Type),
		Title:       item.Title,
		Overview:    item.Overview,
		Poster:      item.Poster,
		PosterSmall: item.PosterSmall,
		Backdrop:    item.Backdrop,
		Date:        item.Date,
		Year:        item.Year,
		Rating:      item.Rating,
		VoteCount:   item.VoteCount,
		Popularity:  item.Popularity,
		Language:    item.Language,
		Network:     item.Network,
		Status:      item.Status,
		Runtime:     item.Runtime,
	}
	switch {
	case len(item.GenreNames) > 0:
		r.Genres = item.GenreNames
	case len(item.GenreIDs) > 0 && catalog != nil:
		r.Genres = catalog.Names(item.GenreIDs)
	}
	return r
}

func itemResponses(items []media.Item, catalog *genres.Catalog) []ItemResponse {
	out := make([]ItemResponse, len(items))
	for i, item := range items {
		out[i] = itemResponse(item, catalog)
	}
	return out
}

func entryResponse(e store.Entry) watchlistEntryResponse {
	return watchlistEntryResponse{
		ID:          e.ID,
		Source:      string(e.Source),
		Type:        string(e.Type),
		Title:       e.Title,
		Poster:      e.Poster,
		PosterSmall: e.PosterSmall,
		Year:        e.Year,
		Rating:      e.Rating,
		Category:    string(e.Category),
		AddedAt:     e.AddedAt.UTC().Format(time.RFC3339),
	}
}
