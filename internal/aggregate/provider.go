// Package aggregate combines results from both catalog providers into one
// canonical, de-duplicated result set.
package aggregate

import (
	"context"

	"screenfind/internal/tmdb"
	"screenfind/internal/tvmaze"
)

//go:generate mockgen -destination mocks/mock_providers.go -package mocks screenfind/internal/aggregate RichProvider,LightProvider

// RichProvider is the metadata-heavy catalog source (TMDB).
type RichProvider interface {
	SearchMulti(ctx context.Context, query string, page int) (*tmdb.Page, error)
	DiscoverMovies(ctx context.Context, p tmdb.DiscoverParams) (*tmdb.Page, error)
	DiscoverTV(ctx context.Context, p tmdb.DiscoverParams) (*tmdb.Page, error)
	Trending(ctx context.Context, mediaType, window string) (*tmdb.Page, error)
	TopRatedMovies(ctx context.Context, page int) (*tmdb.Page, error)
	PopularTV(ctx context.Context, page int) (*tmdb.Page, error)
	MovieDetails(ctx context.Context, id int64) (*tmdb.Movie, error)
	TVDetails(ctx context.Context, id int64) (*tmdb.TVShow, error)
}

// LightProvider is the schedule-oriented catalog source (TVMaze). It has no
// native pagination.
type LightProvider interface {
	SearchShows(ctx context.Context, query string) ([]tvmaze.SearchResult, error)
	Show(ctx context.Context, id int64) (*tvmaze.Show, error)
}
