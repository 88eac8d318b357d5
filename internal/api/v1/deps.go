package v1

import (
	"context"
	"errors"

	"screenfind/internal/aggregate"
	"screenfind/internal/genres"
	"screenfind/internal/media"
	"screenfind/internal/store"
)

//go:generate mockgen -destination mocks/mock_searcher.go -package mocks screenfind/internal/api/v1 Searcher

// Searcher defines the aggregate query surface the API depends on.
type Searcher interface {
	Search(ctx context.Context, query string, page int) (*aggregate.Result, error)
	Discover(ctx context.Context, f aggregate.Filters, page int) (*aggregate.Result, error)
	Surprise(ctx context.Context, typeSel string, genreID int) (*media.Item, error)
	Home(ctx context.Context) (*aggregate.HomeResult, error)
	Details(ctx context.Context, source media.Source, t media.Type, id int64) (*media.Item, error)
}

// ServerDeps contains all dependencies for the API server.
type ServerDeps struct {
	Searcher    Searcher
	Watchlist   *store.Watchlist
	Preferences *store.Preferences
	Recent      *store.RecentSearches
	Genres      *genres.Catalog
}

// Validate checks that all required dependencies are provided.
func (d ServerDeps) Validate() error {
	if d.Searcher == nil {
		return errors.New("searcher is required")
	}
	if d.Watchlist == nil {
		return errors.New("watchlist store is required")
	}
	if d.Preferences == nil {
		return errors.New("preferences store is required")
	}
	if d.Recent == nil {
		return errors.New("recent searches store is required")
	}
	if d.Genres == nil {
		return errors.New("genre catalog is required")
	}
	return nil
}
