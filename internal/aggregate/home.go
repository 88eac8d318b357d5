package aggregate

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"screenfind/internal/media"
	"screenfind/internal/tmdb"
	"screenfind/internal/tvmaze"
)

// ErrNotFound is returned by Details when the owning provider has no item
// with the requested identity.
var ErrNotFound = errors.New("item not found")

// HomeResult holds the landing-page rows. A row whose listing failed is
// empty, never nil-distinguished: degradation is invisible to callers.
type HomeResult struct {
	Trending       []media.Item `json:"trending"`
	TopRatedMovies []media.Item `json:"topRatedMovies"`
	PopularTV      []media.Item `json:"popularTv"`
}

// Home fetches the three landing rows concurrently. Each listing may fail
// independently; failures are logged and the row stays empty.
func (a *Aggregator) Home(ctx context.Context) (*HomeResult, error) {
	res := &HomeResult{
		Trending:       []media.Item{},
		TopRatedMovies: []media.Item{},
		PopularTV:      []media.Item{},
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := a.rich.Trending(gctx, "all", "week")
		if err != nil {
			a.log.Warn("trending listing failed", "error", err)
			return nil
		}
		res.Trending = normalizeMixed(p)
		return nil
	})
	g.Go(func() error {
		p, err := a.rich.TopRatedMovies(gctx, 1)
		if err != nil {
			a.log.Warn("top rated listing failed", "error", err)
			return nil
		}
		res.TopRatedMovies = normalizePage(p, media.TypeMovie)
		return nil
	})
	g.Go(func() error {
		p, err := a.rich.PopularTV(gctx, 1)
		if err != nil {
			a.log.Warn("popular tv listing failed", "error", err)
			return nil
		}
		res.PopularTV = normalizePage(p, media.TypeSeries)
		return nil
	})
	_ = g.Wait()

	return res, nil
}

// Details fetches one item's full metadata from its owning provider. Unlike
// the joint queries, a failure here propagates: there is no second source to
// fall back on for a single identity.
func (a *Aggregator) Details(ctx context.Context, source media.Source, t media.Type, id int64) (*media.Item, error) {
	switch source {
	case media.SourceTVMaze:
		show, err := a.light.Show(ctx, id)
		if err != nil {
			return nil, detailErr(err)
		}
		item, err := media.NormalizeTVMaze(*show)
		if err != nil {
			return nil, err
		}
		return &item, nil

	case media.SourceTMDB:
		if t == media.TypeSeries {
			show, err := a.rich.TVDetails(ctx, id)
			if err != nil {
				return nil, detailErr(err)
			}
			item, err := media.NormalizeTMDBShow(show)
			if err != nil {
				return nil, err
			}
			return &item, nil
		}
		movie, err := a.rich.MovieDetails(ctx, id)
		if err != nil {
			return nil, detailErr(err)
		}
		item, err := media.NormalizeTMDBMovie(movie)
		if err != nil {
			return nil, err
		}
		return &item, nil

	default:
		return nil, fmt.Errorf("unknown source %q", source)
	}
}

// detailErr folds both providers' not-found sentinels into ErrNotFound so
// callers need not know which provider owned the identity.
func detailErr(err error) error {
	if errors.Is(err, tmdb.ErrNotFound) || errors.Is(err, tvmaze.ErrNotFound) {
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	return err
}

// normalizeMixed converts a page of mixed media-type results, dropping
// people and unrecognized kinds.
func normalizeMixed(p *tmdb.Page) []media.Item {
	items := make([]media.Item, 0, len(p.Results))
	for _, raw := range p.Results {
		var t media.Type
		switch raw.MediaType {
		case tmdb.MediaTypeMovie:
			t = media.TypeMovie
		case tmdb.MediaTypeTV:
			t = media.TypeSeries
		default:
			continue
		}
		item, err := media.NormalizeTMDB(raw, t)
		if err != nil {
			continue
		}
		items = append(items, item)
	}
	return items
}
