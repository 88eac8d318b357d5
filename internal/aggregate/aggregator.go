package aggregate

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"screenfind/internal/media"
	"screenfind/internal/tmdb"
	"screenfind/internal/tvmaze"
)

// ErrNoResults is returned by Surprise when no provider produced any item.
var ErrNoResults = errors.New("no results")

// Result is a merged, ordered page of canonical items.
type Result struct {
	Items      []media.Item `json:"items"`
	TotalPages int          `json:"totalPages"`
}

// Aggregator issues joint provider queries and reconciles the results.
// Provider failures inside joint operations are absorbed: the surviving
// source's results are returned and the failure is only logged.
type Aggregator struct {
	rich  RichProvider
	light LightProvider
	log   *slog.Logger

	// Injectable randomness for Surprise.
	randPage  func() int
	randIndex func(n int) int
}

// New creates an Aggregator over the two providers.
func New(rich RichProvider, light LightProvider, log *slog.Logger) *Aggregator {
	if log == nil {
		log = slog.Default()
	}
	return &Aggregator{
		rich:      rich,
		light:     light,
		log:       log.With("component", "aggregate"),
		randPage:  func() int { return rand.IntN(5) + 1 },
		randIndex: rand.IntN,
	}
}

// Search runs a free-text query against both providers concurrently and
// merges the results. The light provider is only consulted on page 1: it has
// no native pagination and would re-return the same data on later pages.
// An empty query returns an empty result without any provider call.
func (a *Aggregator) Search(ctx context.Context, query string, page int) (*Result, error) {
	if strings.TrimSpace(query) == "" {
		return &Result{Items: []media.Item{}, TotalPages: 1}, nil
	}
	if page < 1 {
		page = 1
	}
	start := time.Now()

	var (
		richPage *tmdb.Page
		richErr  error
		shows    []tvmaze.SearchResult
		lightErr error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		richPage, richErr = a.rich.SearchMulti(gctx, query, page)
		return nil
	})
	if page == 1 {
		g.Go(func() error {
			shows, lightErr = a.light.SearchShows(gctx, query)
			return nil
		})
	}
	_ = g.Wait()

	res := &Result{Items: []media.Item{}, TotalPages: 1}

	// Titles of rich-provider series already merged, keyed by folded title.
	// Provider id spaces are disjoint, so title collision within the same
	// media type is the only cross-provider duplicate signal available.
	seenSeries := map[string]bool{}

	if richErr != nil {
		a.log.Warn("rich provider failed", "query", query, "page", page, "error", richErr)
	} else {
		for _, raw := range richPage.Results {
			var t media.Type
			switch raw.MediaType {
			case tmdb.MediaTypeMovie:
				t = media.TypeMovie
			case tmdb.MediaTypeTV:
				t = media.TypeSeries
			default:
				continue // people and other result kinds are dropped
			}
			item, err := media.NormalizeTMDB(raw, t)
			if err != nil {
				a.log.Debug("skipping malformed rich result", "error", err)
				continue
			}
			if t == media.TypeSeries {
				seenSeries[media.FoldTitle(item.Title)] = true
			}
			res.Items = append(res.Items, item)
		}
		if richPage.TotalPages > 0 {
			res.TotalPages = richPage.TotalPages
		}
	}

	if page == 1 {
		if lightErr != nil {
			a.log.Warn("light provider failed", "query", query, "error", lightErr)
		} else {
			for _, sr := range shows {
				item, err := media.NormalizeTVMaze(sr.Show)
				if err != nil {
					a.log.Debug("skipping malformed light result", "error", err)
					continue
				}
				if seenSeries[media.FoldTitle(item.Title)] {
					continue
				}
				res.Items = append(res.Items, item)
			}
		}
	}

	a.log.Info("search complete", "query", query, "page", page,
		"results", len(res.Items), "total_pages", res.TotalPages,
		"duration_ms", time.Since(start).Milliseconds())
	return res, nil
}

// Discover runs a filter-driven listing with no text query. When both media
// types are requested the two listings run concurrently, failures are
// absorbed per branch, and the merged set is sorted by popularity descending
// (a best-effort ordering; popularity scales differ by provider endpoint).
// TotalPages is the maximum of the two reported totals so "load more" stays
// available as long as either listing has more.
func (a *Aggregator) Discover(ctx context.Context, f Filters, page int) (*Result, error) {
	if page < 1 {
		page = 1
	}
	dp := tmdb.DiscoverParams{
		SortBy:    f.SortParam(),
		GenreID:   f.GenreID,
		MinRating: f.MinRating,
		YearFrom:  f.YearFrom,
		YearTo:    f.YearTo,
		Page:      page,
	}

	switch f.Type {
	case string(media.TypeMovie):
		p, err := a.rich.DiscoverMovies(ctx, dp)
		if err != nil {
			return nil, err
		}
		return pageResult(p, media.TypeMovie), nil

	case string(media.TypeSeries):
		p, err := a.rich.DiscoverTV(ctx, dp)
		if err != nil {
			return nil, err
		}
		return pageResult(p, media.TypeSeries), nil
	}

	var (
		movies, tv      *tmdb.Page
		movieErr, tvErr error
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		movies, movieErr = a.rich.DiscoverMovies(gctx, dp)
		return nil
	})
	g.Go(func() error {
		tv, tvErr = a.rich.DiscoverTV(gctx, dp)
		return nil
	})
	_ = g.Wait()

	res := &Result{Items: []media.Item{}, TotalPages: 1}
	if movieErr != nil {
		a.log.Warn("discover movies failed", "error", movieErr)
	} else {
		res.Items = append(res.Items, normalizePage(movies, media.TypeMovie)...)
		res.TotalPages = max(res.TotalPages, movies.TotalPages)
	}
	if tvErr != nil {
		a.log.Warn("discover tv failed", "error", tvErr)
	} else {
		res.Items = append(res.Items, normalizePage(tv, media.TypeSeries)...)
		res.TotalPages = max(res.TotalPages, tv.TotalPages)
	}

	sort.SliceStable(res.Items, func(i, j int) bool {
		return res.Items[i].Popularity > res.Items[j].Popularity
	})
	return res, nil
}

// Surprise picks one random item from a randomly chosen discovery page
// (1..5) of the requested media type(s). Either sub-query may fail; the pick
// is made from whatever succeeded. ErrNoResults is returned only when the
// combined pool is empty.
func (a *Aggregator) Surprise(ctx context.Context, typeSel string, genreID int) (*media.Item, error) {
	dp := tmdb.DiscoverParams{GenreID: genreID, Page: a.randPage()}

	var pool []media.Item
	if typeSel == string(media.TypeSeries) || typeSel == "all" || typeSel == "" {
		if p, err := a.rich.DiscoverTV(ctx, dp); err != nil {
			a.log.Warn("surprise tv listing failed", "error", err)
		} else {
			pool = append(pool, normalizePage(p, media.TypeSeries)...)
		}
	}
	if typeSel == string(media.TypeMovie) || typeSel == "all" || typeSel == "" {
		if p, err := a.rich.DiscoverMovies(ctx, dp); err != nil {
			a.log.Warn("surprise movie listing failed", "error", err)
		} else {
			pool = append(pool, normalizePage(p, media.TypeMovie)...)
		}
	}

	if len(pool) == 0 {
		return nil, ErrNoResults
	}
	pick := pool[a.randIndex(len(pool))]
	return &pick, nil
}

func pageResult(p *tmdb.Page, t media.Type) *Result {
	totalPages := p.TotalPages
	if totalPages < 1 {
		totalPages = 1
	}
	return &Result{Items: normalizePage(p, t), TotalPages: totalPages}
}

func normalizePage(p *tmdb.Page, t media.Type) []media.Item {
	items := make([]media.Item, 0, len(p.Results))
	for _, raw := range p.Results {
		item, err := media.NormalizeTMDB(raw, t)
		if err != nil {
			continue
		}
		items = append(items, item)
	}
	return items
}
