package aggregate

import (
	"slices"
	"strconv"

	"screenfind/internal/media"
)

// Filters are the client-side constraints a user can apply to a result set.
// Zero values mean "not set".
type Filters struct {
	Type      string  `json:"type,omitempty"` // "all", "movie", or "series"
	GenreID   int     `json:"genre,omitempty"`
	MinRating float64 `json:"minRating,omitempty"`
	YearFrom  int     `json:"yearFrom,omitempty"`
	YearTo    int     `json:"yearTo,omitempty"`
	Sort      string  `json:"sort,omitempty"` // "popular", "rating", or "date"
}

// SortParam maps the user-facing sort option to the rich provider's sort_by.
func (f Filters) SortParam() string {
	switch f.Sort {
	case "rating":
		return "vote_average.desc"
	case "date":
		return "primary_release_date.desc"
	default:
		return "popularity.desc"
	}
}

// ApplyFilters rejects items failing any active constraint (AND semantics).
// Items with no genre data pass a genre filter, and items with no year pass
// year bounds: absence of data is non-exclusionary.
func ApplyFilters(items []media.Item, f Filters) []media.Item {
	out := make([]media.Item, 0, len(items))
	for _, item := range items {
		if f.Type != "" && f.Type != "all" && string(item.Type) != f.Type {
			continue
		}
		if f.GenreID > 0 && len(item.GenreIDs) > 0 && !slices.Contains(item.GenreIDs, f.GenreID) {
			continue
		}
		if f.MinRating > 0 && item.Rating < f.MinRating {
			continue
		}
		if item.Year != "" {
			year, err := strconv.Atoi(item.Year)
			if err == nil {
				if f.YearFrom > 0 && year < f.YearFrom {
					continue
				}
				if f.YearTo > 0 && year > f.YearTo {
					continue
				}
			}
		}
		out = append(out, item)
	}
	return out
}
