// Package media defines the canonical item shape shared across providers
// and the normalizers that map provider payloads into it.
package media

import "strconv"

// Source identifies which provider an item came from. Provider ID spaces
// are disjoint, so (ID, Source) is the only global identity.
type Source string

const (
	SourceTMDB   Source = "tmdb"
	SourceTVMaze Source = "tvmaze"
)

// Type is the media type of an item.
type Type string

const (
	TypeMovie  Type = "movie"
	TypeSeries Type = "series"
)

// Item is the canonical record for a movie or series, immutable once built
// from a provider response.
type Item struct {
	ID          int64   `json:"id"`
	Source      Source  `json:"source"`
	Type        Type    `json:"type"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview,omitempty"`
	Poster      string  `json:"poster,omitempty"`
	PosterSmall string  `json:"posterSmall,omitempty"`
	Backdrop    string  `json:"backdrop,omitempty"`
	Date        string  `json:"date,omitempty"`
	Year        string  `json:"year,omitempty"`
	Rating      float64 `json:"rating"`
	VoteCount   int     `json:"voteCount,omitempty"`
	Popularity  float64 `json:"popularity,omitempty"`
	GenreIDs    []int   `json:"genreIds,omitempty"`

	// Display-only pass-through fields; not used by core logic.
	GenreNames []string `json:"genreNames,omitempty"`
	Language   string   `json:"language,omitempty"`
	Network    string   `json:"network,omitempty"`
	Status     string   `json:"status,omitempty"`
	Runtime    int      `json:"runtime,omitempty"`
}

// Key returns the stable identity string combining source and provider ID.
func (i Item) Key() string {
	return string(i.Source) + ":" + strconv.FormatInt(i.ID, 10)
}
