package media

import (
	"errors"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"screenfind/internal/tmdb"
	"screenfind/internal/tvmaze"
)

// ErrInvalidInput is returned when a provider payload is missing its ID.
// This is a caller contract violation, not a runtime condition to recover from.
var ErrInvalidInput = errors.New("invalid provider payload: missing id")

const tmdbImageBase = "https://image.tmdb.org/t/p/"

// tagRegex matches HTML tags in TVMaze summaries.
var tagRegex = regexp.MustCompile(`<[^>]+>`)

// NormalizeTMDB maps a TMDB search/discover result to the canonical form.
// t must be TypeMovie or TypeSeries; movies read Title/ReleaseDate, series
// read Name/FirstAirDate.
func NormalizeTMDB(raw tmdb.Result, t Type) (Item, error) {
	if raw.ID == 0 {
		return Item{}, ErrInvalidInput
	}

	title := raw.Title
	date := raw.ReleaseDate
	if t == TypeSeries {
		title = raw.Name
		date = raw.FirstAirDate
	}

	item := Item{
		ID:         raw.ID,
		Source:     SourceTMDB,
		Type:       t,
		Title:      title,
		Overview:   raw.Overview,
		Date:       date,
		Year:       yearOf(date),
		Rating:     raw.VoteAverage,
		VoteCount:  raw.VoteCount,
		Popularity: raw.Popularity,
		GenreIDs:   raw.GenreIDs,
		Language:   raw.OriginalLanguage,
	}

	applyTMDBImages(&item, raw.PosterPath, raw.BackdropPath)
	return item, nil
}

// NormalizeTVMaze maps a TVMaze show to the canonical form. Shows are always
// series; the HTML summary is stripped to plain text.
func NormalizeTVMaze(show tvmaze.Show) (Item, error) {
	if show.ID == 0 {
		return Item{}, ErrInvalidInput
	}

	item := Item{
		ID:         show.ID,
		Source:     SourceTVMaze,
		Type:       TypeSeries,
		Title:      show.Name,
		Overview:   StripTags(show.Summary),
		Date:       show.Premiered,
		Year:       yearOf(show.Premiered),
		Popularity: float64(show.Weight),
		GenreNames: show.Genres,
		Language:   show.Language,
		Status:     show.Status,
		Runtime:    show.Runtime,
	}

	if show.Rating.Average != nil {
		item.Rating = *show.Rating.Average
	}
	if show.Image != nil {
		item.Poster = show.Image.Original
		if item.Poster == "" {
			item.Poster = show.Image.Medium
		}
		item.PosterSmall = show.Image.Medium
	}
	if show.Network != nil {
		item.Network = show.Network.Name
	} else if show.WebChannel != nil {
		item.Network = show.WebChannel.Name
	}
	if item.Runtime == 0 {
		item.Runtime = show.AverageRuntime
	}

	return item, nil
}

// yearOf truncates a provider date ("2011-04-17") to its year, or returns
// the empty string when the date is absent or too short.
func yearOf(date string) string {
	if len(date) < 4 {
		return ""
	}
	return date[:4]
}

// StripTags removes HTML tags, leaving plain text.
func StripTags(s string) string {
	return tagRegex.ReplaceAllString(s, "")
}

// FoldTitle normalizes a title into a case- and accent-insensitive key for
// cross-provider duplicate detection.
func FoldTitle(title string) string {
	s := strings.ToLower(title)
	s = removeAccents(s)
	return strings.Join(strings.Fields(s), " ")
}

func removeAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}
