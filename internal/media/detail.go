package media

import "screenfind/internal/tmdb"

// NormalizeTMDBMovie maps a movie detail payload to the canonical form.
// Detail responses carry resolved genre names rather than ids.
func NormalizeTMDBMovie(m *tmdb.Movie) (Item, error) {
	if m == nil || m.ID == 0 {
		return Item{}, ErrInvalidInput
	}

	item := Item{
		ID:         m.ID,
		Source:     SourceTMDB,
		Type:       TypeMovie,
		Title:      m.Title,
		Overview:   m.Overview,
		Date:       m.ReleaseDate,
		Year:       yearOf(m.ReleaseDate),
		Rating:     m.VoteAverage,
		VoteCount:  m.VoteCount,
		Popularity: m.Popularity,
		GenreNames: genreNames(m.Genres),
		Status:     m.Status,
		Runtime:    m.Runtime,
	}
	applyTMDBImages(&item, m.PosterPath, m.BackdropPath)
	return item, nil
}

// NormalizeTMDBShow maps a TV detail payload to the canonical form.
func NormalizeTMDBShow(s *tmdb.TVShow) (Item, error) {
	if s == nil || s.ID == 0 {
		return Item{}, ErrInvalidInput
	}

	item := Item{
		ID:         s.ID,
		Source:     SourceTMDB,
		Type:       TypeSeries,
		Title:      s.Name,
		Overview:   s.Overview,
		Date:       s.FirstAirDate,
		Year:       yearOf(s.FirstAirDate),
		Rating:     s.VoteAverage,
		VoteCount:  s.VoteCount,
		Popularity: s.Popularity,
		GenreNames: genreNames(s.Genres),
		Status:     s.Status,
	}
	if len(s.EpisodeRunTime) > 0 {
		item.Runtime = s.EpisodeRunTime[0]
	}
	applyTMDBImages(&item, s.PosterPath, s.BackdropPath)
	return item, nil
}

func genreNames(genres []tmdb.Genre) []string {
	if len(genres) == 0 {
		return nil
	}
	names := make([]string, len(genres))
	for i, g := range genres {
		names[i] = g.Name
	}
	return names
}

func applyTMDBImages(item *Item, posterPath, backdropPath string) {
	if posterPath != "" {
		item.Poster = tmdbImageBase + "w500" + posterPath
		item.PosterSmall = tmdbImageBase + "w342" + posterPath
	}
	if backdropPath != "" {
		item.Backdrop = tmdbImageBase + "original" + backdropPath
	}
}
