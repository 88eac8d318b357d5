// Package tmdb provides a client for The Movie Database API.
package tmdb

// Media type values returned by multi search.
const (
	MediaTypeMovie  = "movie"
	MediaTypeTV     = "tv"
	MediaTypePerson = "person"
)

// Result is a single entry in a search or discover response.
// Movies carry Title/ReleaseDate, TV shows carry Name/FirstAirDate.
type Result struct {
	ID               int64   `json:"id"`
	MediaType        string  `json:"media_type,omitempty"`
	Title            string  `json:"title,omitempty"`
	Name             string  `json:"name,omitempty"`
	Overview         string  `json:"overview"`
	PosterPath       string  `json:"poster_path"`
	BackdropPath     string  `json:"backdrop_path"`
	ReleaseDate      string  `json:"release_date,omitempty"`
	FirstAirDate     string  `json:"first_air_date,omitempty"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int     `json:"vote_count"`
	Popularity       float64 `json:"popularity"`
	GenreIDs         []int   `json:"genre_ids,omitempty"`
	OriginalLanguage string  `json:"original_language,omitempty"`
}

// Page is a paginated result set.
type Page struct {
	Page         int      `json:"page"`
	Results      []Result `json:"results"`
	TotalPages   int      `json:"total_pages"`
	TotalResults int      `json:"total_results"`
}

// Genre is a TMDB genre.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Movie is the detail response for a movie.
type Movie struct {
	ID           int64   `json:"id"`
	IMDBID       string  `json:"imdb_id,omitempty"`
	Title        string  `json:"title"`
	Overview     string  `json:"overview"`
	Tagline      string  `json:"tagline"`
	ReleaseDate  string  `json:"release_date"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	VoteAverage  float64 `json:"vote_average"`
	VoteCount    int     `json:"vote_count"`
	Popularity   float64 `json:"popularity"`
	Runtime      int     `json:"runtime"`
	Status       string  `json:"status"`
	Genres       []Genre `json:"genres"`
}

// TVShow is the detail response for a TV show.
type TVShow struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	Overview         string  `json:"overview"`
	Tagline          string  `json:"tagline"`
	FirstAirDate     string  `json:"first_air_date"`
	PosterPath       string  `json:"poster_path"`
	BackdropPath     string  `json:"backdrop_path"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int     `json:"vote_count"`
	Popularity       float64 `json:"popularity"`
	Status           string  `json:"status"`
	NumberOfSeasons  int     `json:"number_of_seasons"`
	NumberOfEpisodes int     `json:"number_of_episodes"`
	EpisodeRunTime   []int   `json:"episode_run_time"`
	Genres           []Genre `json:"genres"`
}

// DiscoverParams are the filters for a discover listing.
// Zero values are omitted from the request.
type DiscoverParams struct {
	SortBy    string // e.g. "popularity.desc", "vote_average.desc"
	GenreID   int
	MinRating float64
	YearFrom  int
	YearTo    int
	Page      int
}
