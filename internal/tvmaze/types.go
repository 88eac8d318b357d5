// Package tvmaze provides a client for the TVMaze API.
package tvmaze

// SearchResult is a single entry from /search/shows.
type SearchResult struct {
	Score float64 `json:"score"`
	Show  Show    `json:"show"`
}

// Show is a TVMaze show. Summary is HTML.
type Show struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	Type           string   `json:"type"`
	Language       string   `json:"language"`
	Genres         []string `json:"genres"`
	Status         string   `json:"status"`
	Runtime        int      `json:"runtime"`
	AverageRuntime int      `json:"averageRuntime"`
	Premiered      string   `json:"premiered"` // "2011-04-17"
	Summary        string   `json:"summary"`
	Weight         int      `json:"weight"`
	Rating         Rating   `json:"rating"`
	Image          *Image   `json:"image"`
	Network        *Channel `json:"network"`
	WebChannel     *Channel `json:"webChannel"`
}

// Rating holds the show's average rating; Average is null when unrated.
type Rating struct {
	Average *float64 `json:"average"`
}

// Image holds poster URLs in two sizes.
type Image struct {
	Medium   string `json:"medium"`
	Original string `json:"original"`
}

// Channel is a broadcast network or streaming channel.
type Channel struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
