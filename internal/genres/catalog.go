// Package genres provides the static genre id to name catalog.
package genres

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"
)

//go:embed genres.json
var genresJSON []byte

// Genre is a single catalog entry.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Lists holds the two provider-scoped genre lists. Ids may repeat across
// lists with identical names.
type Lists struct {
	Movie []Genre `json:"movie"`
	TV    []Genre `json:"tv"`
}

// Catalog is a load-once lookup table from genre id to name. Lookups load
// the table on first use; a failed parse leaves it empty and every lookup
// returns "Unknown".
type Catalog struct {
	once  sync.Once
	err   error
	lists Lists
	byID  map[int]string
}

// NewCatalog creates an unloaded catalog.
func NewCatalog() *Catalog {
	return &Catalog{byID: map[int]string{}}
}

// Load parses the embedded genre table and builds the lookup map. It is
// idempotent; concurrent callers share the one load.
func (c *Catalog) Load() error {
	c.once.Do(func() {
		var lists Lists
		if err := json.Unmarshal(genresJSON, &lists); err != nil {
			c.err = fmt.Errorf("parse genre table: %w", err)
			return
		}
		byID := make(map[int]string, len(lists.Movie)+len(lists.TV))
		for _, g := range append(append([]Genre{}, lists.Movie...), lists.TV...) {
			if _, ok := byID[g.ID]; !ok {
				byID[g.ID] = g.Name
			}
		}
		c.lists = lists
		c.byID = byID
	})
	return c.err
}

// Name returns the genre name for id, or "Unknown". The sync.Once in Load
// orders the map build before any read, so concurrent first lookups are safe.
func (c *Catalog) Name(id int) string {
	_ = c.Load()
	if name, ok := c.byID[id]; ok {
		return name
	}
	return "Unknown"
}

// Names maps a set of genre ids to names.
func (c *Catalog) Names(ids []int) []string {
	_ = c.Load()
	names := make([]string, len(ids))
	for i, id := range ids {
		if name, ok := c.byID[id]; ok {
			names[i] = name
		} else {
			names[i] = "Unknown"
		}
	}
	return names
}

// All returns both provider-scoped lists.
func (c *Catalog) All() Lists {
	_ = c.Load()
	return c.lists
}
