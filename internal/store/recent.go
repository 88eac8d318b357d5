package store

import (
	"sort"
	"sync"

	"github.com/hbollon/go-edlib"

	"screenfind/internal/events"
)

// maxRecentSearches bounds the persisted history.
const maxRecentSearches = 10

// suggestThreshold is the minimum Jaro-Winkler similarity for a recent
// search to be offered as a typeahead suggestion.
const suggestThreshold = 0.70

// RecentSearches persists a bounded, most-recent-first list of distinct
// query strings.
type RecentSearches struct {
	mu      sync.Mutex
	records *Records
	bus     *events.Bus
}

// NewRecentSearches creates a recent-search store. bus may be nil.
func NewRecentSearches(records *Records, bus *events.Bus) *RecentSearches {
	return &RecentSearches{records: records, bus: bus}
}

// Add records a search term: an existing term moves to the front rather than
// duplicating, and the list is truncated to the bound.
func (r *RecentSearches) Add(term string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	searches := r.load()
	kept := make([]string, 0, len(searches)+1)
	kept = append(kept, term)
	for _, s := range searches {
		if s != term {
			kept = append(kept, s)
		}
	}
	if len(kept) > maxRecentSearches {
		kept = kept[:maxRecentSearches]
	}

	if err := writeRecord(r.records, keyRecentSearches, kept); err != nil {
		return err
	}
	if r.bus != nil {
		r.bus.Publish(events.Event{Type: events.TypeRecentUpdated})
	}
	return nil
}

// List returns the current history, most-recent-first.
func (r *RecentSearches) List() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

// Suggest ranks recent searches by Jaro-Winkler similarity to partial and
// returns those above the threshold, best match first. Jaro-Winkler favors
// shared prefixes, which suits half-typed queries.
func (r *RecentSearches) Suggest(partial string) []string {
	if partial == "" {
		return nil
	}

	type scored struct {
		term  string
		score float64
	}
	var matches []scored
	for _, term := range r.List() {
		score := float64(edlib.JaroWinklerSimilarity(partial, term))
		if score >= suggestThreshold {
			matches = append(matches, scored{term: term, score: score})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	terms := make([]string, len(matches))
	for i, m := range matches {
		terms[i] = m.term
	}
	return terms
}

func (r *RecentSearches) load() []string {
	return readRecord(r.records, keyRecentSearches, []string{})
}
