package store

import (
	"errors"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"screenfind/internal/events"
	"screenfind/internal/media"
)

// Category is the watch state of a saved entry.
type Category string

const (
	CategoryToWatch  Category = "To Watch"
	CategoryWatching Category = "Watching Now"
	CategoryWatched  Category = "Already Watched"
)

// ErrInvalidCategory is returned when a category outside the defined set is
// given. The set is enforced at the store boundary.
var ErrInvalidCategory = errors.New("invalid watchlist category")

func validCategory(c Category) bool {
	switch c {
	case CategoryToWatch, CategoryWatching, CategoryWatched:
		return true
	}
	return false
}

// Entry is a persisted snapshot of a media item's display fields plus the
// mutable category.
type Entry struct {
	ID          int64        `json:"id"`
	Source      media.Source `json:"source"`
	Type        media.Type   `json:"type"`
	Title       string       `json:"title"`
	Poster      string       `json:"poster,omitempty"`
	PosterSmall string       `json:"posterSmall,omitempty"`
	Year        string       `json:"year,omitempty"`
	Rating      float64      `json:"rating"`
	Category    Category     `json:"category,omitempty"`
	AddedAt     time.Time    `json:"addedAt"`
}

// Key returns the entry's (source, id) identity string.
func (e Entry) Key() string {
	return string(e.Source) + ":" + strconv.FormatInt(e.ID, 10)
}

// Watchlist is the persisted collection of saved items, keyed by
// (id, source). It is the sole owner of its entries; callers get copies.
type Watchlist struct {
	mu      sync.Mutex
	records *Records
	bus     *events.Bus
	log     *slog.Logger
}

// NewWatchlist creates a watchlist store. bus may be nil to disable change
// notifications.
func NewWatchlist(records *Records, bus *events.Bus, log *slog.Logger) *Watchlist {
	if log == nil {
		log = slog.Default()
	}
	return &Watchlist{
		records: records,
		bus:     bus,
		log:     log.With("component", "watchlist"),
	}
}

// Add saves a media item with the default "To Watch" category. Add is
// idempotent by (id, source): if the key already exists nothing changes,
// including the existing category.
func (w *Watchlist) Add(item media.Item) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	entries := w.load()
	for _, e := range entries {
		if e.ID == item.ID && e.Source == item.Source {
			return nil
		}
	}

	entry := Entry{
		ID:          item.ID,
		Source:      item.Source,
		Type:        item.Type,
		Title:       item.Title,
		Poster:      item.Poster,
		PosterSmall: item.PosterSmall,
		Year:        item.Year,
		Rating:      item.Rating,
		Category:    CategoryToWatch,
		AddedAt:     time.Now(),
	}
	if err := w.save(append(entries, entry)); err != nil {
		return err
	}

	w.log.Debug("added to watchlist", "key", entry.Key(), "title", entry.Title)
	w.publish(events.Event{Type: events.TypeWatchlistAdded, ItemKey: entry.Key()})
	return nil
}

// Remove deletes the matching entry if present; no-op otherwise.
func (w *Watchlist) Remove(id int64, source media.Source) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	entries := w.load()
	kept := entries[:0]
	removed := false
	for _, e := range entries {
		if e.ID == id && e.Source == source {
			removed = true
			continue
		}
		kept = append(kept, e)
	}
	if !removed {
		return nil
	}
	if err := w.save(kept); err != nil {
		return err
	}

	key := string(source) + ":" + strconv.FormatInt(id, 10)
	w.log.Debug("removed from watchlist", "key", key)
	w.publish(events.Event{Type: events.TypeWatchlistRemoved, ItemKey: key})
	return nil
}

// Contains reports whether an entry with the given key exists.
func (w *Watchlist) Contains(id int64, source media.Source) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, e := range w.load() {
		if e.ID == id && e.Source == source {
			return true
		}
	}
	return false
}

// SetCategory mutates the category of an existing entry; no-op if the entry
// is absent. Categories outside the defined set are rejected.
func (w *Watchlist) SetCategory(id int64, source media.Source, category Category) error {
	if !validCategory(category) {
		return ErrInvalidCategory
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	entries := w.load()
	for i, e := range entries {
		if e.ID == id && e.Source == source {
			entries[i].Category = category
			if err := w.save(entries); err != nil {
				return err
			}
			w.publish(events.Event{
				Type:     events.TypeWatchlistCategory,
				ItemKey:  e.Key(),
				Category: string(category),
			})
			return nil
		}
	}
	return nil
}

// List returns all entries. Entries persisted before the category field
// existed are backfilled to "To Watch" here, so no caller has to remember
// the default.
func (w *Watchlist) List() []Entry {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.load()
}

func (w *Watchlist) load() []Entry {
	entries := readRecord(w.records, keyWatchlist, []Entry{})
	for i := range entries {
		if entries[i].Category == "" {
			entries[i].Category = CategoryToWatch
		}
	}
	return entries
}

func (w *Watchlist) save(entries []Entry) error {
	return writeRecord(w.records, keyWatchlist, entries)
}

func (w *Watchlist) publish(e events.Event) {
	if w.bus != nil {
		w.bus.Publish(e)
	}
}
