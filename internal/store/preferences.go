package store

import (
	"sync"

	"screenfind/internal/aggregate"
	"screenfind/internal/events"
)

// Theme values.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Prefs is the single persisted user settings record, upserted wholesale.
type Prefs struct {
	Theme   string            `json:"theme"`
	Filters aggregate.Filters `json:"filters"`
}

func defaultPrefs() Prefs {
	return Prefs{Theme: ThemeDark}
}

// Preferences persists the user settings record.
type Preferences struct {
	mu      sync.Mutex
	records *Records
	bus     *events.Bus
}

// NewPreferences creates a preferences store. bus may be nil.
func NewPreferences(records *Records, bus *events.Bus) *Preferences {
	return &Preferences{records: records, bus: bus}
}

// Get returns the persisted preferences, or the defaults (dark theme, no
// filters) when nothing is persisted or the record is unparseable.
func (p *Preferences) Get() Prefs {
	p.mu.Lock()
	defer p.mu.Unlock()

	prefs := readRecord(p.records, keyPreferences, defaultPrefs())
	if prefs.Theme == "" {
		prefs.Theme = ThemeDark
	}
	return prefs
}

// Save replaces the whole preferences record.
func (p *Preferences) Save(prefs Prefs) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := writeRecord(p.records, keyPreferences, prefs); err != nil {
		return err
	}
	if p.bus != nil {
		p.bus.Publish(events.Event{Type: events.TypePreferencesSaved})
	}
	return nil
}
