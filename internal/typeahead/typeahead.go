// Package typeahead drives live search-as-you-type queries. Keystrokes are
// debounced by a quiet period, and a newly issued query supersedes any
// still-pending earlier one: stale results are discarded, never delivered.
package typeahead

import (
	"context"
	"strings"
	"sync"
	"time"

	"screenfind/internal/media"
)

const (
	// DefaultDelay is the quiet period before a settled input is queried.
	DefaultDelay = 250 * time.Millisecond

	// minQueryLength below which the dropdown is cleared without searching.
	minQueryLength = 2
)

// SearchFunc runs the underlying aggregate query.
type SearchFunc func(ctx context.Context, query string) ([]media.Item, error)

// Result is one delivered typeahead outcome. Empty Items means "clear the
// dropdown".
type Result struct {
	Query string
	Items []media.Item
	Err   error
}

// Typeahead debounces an input stream and runs at most one authoritative
// query for it. Results arrive on Results; only the latest generation is
// ever delivered.
type Typeahead struct {
	search SearchFunc
	delay  time.Duration

	mu     sync.Mutex
	gen    uint64
	timer  *time.Timer
	closed bool

	results chan Result
}

// Option configures a Typeahead.
type Option func(*Typeahead)

// WithDelay overrides the debounce quiet period (for testing).
func WithDelay(d time.Duration) Option {
	return func(t *Typeahead) {
		t.delay = d
	}
}

// New creates a Typeahead over the given search function.
func New(search SearchFunc, opts ...Option) *Typeahead {
	t := &Typeahead{
		search:  search,
		delay:   DefaultDelay,
		results: make(chan Result, 1),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Results returns the delivery channel. The buffer holds only the latest
// result; an unread stale result is replaced rather than queued.
func (t *Typeahead) Results() <-chan Result {
	return t.results
}

// Input feeds the next keystroke state. It resets the quiet-period timer and
// bumps the generation so any in-flight query for earlier input is
// discarded on completion. Queries shorter than two runes clear the
// dropdown immediately without searching.
func (t *Typeahead) Input(ctx context.Context, query string) {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return
	}
	t.gen++
	gen := t.gen
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}

	query = strings.TrimSpace(query)
	if len([]rune(query)) < minQueryLength {
		t.mu.Unlock()
		t.deliver(gen, Result{Query: query})
		return
	}

	t.timer = time.AfterFunc(t.delay, func() {
		t.run(ctx, gen, query)
	})
	t.mu.Unlock()
}

// Stop cancels any pending query timer.
func (t *Typeahead) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}

// Close stops the typeahead and closes the results channel so range-based
// consumers terminate. Input is ignored after Close; calling it twice is
// safe. An in-flight query may still complete but its result is dropped.
func (t *Typeahead) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return
	}
	t.closed = true
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	close(t.results)
}

func (t *Typeahead) run(ctx context.Context, gen uint64, query string) {
	items, err := t.search(ctx, query)
	t.deliver(gen, Result{Query: query, Items: items, Err: err})
}

// deliver publishes a result unless a newer generation exists. The channel
// keeps only the latest result: an unread older one is dropped first.
func (t *Typeahead) deliver(gen uint64, r Result) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed || gen != t.gen {
		return
	}
	select {
	case <-t.results:
	default:
	}
	t.results <- r
}
