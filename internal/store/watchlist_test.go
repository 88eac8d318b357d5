package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"screenfind/internal/events"
	"screenfind/internal/media"
)

func testItem() media.Item {
	return media.Item{
		ID:     603,
		Source: media.SourceTMDB,
		Type:   media.TypeMovie,
		Title:  "The Matrix",
		Year:   "1999",
		Rating: 8.2,
		Poster: "https://image.tmdb.org/t/p/w500/poster.jpg",
	}
}

func TestWatchlist_AddAndList(t *testing.T) {
	w := NewWatchlist(setupRecords(t), nil, discardLogger())

	require.NoError(t, w.Add(testItem()))

	entries := w.List()
	require.Len(t, entries, 1)
	assert.Equal(t, "The Matrix", entries[0].Title)
	assert.Equal(t, CategoryToWatch, entries[0].Category, "default category assigned")
	assert.False(t, entries[0].AddedAt.IsZero())
}

func TestWatchlist_AddIdempotent(t *testing.T) {
	w := NewWatchlist(setupRecords(t), nil, discardLogger())

	require.NoError(t, w.Add(testItem()))
	require.NoError(t, w.SetCategory(603, media.SourceTMDB, CategoryWatching))
	require.NoError(t, w.Add(testItem()), "second add is a no-op")

	entries := w.List()
	require.Len(t, entries, 1)
	assert.Equal(t, CategoryWatching, entries[0].Category, "existing category not overwritten")
}

func TestWatchlist_SameIDDifferentSource(t *testing.T) {
	w := NewWatchlist(setupRecords(t), nil, discardLogger())

	require.NoError(t, w.Add(testItem()))
	other := testItem()
	other.Source = media.SourceTVMaze
	require.NoError(t, w.Add(other))

	assert.Len(t, w.List(), 2, "(id, source) is the identity, not id alone")
}

func TestWatchlist_Remove(t *testing.T) {
	w := NewWatchlist(setupRecords(t), nil, discardLogger())

	require.NoError(t, w.Add(testItem()))
	require.True(t, w.Contains(603, media.SourceTMDB))

	require.NoError(t, w.Remove(603, media.SourceTMDB))
	assert.False(t, w.Contains(603, media.SourceTMDB))
	assert.Empty(t, w.List())

	require.NoError(t, w.Remove(603, media.SourceTMDB), "removing absent entry is a no-op")
}

func TestWatchlist_SetCategoryRoundTrip(t *testing.T) {
	w := NewWatchlist(setupRecords(t), nil, discardLogger())

	require.NoError(t, w.Add(testItem()))
	other := testItem()
	other.ID = 604
	require.NoError(t, w.Add(other))

	require.NoError(t, w.SetCategory(603, media.SourceTMDB, CategoryWatching))

	for _, e := range w.List() {
		if e.ID == 603 {
			assert.Equal(t, CategoryWatching, e.Category)
		} else {
			assert.Equal(t, CategoryToWatch, e.Category, "other entries unchanged")
		}
	}
}

func TestWatchlist_SetCategoryAbsentEntry(t *testing.T) {
	w := NewWatchlist(setupRecords(t), nil, discardLogger())
	require.NoError(t, w.SetCategory(999, media.SourceTMDB, CategoryWatched), "no-op for absent entries")
	assert.Empty(t, w.List())
}

// Categories form a closed set; unknown values are rejected at the boundary
// rather than stored.
func TestWatchlist_SetCategoryRejectsUnknown(t *testing.T) {
	w := NewWatchlist(setupRecords(t), nil, discardLogger())

	require.NoError(t, w.Add(testItem()))
	err := w.SetCategory(603, media.SourceTMDB, "Binging")
	assert.ErrorIs(t, err, ErrInvalidCategory)

	entries := w.List()
	require.Len(t, entries, 1)
	assert.Equal(t, CategoryToWatch, entries[0].Category)
}

func TestWatchlist_CategoryBackfill(t *testing.T) {
	records := setupRecords(t)

	// Entry persisted before the category field existed.
	require.NoError(t, records.Set(keyWatchlist,
		[]byte(`[{"id":1,"source":"tmdb","type":"movie","title":"Legacy"}]`)))

	w := NewWatchlist(records, nil, discardLogger())
	entries := w.List()
	require.Len(t, entries, 1)
	assert.Equal(t, CategoryToWatch, entries[0].Category)
}

func TestWatchlist_CorruptRecordTreatedAsEmpty(t *testing.T) {
	records := setupRecords(t)
	require.NoError(t, records.Set(keyWatchlist, []byte("{not json")))

	w := NewWatchlist(records, nil, discardLogger())
	assert.Empty(t, w.List())

	require.NoError(t, w.Add(testItem()), "store recovers by replacing the record")
	assert.Len(t, w.List(), 1)
}

func TestWatchlist_PublishesEvents(t *testing.T) {
	bus := events.NewBus(discardLogger())
	defer bus.Close()
	ch := bus.SubscribeAll(8)

	w := NewWatchlist(setupRecords(t), bus, discardLogger())
	require.NoError(t, w.Add(testItem()))
	require.NoError(t, w.SetCategory(603, media.SourceTMDB, CategoryWatched))
	require.NoError(t, w.Remove(603, media.SourceTMDB))

	assert.Equal(t, events.TypeWatchlistAdded, (<-ch).Type)

	e := <-ch
	assert.Equal(t, events.TypeWatchlistCategory, e.Type)
	assert.Equal(t, string(CategoryWatched), e.Category)

	assert.Equal(t, events.TypeWatchlistRemoved, (<-ch).Type)
}
