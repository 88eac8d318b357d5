// Package events provides change notifications for the persisted stores so
// dependent views can refresh after a mutation.
package events

// Type identifies what changed.
type Type string

const (
	TypeWatchlistAdded    Type = "watchlist.added"
	TypeWatchlistRemoved  Type = "watchlist.removed"
	TypeWatchlistCategory Type = "watchlist.category"
	TypePreferencesSaved  Type = "preferences.saved"
	TypeRecentUpdated     Type = "recent.updated"
)

// Event describes a single store mutation. ItemKey is the (source, id)
// identity string for watchlist events and empty otherwise.
type Event struct {
	Type     Type   `json:"type"`
	ItemKey  string `json:"itemKey,omitempty"`
	Category string `json:"category,omitempty"`
}
