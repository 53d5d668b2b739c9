package nyaa

import (
	"context"
	"time"
)

// StoredEntry is an entry recorded in the history.
type StoredEntry struct {
	ID          string    `json:"id"`
	Key         string    `json:"key"`
	Entry       *Entry    `json:"entry"`
	FirstSeenAt time.Time `json:"firstSeenAt"`
}

// EntryService records which entries have been seen.
type EntryService interface {
	// CreateEntries stores entries whose key has not been stored before and
	// returns them in their original order. Already known entries are skipped.
	CreateEntries(ctx context.Context, entries []*Entry) ([]*Entry, error)

	// FindEntries retrieves stored entries matching the filter, newest first.
	FindEntries(ctx context.Context, filter EntryFilter) ([]*StoredEntry, error)
}

// EntryFilter represents a filter for FindEntries.
type EntryFilter struct {
	// Name matches entries whose name contains the value.
	Name *string `json:"name"`
	// Kind matches the raw status label (e.g. "success").
	Kind *string `json:"kind"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
