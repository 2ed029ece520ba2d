// Package metadata stores small named values in the client's local database.
package metadata

import (
	"context"
	"time"
)

// Entry is one stored value and the moment it was last written.
type Entry struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

// Repository is a string-keyed store of entries.
//
// Lookup returns common.ErrNotFound when the key is absent.
type Repository interface {
	Lookup(ctx context.Context, key string) (Entry, error)
	Put(ctx context.Context, key, value string) error
	// Remove reports whether a row was deleted.
	Remove(ctx context.Context, key string) (bool, error)
}
