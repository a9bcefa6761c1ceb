// Package kv provides the durable key/value snapshot storage behind the
// storefront state stores. Each store persists its entire visible state as a
// single JSON-encoded value under a well-known key ("products", "orders",
// "cart:<userID>") and reloads it at start-up.
package kv

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no value exists for the key.
var ErrNotFound = errors.New("key not found")

// Store is a durable key/value store for JSON-encoded state snapshots.
type Store interface {
	// Get retrieves the value for a key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores the value for a key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the store.
	Close() error
}
