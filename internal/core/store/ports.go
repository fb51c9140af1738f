package store

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned when a document does not exist.
var ErrKeyNotFound = errors.New("key not found")

// Store defines the document store operations following hexagonal architecture.
// This is a port that can be implemented by different backends (Redis, a hosted
// row store, etc.). The core never touches a concrete client directly.
//
// Note the ledger-side surface is append and range only: there is deliberately
// no operation to rewrite or remove a single list entry, which keeps the
// tracking history append-only at the storage API level.
type Store interface {
	// Get retrieves a document by key.
	// Returns ErrKeyNotFound (wrapped) when the key does not exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores a document under the given key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes a document by key.
	Delete(ctx context.Context, key string) error

	// Append adds an entry to the end of the list stored at key, creating the
	// list if it does not exist. Existing entries are never touched.
	Append(ctx context.Context, key string, value []byte) error

	// Range returns every entry of the list stored at key, in insertion
	// order. A missing list yields an empty slice, not an error.
	Range(ctx context.Context, key string) ([][]byte, error)

	// Ping checks if the store is reachable.
	Ping(ctx context.Context) error

	// Close closes the store connection.
	Close() error
}
