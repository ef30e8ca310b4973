package store

import (
	"context"
)

// CollectionReader executes queries against a single collection.
// Implementations must be safe for concurrent use.
type CollectionReader interface {
	// Find returns every document matching q, in order, fully materialized.
	// An empty result is an empty slice with a nil error.
	Find(ctx context.Context, q Query) ([]Document, error)
}

// Gateway is a connected collection handle.
type Gateway interface {
	CollectionReader

	// Ping verifies the underlying connection.
	Ping(ctx context.Context) error

	// Close releases the connection.
	Close(ctx context.Context) error
}
