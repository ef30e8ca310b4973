package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/phrazzld/companies-api/internal/store"
)

// Collection is an in-memory store.Gateway.
type Collection struct {
	mu   sync.RWMutex
	name string
	docs []store.Document
}

// Compile-time check that Collection implements store.Gateway.
var _ store.Gateway = (*Collection)(nil)

// NewCollection returns a collection holding docs.
func NewCollection(name string, docs ...store.Document) *Collection {
	c := &Collection{name: name}
	c.Insert(docs...)
	return c
}

// Insert appends documents. It exists for seeding; the HTTP surface never
// writes.
func (c *Collection) Insert(docs ...store.Document) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, d := range docs {
		c.docs = append(c.docs, slices.Clone(d))
	}
}

// Len returns the number of stored documents.
func (c *Collection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.docs)
}

// Find evaluates q against the stored documents.
func (c *Collection) Find(ctx context.Context, q store.Query) ([]store.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, store.NewStoreError(c.name, "find", "context done", store.MapContextError(err))
	}

	c.mu.RLock()
	matched := make([]store.Document, 0)
	for _, d := range c.docs {
		if matches(d, q.Filter) {
			matched = append(matched, d)
		}
	}
	c.mu.RUnlock()

	sortDocuments(matched, q.Sort)
	if q.Limit > 0 && int64(len(matched)) > q.Limit {
		matched = matched[:q.Limit]
	}

	out := make([]store.Document, len(matched))
	for i, d := range matched {
		out[i] = project(d, q.Projection)
	}
	return out, nil
}

// Ping always succeeds.
func (c *Collection) Ping(context.Context) error { return nil }

// Close is a no-op.
func (c *Collection) Close(context.Context) error { return nil }
