// Package company holds the fixed, read-only queries served over the
// companies collection. Each Route pairs a URL path with a store.Query; the
// table is the single place where endpoints are declared.
package company
