// Package store defines the read contract between the HTTP layer and the
// document database. A Query is plain data (filter, projection, sort, limit);
// gateways in internal/platform translate it to their own query language and
// return matched documents in order.
package store
