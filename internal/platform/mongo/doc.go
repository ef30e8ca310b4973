// Package mongo provides the MongoDB implementation of the store.Gateway
// interface. It owns the driver client, selects one database and one
// collection, and translates store.Query values into find commands.
package mongo
