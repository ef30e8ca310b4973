// Package memory provides an in-process store.Gateway holding documents in
// memory. It evaluates store.Query values following MongoDB for the subset
// the routes use: type-bracketed comparison with int, double and Decimal128
// as one numeric bracket, dotted paths through embedded documents and arrays
// of them, array fan-out, and _id kept by projections. Collation, BSON type
// ordering within the "other" bracket and array sort keys (Mongo sorts by the
// min or max element) are not modelled. It is used for local runs from a JSON
// seed file and for tests.
package memory
