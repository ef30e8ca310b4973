package store

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Document is a single stored record. It is ordered so that the field order
// of the stored document survives to the response.
type Document = bson.D

// Op is a comparison operator applied by a Condition.
type Op string

// Supported comparison operators.
const (
	OpEq  Op = "$eq"
	OpGt  Op = "$gt"
	OpGte Op = "$gte"
	OpLt  Op = "$lt"
	OpLte Op = "$lte"
)

// Condition compares the value at Field (a dotted path such as
// "ipo.valuation_amount") with Value.
type Condition struct {
	Field string
	Op    Op
	Value any
}

// Eq, Gt, Gte, Lt and Lte build conditions.
func Eq(field string, v any) Condition  { return Condition{Field: field, Op: OpEq, Value: v} }
func Gt(field string, v any) Condition  { return Condition{Field: field, Op: OpGt, Value: v} }
func Gte(field string, v any) Condition { return Condition{Field: field, Op: OpGte, Value: v} }
func Lt(field string, v any) Condition  { return Condition{Field: field, Op: OpLt, Value: v} }
func Lte(field string, v any) Condition { return Condition{Field: field, Op: OpLte, Value: v} }

// SortKey orders results by Field.
type SortKey struct {
	Field      string
	Descending bool
}

// Asc sorts by field in ascending order.
func Asc(field string) SortKey { return SortKey{Field: field} }

// Query is a fixed find request against one collection.
// All conditions in Filter must hold. A nil Projection returns every field,
// otherwise only the listed top-level fields plus _id. A zero Limit means no
// limit.
type Query struct {
	Filter     []Condition
	Projection []string
	Sort       []SortKey
	Limit      int64
}

// FilterDocument renders the filter in MongoDB query syntax. Conditions on
// the same field are merged into one operator document, so
// Gte("founded_year", 2000) and Lte("founded_year", 2005) become
// {founded_year: {$gte: 2000, $lte: 2005}}. A field whose only condition is
// an equality is rendered as {field: value}.
func (q Query) FilterDocument() bson.D {
	order := make([]string, 0, len(q.Filter))
	byField := make(map[string][]Condition, len(q.Filter))
	for _, c := range q.Filter {
		if _, seen := byField[c.Field]; !seen {
			order = append(order, c.Field)
		}
		byField[c.Field] = append(byField[c.Field], c)
	}

	filter := make(bson.D, 0, len(order))
	for _, field := range order {
		conds := byField[field]
		if len(conds) == 1 && conds[0].Op == OpEq {
			filter = append(filter, bson.E{Key: field, Value: conds[0].Value})
			continue
		}
		ops := make(bson.D, 0, len(conds))
		for _, c := range conds {
			ops = append(ops, bson.E{Key: string(c.Op), Value: c.Value})
		}
		filter = append(filter, bson.E{Key: field, Value: ops})
	}
	return filter
}

// ProjectionDocument renders the projection as {field: 1, ...}, or nil when
// every field is returned.
func (q Query) ProjectionDocument() bson.D {
	if q.Projection == nil {
		return nil
	}
	proj := make(bson.D, 0, len(q.Projection))
	for _, f := range q.Projection {
		proj = append(proj, bson.E{Key: f, Value: 1})
	}
	return proj
}

// SortDocument renders the sort as {field: 1|-1, ...}, or nil when unsorted.
func (q Query) SortDocument() bson.D {
	if len(q.Sort) == 0 {
		return nil
	}
	sort := make(bson.D, 0, len(q.Sort))
	for _, k := range q.Sort {
		dir := 1
		if k.Descending {
			dir = -1
		}
		sort = append(sort, bson.E{Key: k.Field, Value: dir})
	}
	return sort
}
