package memory

import (
	"slices"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/phrazzld/companies-api/internal/store"
)

// lookup resolves a dotted path to its first value. ok is false when the
// path reaches nothing.
func lookup(doc any, path string) (any, bool) {
	values, _ := resolve(doc, strings.Split(path, "."))
	if len(values) == 0 {
		return nil, false
	}
	return values[0], true
}

// resolve returns every value path reaches from v. An array met before the
// last segment is indexed by a numeric segment, or else each embedded
// document in it is followed. missing is true when some branch lacks the path.
func resolve(v any, path []string) (values []any, missing bool) {
	if len(path) == 0 {
		return []any{v}, false
	}
	if arr, ok := elements(v); ok {
		if i, err := strconv.Atoi(path[0]); err == nil {
			if i < 0 || i >= len(arr) {
				return nil, true
			}
			return resolve(arr[i], path[1:])
		}
		for _, el := range arr {
			if !isDocument(el) {
				continue
			}
			vs, m := resolve(el, path)
			values = append(values, vs...)
			missing = missing || m
		}
		return values, missing || len(values) == 0
	}
	next, ok := field(v, path[0])
	if !ok {
		return nil, true
	}
	return resolve(next, path[1:])
}

func isDocument(v any) bool {
	switch v.(type) {
	case bson.D, bson.M, map[string]any:
		return true
	default:
		return false
	}
}

func field(doc any, key string) (any, bool) {
	switch d := doc.(type) {
	case bson.D:
		for _, e := range d {
			if e.Key == key {
				return e.Value, true
			}
		}
	case bson.M:
		v, ok := d[key]
		return v, ok
	case map[string]any:
		v, ok := d[key]
		return v, ok
	}
	return nil, false
}

func elements(v any) ([]any, bool) {
	switch a := v.(type) {
	case bson.A:
		return a, true
	case []any:
		return a, true
	default:
		return nil, false
	}
}

// matches reports whether doc satisfies every condition.
func matches(doc store.Document, conds []store.Condition) bool {
	for _, c := range conds {
		if !matchCondition(doc, c) {
			return false
		}
	}
	return true
}

func matchCondition(doc store.Document, c store.Condition) bool {
	values, missing := resolve(doc, strings.Split(c.Field, "."))
	if missing && c.Op == store.OpEq && c.Value == nil {
		// A missing field equals null and nothing else.
		return true
	}
	for _, v := range values {
		if matchValue(v, c) {
			return true
		}
		if arr, isArr := elements(v); isArr {
			for _, el := range arr {
				if matchValue(el, c) {
					return true
				}
			}
		}
	}
	return false
}

func matchValue(v any, c store.Condition) bool {
	cmp, ok := compare(v, c.Value)
	if !ok {
		return false
	}
	switch c.Op {
	case store.OpEq:
		return cmp == 0
	case store.OpGt:
		return cmp > 0
	case store.OpGte:
		return cmp >= 0
	case store.OpLt:
		return cmp < 0
	case store.OpLte:
		return cmp <= 0
	default:
		return false
	}
}

// project keeps _id and the listed fields, in stored order. Dotted fields
// keep only the named sub-field of an embedded document.
func project(doc store.Document, fields []string) store.Document {
	if fields == nil {
		return slices.Clone(doc)
	}
	return projectFields(doc, fields, true)
}

func projectFields(doc bson.D, fields []string, keepID bool) bson.D {
	nested := make(map[string][]string)
	whole := map[string]bool{"_id": keepID}
	for _, f := range fields {
		head, rest, dotted := strings.Cut(f, ".")
		if dotted {
			nested[head] = append(nested[head], rest)
		} else {
			whole[f] = true
		}
	}

	out := make(bson.D, 0, len(whole)+len(nested))
	for _, e := range doc {
		switch {
		case whole[e.Key]:
			out = append(out, e)
		case nested[e.Key] != nil:
			if sub, ok := e.Value.(bson.D); ok {
				if p := projectFields(sub, nested[e.Key], false); len(p) > 0 {
					out = append(out, bson.E{Key: e.Key, Value: p})
				}
			}
		}
	}
	return out
}

// sortDocuments orders docs in place by keys; ties keep insertion order.
func sortDocuments(docs []store.Document, keys []store.SortKey) {
	if len(keys) == 0 {
		return
	}
	slices.SortStableFunc(docs, func(a, b store.Document) int {
		for _, k := range keys {
			va, _ := lookup(a, k.Field)
			vb, _ := lookup(b, k.Field)
			c := sortCompare(va, vb)
			if k.Descending {
				c = -c
			}
			if c != 0 {
				return c
			}
		}
		return 0
	})
}
