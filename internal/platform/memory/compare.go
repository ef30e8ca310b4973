package memory

import (
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Canonical type ranks used when ordering values of different types.
const (
	rankNull = iota
	rankNumber
	rankString
	rankObject
	rankArray
	rankObjectID
	rankBool
	rankDate
	rankOther
)

func rank(v any) int {
	switch v.(type) {
	case nil, bson.Null, bson.Undefined:
		return rankNull
	case int, int32, int64, float32, float64, bson.Decimal128:
		return rankNumber
	case string:
		return rankString
	case bson.D, bson.M, map[string]any:
		return rankObject
	case bson.A, []any:
		return rankArray
	case bson.ObjectID:
		return rankObjectID
	case bool:
		return rankBool
	case bson.DateTime, time.Time:
		return rankDate
	default:
		return rankOther
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case bson.Decimal128:
		f, err := strconv.ParseFloat(n.String(), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func toTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case bson.DateTime:
		return t.Time(), true
	case time.Time:
		return t, true
	default:
		return time.Time{}, false
	}
}

// compare orders two scalar values of the same type bracket. ok is false when
// the values are not comparable, in which case no range condition matches.
func compare(a, b any) (c int, ok bool) {
	if rank(a) != rank(b) {
		return 0, false
	}
	switch rank(a) {
	case rankNull:
		return 0, true
	case rankNumber:
		x, okA := toFloat(a)
		y, okB := toFloat(b)
		if !okA || !okB {
			return 0, false
		}
		return cmpFloat(x, y), true
	case rankString:
		return strings.Compare(a.(string), b.(string)), true
	case rankObjectID:
		x, y := a.(bson.ObjectID), b.(bson.ObjectID)
		return strings.Compare(x.Hex(), y.Hex()), true
	case rankBool:
		x, y := a.(bool), b.(bool)
		switch {
		case x == y:
			return 0, true
		case !x:
			return -1, true
		default:
			return 1, true
		}
	case rankDate:
		x, _ := toTime(a)
		y, _ := toTime(b)
		return x.Compare(y), true
	default:
		return 0, false
	}
}

func cmpFloat(x, y float64) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

// sortCompare is a total order across types, used for sorting. Values of
// different types order by rank; incomparable values of one rank are equal.
func sortCompare(a, b any) int {
	ra, rb := rank(a), rank(b)
	if ra != rb {
		return ra - rb
	}
	if c, ok := compare(a, b); ok {
		return c
	}
	return 0
}
