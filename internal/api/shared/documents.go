package shared

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/phrazzld/companies-api/internal/store"
)

// DateLayout renders dates as ISO 8601 with millisecond precision, the
// precision BSON dates carry.
const DateLayout = "2006-01-02T15:04:05.000Z07:00"

// Documents marshals a result set as a JSON array. Field order of each
// document is preserved. BSON-specific values map to plain JSON: ObjectIDs to
// their hex string, dates to ISO 8601 strings in UTC with milliseconds, Decimal128 to its
// string form. A nil set encodes as [] rather than null.
type Documents []store.Document

// MarshalJSON implements json.Marshaler.
func (d Documents) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, doc := range d {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeDocument(&buf, doc); err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

func writeDocument(buf *bytes.Buffer, doc bson.D) error {
	buf.WriteByte('{')
	for i, e := range doc {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeMember(buf, e.Key, e.Value); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

func writeMap(buf *bytes.Buffer, m map[string]any) error {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	buf.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeMember(buf, k, m[k]); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

func writeMember(buf *bytes.Buffer, key string, v any) error {
	if err := writeJSON(buf, key); err != nil {
		return err
	}
	buf.WriteByte(':')
	if err := writeValue(buf, v); err != nil {
		return fmt.Errorf("field %q: %w", key, err)
	}
	return nil
}

func writeArray(buf *bytes.Buffer, items []any) error {
	buf.WriteByte('[')
	for i, item := range items {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeValue(buf, item); err != nil {
			return err
		}
	}
	buf.WriteByte(']')
	return nil
}

func writeValue(buf *bytes.Buffer, v any) error {
	switch x := v.(type) {
	case nil, bson.Null, bson.Undefined:
		buf.WriteString("null")
		return nil
	case bson.D:
		return writeDocument(buf, x)
	case bson.M:
		return writeMap(buf, x)
	case map[string]any:
		return writeMap(buf, x)
	case bson.A:
		return writeArray(buf, x)
	case []any:
		return writeArray(buf, x)
	case bson.ObjectID:
		return writeJSON(buf, x.Hex())
	case bson.DateTime:
		return writeJSON(buf, x.Time().UTC().Format(DateLayout))
	case time.Time:
		return writeJSON(buf, x.UTC().Format(DateLayout))
	case bson.Decimal128:
		return writeJSON(buf, x.String())
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			buf.WriteString("null")
			return nil
		}
		return writeJSON(buf, x)
	case bson.Binary:
		return writeJSON(buf, x.Data)
	case bson.Regex:
		return writeJSON(buf, "/"+x.Pattern+"/"+x.Options)
	default:
		return writeJSON(buf, x)
	}
}

func writeJSON(buf *bytes.Buffer, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	buf.Write(b)
	return nil
}
