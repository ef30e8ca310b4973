package memory

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/phrazzld/companies-api/internal/store"
)

// LoadFile reads a JSON array of documents from path. See Decode.
func LoadFile(path string) ([]store.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	docs, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("seed file %s: %w", path, err)
	}
	return docs, nil
}

// Decode parses a JSON array of documents. Each element is read as relaxed
// Extended JSON, so plain integers become int32/int64, fractional numbers
// float64, and {"$oid": ...} or {"$date": ...} wrappers their BSON types.
// Documents without an _id get a fresh ObjectID, as an insert would.
func Decode(r io.Reader) ([]store.Document, error) {
	var raw []json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode document array: %w", err)
	}

	docs := make([]store.Document, 0, len(raw))
	for i, elem := range raw {
		if !bytes.HasPrefix(bytes.TrimSpace(elem), []byte("{")) {
			return nil, fmt.Errorf("element %d is not an object", i)
		}
		var doc bson.D
		if err := bson.UnmarshalExtJSON(elem, false, &doc); err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		if _, ok := field(doc, "_id"); !ok {
			doc = append(bson.D{{Key: "_id", Value: bson.NewObjectID()}}, doc...)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}
