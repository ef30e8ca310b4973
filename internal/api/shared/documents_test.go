package shared

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/phrazzld/companies-api/internal/store"
)

func TestDocumentsMarshalJSON(t *testing.T) {
	oid, err := bson.ObjectIDFromHex("52cdef7c4bab8bd675297d8a")
	require.NoError(t, err)
	founded := time.Date(2007, time.March, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		docs Documents
		want string
	}{
		{
			name: "nil set",
			docs: nil,
			want: `[]`,
		},
		{
			name: "projected document keeps order",
			docs: Documents{{{Key: "_id", Value: oid}, {Key: "name", Value: "Babelgum"}}},
			want: `[{"_id":"52cdef7c4bab8bd675297d8a","name":"Babelgum"}]`,
		},
		{
			name: "numbers and nesting",
			docs: Documents{{
				{Key: "number_of_employees", Value: int32(5299)},
				{Key: "ipo", Value: bson.D{
					{Key: "valuation_amount", Value: int64(104000000000)},
					{Key: "valuation_currency_code", Value: "USD"},
				}},
				{Key: "total_money_raised", Value: 2.5},
				{Key: "deadpooled", Value: false},
				{Key: "parent", Value: nil},
			}},
			want: `[{"number_of_employees":5299,"ipo":{"valuation_amount":104000000000,"valuation_currency_code":"USD"},"total_money_raised":2.5,"deadpooled":false,"parent":null}]`,
		},
		{
			name: "arrays, maps and dates",
			docs: Documents{{
				{Key: "tags", Value: bson.A{"web", int32(1), bson.D{{Key: "k", Value: "v"}}}},
				{Key: "meta", Value: bson.M{"b": int32(2), "a": int32(1)}},
				{Key: "created_at", Value: bson.NewDateTimeFromTime(founded)},
			}},
			want: `[{"tags":["web",1,{"k":"v"}],"meta":{"a":1,"b":2},"created_at":"2007-03-01T12:00:00.000Z"}]`,
		},
		{
			name: "dates keep milliseconds",
			docs: Documents{{
				{Key: "d", Value: bson.NewDateTimeFromTime(founded.Add(250 * time.Millisecond))},
				{Key: "t", Value: time.Date(2012, time.May, 18, 9, 30, 0, 0, time.FixedZone("EDT", -4*3600))},
			}},
			want: `[{"d":"2007-03-01T12:00:00.250Z","t":"2012-05-18T13:30:00.000Z"}]`,
		},
		{
			name: "non finite floats become null",
			docs: Documents{{{Key: "x", Value: math.NaN()}, {Key: "y", Value: math.Inf(1)}}},
			want: `[{"x":null,"y":null}]`,
		},
		{
			name: "multiple documents",
			docs: Documents{{{Key: "a", Value: int32(1)}}, {{Key: "a", Value: int32(2)}}},
			want: `[{"a":1},{"a":2}]`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := json.Marshal(tc.docs)
			require.NoError(t, err)
			assert.Equal(t, tc.want, string(got))
		})
	}
}

func TestDocumentsMarshalJSONEmptySlice(t *testing.T) {
	got, err := json.Marshal(Documents([]store.Document{}))
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))
}

func TestDocumentsMarshalJSONUnsupportedValue(t *testing.T) {
	_, err := json.Marshal(Documents{{{Key: "ch", Value: make(chan int)}}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `field "ch"`)
}
