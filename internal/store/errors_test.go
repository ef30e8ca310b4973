package store

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreErrorWrapping(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewStoreError("companies", "find", "query failed", fmt.Errorf("%w: %w", ErrQueryFailed, cause))

	assert.Equal(t, "find operation on companies failed: query failed: query failed: connection reset", err.Error())
	assert.ErrorIs(t, err, ErrQueryFailed)
	assert.ErrorIs(t, err, cause)

	var se *StoreError
	require.ErrorAs(t, fmt.Errorf("handler: %w", err), &se)
	assert.Equal(t, "find", se.Operation)

	assert.Equal(t, "decode operation on companies failed: bad document",
		NewStoreError("companies", "decode", "bad document", nil).Error())
}

func TestKind(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{ErrUnavailable, "unavailable"},
		{fmt.Errorf("wrapped: %w", ErrTimeout), "timeout"},
		{context.DeadlineExceeded, "timeout"},
		{NewStoreError("companies", "decode", "x", ErrDecodeFailed), "decode"},
		{ErrQueryFailed, "query"},
		{errors.New("boom"), "unknown"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Kind(tc.err))
	}
}

func TestUnavailable(t *testing.T) {
	cause := errors.New("server selection timeout")
	gw := Unavailable(cause)
	ctx := context.Background()

	docs, err := gw.Find(ctx, Query{})
	assert.Nil(t, docs)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.ErrorIs(t, err, cause)

	assert.ErrorIs(t, gw.Ping(ctx), ErrUnavailable)
	assert.NoError(t, gw.Close(ctx))

	assert.ErrorIs(t, Unavailable(nil).Ping(ctx), ErrUnavailable)
}

func TestMapContextError(t *testing.T) {
	assert.NoError(t, MapContextError(nil))
	assert.ErrorIs(t, MapContextError(context.DeadlineExceeded), ErrTimeout)
	assert.ErrorIs(t, MapContextError(context.Canceled), ErrQueryFailed)
	assert.ErrorIs(t, MapContextError(context.Canceled), context.Canceled)
}
