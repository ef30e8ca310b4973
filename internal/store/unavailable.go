package store

import (
	"context"
	"fmt"
)

type unavailable struct {
	cause error
}

// Unavailable returns a Gateway whose every call fails with ErrUnavailable,
// wrapping cause. It stands in for a database that could not be reached at
// startup.
func Unavailable(cause error) Gateway {
	return unavailable{cause: cause}
}

func (u unavailable) err() error {
	if u.cause == nil {
		return ErrUnavailable
	}
	return fmt.Errorf("%w: %w", ErrUnavailable, u.cause)
}

func (u unavailable) Find(context.Context, Query) ([]Document, error) {
	return nil, u.err()
}

func (u unavailable) Ping(context.Context) error {
	return u.err()
}

func (u unavailable) Close(context.Context) error {
	return nil
}
