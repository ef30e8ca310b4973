package store

import (
	"context"
	"errors"
	"fmt"
)

// Common store errors used across all gateway implementations.
var (
	// ErrUnavailable is returned when no connection to the database exists,
	// for example when the server started in degraded mode.
	ErrUnavailable = errors.New("database unavailable")

	// ErrQueryFailed is returned when the database rejected or failed to
	// execute a query.
	ErrQueryFailed = errors.New("query failed")

	// ErrDecodeFailed is returned when stored documents could not be decoded.
	ErrDecodeFailed = errors.New("decode failed")

	// ErrTimeout is returned when a query did not finish within its deadline.
	ErrTimeout = errors.New("query timed out")
)

// StoreError is a custom error type for store-specific errors with additional context.
type StoreError struct {
	Collection string // The collection queried (e.g., "companies")
	Operation  string // The operation that failed (e.g., "find", "decode")
	Message    string // Error message
	Err        error  // Original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf(
			"%s operation on %s failed: %s: %v",
			e.Operation,
			e.Collection,
			e.Message,
			e.Err,
		)
	}
	return fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Collection, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError with the given collection, operation, message, and wrapped error.
func NewStoreError(collection, operation, message string, err error) *StoreError {
	return &StoreError{
		Collection: collection,
		Operation:  operation,
		Message:    message,
		Err:        err,
	}
}

// Kind names the category of a store error for logs and metrics:
// "unavailable", "timeout", "decode", "query" or "unknown".
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUnavailable):
		return "unavailable"
	case errors.Is(err, ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, ErrDecodeFailed):
		return "decode"
	case errors.Is(err, ErrQueryFailed):
		return "query"
	default:
		return "unknown"
	}
}

// MapContextError wraps a context error in the matching store error:
// deadline expiry becomes ErrTimeout, cancellation ErrQueryFailed.
func MapContextError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	default:
		return fmt.Errorf("%w: %w", ErrQueryFailed, err)
	}
}
