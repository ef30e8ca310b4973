package mongo

import (
	"context"
	"errors"
	"fmt"

	mongodriver "go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/phrazzld/companies-api/internal/store"
)

// MapError maps a driver error to a store error category, wrapping the
// original error to preserve context. stage is "find" for errors raised while
// issuing the command and "decode" for errors raised while draining the cursor.
func MapError(stage string, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded), mongodriver.IsTimeout(err):
		return fmt.Errorf("%w: %w", store.ErrTimeout, err)
	case errors.Is(err, mongodriver.ErrClientDisconnected):
		return fmt.Errorf("%w: %w", store.ErrUnavailable, err)
	case mongodriver.IsNetworkError(err):
		return fmt.Errorf("%w: %w", store.ErrQueryFailed, err)
	case stage == "decode":
		return fmt.Errorf("%w: %w", store.ErrDecodeFailed, err)
	default:
		return fmt.Errorf("%w: %w", store.ErrQueryFailed, err)
	}
}
