package api

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phrazzld/companies-api/internal/store"
)

func TestErrorMapping(t *testing.T) {
	errs := []error{
		store.ErrUnavailable,
		store.ErrTimeout,
		store.NewStoreError("companies", "decode", "decode failed", store.ErrDecodeFailed),
		errors.New("mongodb://admin:hunter2@db:27017 refused"),
	}

	for _, err := range errs {
		assert.Equal(t, http.StatusInternalServerError, MapErrorToStatusCode(err))
		assert.Equal(t, FetchFailedMessage, GetSafeErrorMessage(err))
	}
	assert.Equal(t, http.StatusOK, MapErrorToStatusCode(nil))
	assert.Empty(t, GetSafeErrorMessage(nil))
}

func TestErrorKind(t *testing.T) {
	assert.Equal(t, "unavailable", ErrorKind(store.Unavailable(nil).Ping(context.Background())))
	assert.Equal(t, "timeout", ErrorKind(store.ErrTimeout))
	assert.Equal(t, "", ErrorKind(nil))
}
