package api

import (
	"net/http"

	"github.com/phrazzld/companies-api/internal/store"
)

// FetchFailedMessage is the only error text company routes ever return.
const FetchFailedMessage = "Failed to fetch data"

// MapErrorToStatusCode maps an error from the store to an HTTP status code.
// Every store failure is a server-side problem, so the mapping collapses to
// 500; callers should not infer anything from the kind of failure.
func MapErrorToStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}
	return http.StatusInternalServerError
}

// GetSafeErrorMessage returns the message sent to clients for err. Driver and
// connection detail never reach the response body.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	return FetchFailedMessage
}

// ErrorKind classifies err for logging and metrics.
func ErrorKind(err error) string {
	return store.Kind(err)
}
