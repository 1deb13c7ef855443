package integrations

import (
	"errors"
	"net/http"
	"time"
)

var (
	// ErrNotFound is returned when a package doesn't exist in the registry (HTTP 404).
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for transport failures and any non-200 response other than 404.
	ErrNetwork = errors.New("network error")
)

// NewHTTPClient creates an HTTP client for registry requests.
// A zero timeout leaves requests unbounded; they still stop when the
// request context is cancelled.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}
