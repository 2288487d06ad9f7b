package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound reports that the remote service answered 404 for the requested
// entity. Typed getters translate it into a nil result so callers can tell
// "no such entity" apart from a true failure.
var ErrNotFound = errors.New("not found")

// ErrNoToken reports that an operation requiring authentication was attempted
// without a configured bearer token. No request is sent in this case.
var ErrNoToken = errors.New("authentication token required")

// RemoteError is a non-2xx response from the service, other than 404.
type RemoteError struct {
	StatusCode int
	Detail     string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("API error (%d): %s", e.StatusCode, e.Detail)
}

// Unauthorized reports whether the service rejected the bearer token.
func (e *RemoteError) Unauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// TooLarge reports whether the service refused an upload for exceeding
// its size cap.
func (e *RemoteError) TooLarge() bool {
	return e.StatusCode == http.StatusRequestEntityTooLarge
}

// ConnectionError is a request that never reached the service (DNS failure,
// refused connection, timeout). Addr names the configured base URL so the
// message can hint at what to check.
type ConnectionError struct {
	Addr string
	Err  error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection error: %v (is the service running on %s?)", e.Err, e.Addr)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// notFoundToNil maps ErrNotFound to a plain nil error, for operations where
// a 404 is an empty result rather than a failure.
func notFoundToNil(err error) error {
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	return err
}
