package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable covers transport-level failures where no usable response
	// was received from the backend.
	ErrUnavailable = errors.New("server unavailable")

	// ErrTimeout marks a request abandoned because its deadline expired.
	// Kept distinct from ErrUnavailable so callers can tell a slow backend
	// from an unreachable one.
	ErrTimeout = errors.New("request timed out")

	// ErrUnauthorized means the backend rejected the bearer token (or the
	// credentials during login). By the time a caller sees it the persisted
	// token has already been invalidated by the transport.
	ErrUnauthorized = errors.New("unauthorized")
)

// APIError is a server-side rejection (4xx/5xx other than 401) carrying the
// backend's human-readable detail message.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("server rejected request (status %d)", e.Status)
	}
	return fmt.Sprintf("server rejected request (status %d): %s", e.Status, e.Detail)
}
