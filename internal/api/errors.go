package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable means no usable response arrived (connection refused,
	// timeout, unreadable body). Callers show a generic fallback message.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized is the uniform mapping of a 401 response. Receiving it
	// also invalidates the session exactly once per token.
	ErrUnauthorized = errors.New("unauthorized")
)

// APIError is a business-rule rejection (4xx/5xx other than 401). Message
// carries the server-supplied text unchanged so views can display it
// verbatim.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}
