// Package apierr provides error classification for the client SDK.
// This enables different retry policies based on error recoverability
// and carries the user-facing notice derived from each failure.
package apierr

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Category determines how errors should be handled by retry logic.
type Category int

const (
	// Recoverable errors may be retried with exponential backoff.
	// Examples: 500 Internal Server Error, network timeouts.
	Recoverable Category = iota

	// Irrecoverable errors should fail immediately without retry.
	// Examples: 400 Bad Request, 401 Unauthorized, 404 Not Found.
	Irrecoverable
)

// String returns a human-readable representation of the category.
func (c Category) String() string {
	switch c {
	case Recoverable:
		return "Recoverable"
	case Irrecoverable:
		return "Irrecoverable"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// Error wraps a transport failure with classification metadata.
// Status is 0 for network-level failures that produced no response.
type Error struct {
	Category   Category
	Status     int
	Message    string
	Data       json.RawMessage // server error payload, if any
	Underlying error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("[%s] HTTP %d: %s", e.Category, e.Status, e.Message)
	}
	return fmt.Sprintf("[%s] %s", e.Category, e.Message)
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *Error) Unwrap() error { return e.Underlying }

// Sentinels matched by errors.Is for the two statuses callers branch
// on most.
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
)

// Is lets errors.Is match the status sentinels above.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Status == 404
	case ErrUnauthorized:
		return e.Status == 401
	}
	return false
}

// AsError extracts an *Error from err's chain.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsIrrecoverable reports whether err should not be retried.
func IsIrrecoverable(err error) bool {
	if e, ok := AsError(err); ok {
		return e.Category == Irrecoverable
	}
	return false
}

// StatusOf returns the HTTP status carried by err, or -1 when err is
// not a classified transport error.
func StatusOf(err error) int {
	if e, ok := AsError(err); ok {
		return e.Status
	}
	return -1
}
