package client

import (
	"errors"

	"github.com/pujadesk/pujadesk/client/internal/api"
	"github.com/pujadesk/pujadesk/client/internal/apierr"
)

// APIError is the classified transport error every failed request
// returns. Status is 0 for network-level failures.
type APIError = apierr.Error

// ValidationError carries a failed client-side validation; no request
// was sent.
type ValidationError = api.ValidationError

// Sentinels for errors.Is branching on the common statuses.
var (
	ErrNotFound     = apierr.ErrNotFound
	ErrUnauthorized = apierr.ErrUnauthorized
)

// AsAPIError extracts an *APIError from err's chain.
func AsAPIError(err error) (*APIError, bool) { return apierr.AsError(err) }

// StatusOf returns the HTTP status carried by err, 0 for network
// failures, -1 when err is not a transport error.
func StatusOf(err error) int { return apierr.StatusOf(err) }

// IsNotFound reports whether err is a 404 response.
func IsNotFound(err error) bool { return apierr.StatusOf(err) == 404 }

// IsUnauthorized reports whether err is a 401 response.
func IsUnauthorized(err error) bool { return apierr.StatusOf(err) == 401 }

// IsValidation reports whether err is a client-side validation failure.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// FieldErrors returns the per-field messages of a validation failure,
// or nil when err is not one.
func FieldErrors(err error) map[string]string {
	var v *ValidationError
	if errors.As(err, &v) {
		return v.Result.Errors
	}
	return nil
}
