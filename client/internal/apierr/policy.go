package apierr

import (
	"encoding/json"
	"fmt"
)

// NoticeKind categorizes the user-facing notice a failure must raise.
type NoticeKind int

const (
	NoticeValidation NoticeKind = iota
	NoticeAuth
	NoticeAccessDenied
	NoticeNotFound
	NoticeConflict
	NoticeRateLimit
	NoticeServerError
	NoticeNetwork
)

// String returns the notice kind label used in logs and metrics.
func (k NoticeKind) String() string {
	switch k {
	case NoticeValidation:
		return "validation"
	case NoticeAuth:
		return "auth"
	case NoticeAccessDenied:
		return "access_denied"
	case NoticeNotFound:
		return "not_found"
	case NoticeConflict:
		return "conflict"
	case NoticeRateLimit:
		return "rate_limit"
	case NoticeServerError:
		return "server_error"
	case NoticeNetwork:
		return "network"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Notice is the user-visible classification of a transport failure.
// The transport layer emits these; presentation decides rendering.
type Notice struct {
	Kind    NoticeKind
	Status  int
	Message string
}

// Default notice messages per status. A server-supplied error string
// replaces the default for validation and conflict statuses, where the
// body usually explains which field is wrong.
const (
	msgAccessDenied = "Access denied. You do not have permission to perform this action."
	msgNotFound     = "The requested resource was not found."
	msgRateLimit    = "Too many requests. Please slow down and try again."
	msgServerError  = "Server error. Please try again later."
	msgNetwork      = "Network error. Please check your connection."
	msgSessionGone  = "Your session has expired. Please sign in again."
	msgValidation   = "The request could not be processed. Please check your input."
	msgConflict     = "A conflict was detected. The resource may have changed."
)

// Classify maps an HTTP status and server error payload to the
// classified error plus the notice the user must see.
//
// The table is fixed:
//
//	400/422 validation, 401 auth (session cleared by the caller),
//	403 access denied, 404 not found, 409 conflict, 429 rate limit,
//	5xx server error. Anything else falls through as a server error.
func Classify(status int, serverMsg string, data json.RawMessage, operation string) (*Error, Notice) {
	var n Notice
	n.Status = status

	switch {
	case status == 400 || status == 422:
		n.Kind = NoticeValidation
		n.Message = orDefault(serverMsg, msgValidation)
	case status == 401:
		n.Kind = NoticeAuth
		n.Message = msgSessionGone
	case status == 403:
		n.Kind = NoticeAccessDenied
		n.Message = msgAccessDenied
	case status == 404:
		n.Kind = NoticeNotFound
		n.Message = msgNotFound
	case status == 409:
		n.Kind = NoticeConflict
		n.Message = orDefault(serverMsg, msgConflict)
	case status == 429:
		n.Kind = NoticeRateLimit
		n.Message = msgRateLimit
	default:
		n.Kind = NoticeServerError
		n.Message = msgServerError
	}

	e := &Error{
		Category:   categoryFor(status),
		Status:     status,
		Message:    n.Message,
		Data:       data,
		Underlying: fmt.Errorf("%s failed: HTTP %d", operation, status),
	}
	return e, n
}

// Network builds the classified error and notice for a failure that
// produced no HTTP response at all. Status 0 keeps it distinct from
// every server-originated failure.
func Network(operation string, err error) (*Error, Notice) {
	e := &Error{
		Category:   Recoverable,
		Status:     0,
		Message:    msgNetwork,
		Underlying: fmt.Errorf("%s network error: %w", operation, err),
	}
	return e, Notice{Kind: NoticeNetwork, Status: 0, Message: msgNetwork}
}

// categoryFor maps HTTP status codes to retry categories.
// 4xx is irrecoverable except 408 and 429; 5xx and anything
// unexpected is recoverable.
func categoryFor(status int) Category {
	switch {
	case status >= 400 && status < 500:
		if status == 408 || status == 429 {
			return Recoverable
		}
		return Irrecoverable
	default:
		return Recoverable
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
