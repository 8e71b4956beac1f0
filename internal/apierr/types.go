// Package apierr models errors returned by the remote API and classifies
// them for retry policies.
package apierr

import (
	"errors"
	"fmt"
)

// Category determines how errors should be handled by retry logic.
type Category int

const (
	// Recoverable errors may be retried with exponential backoff.
	// Examples: 500 Internal Server Error, 429 Too Many Requests, network timeouts.
	Recoverable Category = iota

	// Irrecoverable errors should fail immediately without retry.
	// Examples: 400 Bad Request, 401 Unauthorized, 404 Not Found, 409 Conflict.
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

// APIError is an unexpected response from the service. StatusCode is always
// set for HTTP-level failures; Code, Message and RequestID are filled in when
// the response body carried the service's error object.
type APIError struct {
	Category   Category
	StatusCode int    // HTTP status code (0 for network-level errors)
	Code       string // service error code, e.g. "item_name_in_use"
	Message    string // service error message
	RequestID  string // service-assigned id for support correlation
	Underlying error  // the original error, if any
}

// Error implements the error interface.
func (e *APIError) Error() string {
	switch {
	case e.StatusCode > 0 && e.Code != "":
		return fmt.Sprintf("api error: status %d (%s): %s [request_id=%s]", e.StatusCode, e.Code, e.Message, e.RequestID)
	case e.StatusCode > 0:
		return fmt.Sprintf("api error: unexpected status %d", e.StatusCode)
	default:
		return fmt.Sprintf("api error: %v", e.Underlying)
	}
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *APIError) Unwrap() error { return e.Underlying }

// IsIrrecoverable reports whether err should not be retried.
func IsIrrecoverable(err error) bool {
	var ae *APIError
	if errors.As(err, &ae) {
		return ae.Category == Irrecoverable
	}
	return false
}

// StatusOf returns the HTTP status carried by err, or 0 if err is not an
// *APIError.
func StatusOf(err error) int {
	var ae *APIError
	if errors.As(err, &ae) {
		return ae.StatusCode
	}
	return 0
}
