package gobox

import (
	"net/http"

	"github.com/stackmint/gobox/internal/apierr"
)

// APIError is the typed error returned for unexpected response statuses.
// Callers match it with errors.As, or use the helpers below for common
// statuses.
type APIError = apierr.APIError

// IsNotFound reports whether err is a 404 from the service.
func IsNotFound(err error) bool { return apierr.StatusOf(err) == http.StatusNotFound }

// IsConflict reports whether err is a 409 from the service.
func IsConflict(err error) bool { return apierr.StatusOf(err) == http.StatusConflict }

// IsUnauthorized reports whether err is a 401 from the service.
func IsUnauthorized(err error) bool { return apierr.StatusOf(err) == http.StatusUnauthorized }

// IsRateLimited reports whether err is a 429 from the service.
func IsRateLimited(err error) bool { return apierr.StatusOf(err) == http.StatusTooManyRequests }
