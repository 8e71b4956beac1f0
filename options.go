package gobox

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// gobox.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"time"
)

// Option configures a Client during construction in New.
//
// Options are applied before the metrics and authorization transport wrappers
// are installed, so transport-related options (like debug logging) end up
// underneath them. Options must be deterministic and side-effect free.
type Option func(*Client) error

// WithHTTPTimeout sets the underlying http.Client Timeout used by the SDK.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse safety net that bounds the total time spent on a single HTTP request
// (including connection, TLS handshake, redirects, and reading the response).
// The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithHTTPClient replaces the underlying http.Client entirely. The supplied
// client's transport still gets wrapped by the metrics and authorization
// layers.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) error {
		if h == nil {
			return fmt.Errorf("http client must not be nil")
		}
		c.http = h
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response is
// logged when enabled is true.
//
// Do not enable this option in production environments as it increases
// verbosity and may include headers and method/URL metadata in logs.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			c.http.Transport = &debugTransport{base: transportOrDefault(c.http.Transport)}
		}
		return nil
	}
}

// WithMaxRetries enables transport-level retry of recoverable failures
// (429, 5xx, network errors) with exponential backoff. n is the number of
// retries after the initial attempt; zero disables retry, which is the
// default.
func WithMaxRetries(n int) Option {
	return func(c *Client) error {
		if n < 0 {
			return fmt.Errorf("max retries must be >= 0")
		}
		c.maxRetries = n
		return nil
	}
}

// WithUserAgent overrides the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) error {
		if ua == "" {
			return fmt.Errorf("user agent must not be empty")
		}
		c.userAgent = ua
		return nil
	}
}

// WithAsUser sets the As-User impersonation header on every request, making
// calls act on behalf of the given managed user. Requires a token with
// impersonation rights.
func WithAsUser(userID string) Option {
	return func(c *Client) error {
		c.asUser = userID
		return nil
	}
}
