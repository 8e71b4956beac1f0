package gobox

import (
	"io"
	"net/http"
	"time"

	backoff "github.com/cenkalti/backoff/v4"

	"github.com/stackmint/gobox/internal/apierr"
)

// retryTransport re-issues requests that fail in a recoverable way (429, 5xx,
// network errors) with exponential backoff. Irrecoverable statuses and
// successes pass through untouched, so callers still see exactly one logical
// request per SDK call.
//
// Requests whose body cannot be replayed (GetBody unset) are never retried.
type retryTransport struct {
	base       http.RoundTripper
	maxRetries int
}

func (rt *retryTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = 500 * time.Millisecond
	exp.Multiplier = 2
	exp.MaxInterval = 20 * time.Second
	exp.Reset()

	attempts := 0
	for {
		resp, err := rt.base.RoundTrip(req)
		if !rt.shouldRetry(req, resp, err) || attempts >= rt.maxRetries {
			return resp, err
		}
		attempts++

		if resp != nil {
			// Drain so the connection can be reused.
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
		}
		if req.Body != nil {
			body, berr := req.GetBody()
			if berr != nil {
				return resp, err
			}
			req.Body = body
		}

		select {
		case <-time.After(exp.NextBackOff()):
		case <-req.Context().Done():
			return nil, req.Context().Err()
		}
	}
}

func (rt *retryTransport) shouldRetry(req *http.Request, resp *http.Response, err error) bool {
	if req.Body != nil && req.GetBody == nil {
		return false
	}
	if err != nil {
		return true
	}
	return resp.StatusCode >= 400 && apierr.CategoryForStatus(resp.StatusCode) == apierr.Recoverable
}
