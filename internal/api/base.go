// Package api builds and dispatches requests to the service's REST endpoints.
//
// Every operation follows the same contract: one HTTP request of a fixed verb
// to escaped path segments joined under the base URL, an optional JSON body,
// one expected success status. The response body is decoded into the caller's
// type; any other status becomes an *apierr.APIError.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/stackmint/gobox/internal/apierr"
)

// errBodyLimit caps how much of an error response is read for diagnostics.
const errBodyLimit = 64 << 10

// request describes one call to the service.
type request struct {
	op         string // operation name for error messages
	method     string
	path       []string // unescaped segments, joined in order under baseURL
	query      url.Values
	body       any // marshaled as JSON when non-nil
	wantStatus int
}

// endpointURL joins escaped path segments and the encoded query under baseURL.
func endpointURL(baseURL string, path []string, query url.Values) string {
	var b strings.Builder
	b.WriteString(strings.TrimRight(baseURL, "/"))
	for _, seg := range path {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(seg))
	}
	if len(query) > 0 {
		b.WriteByte('?')
		b.WriteString(query.Encode())
	}
	return b.String()
}

// do issues the request and decodes the success payload into out (out may be
// nil for bodyless responses). Unexpected statuses come back as *apierr.APIError;
// transport failures are wrapped and classified recoverable.
func do(ctx context.Context, httpClient *http.Client, baseURL string, r request, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var payload io.Reader
	if r.body != nil {
		buf, err := json.Marshal(r.body)
		if err != nil {
			return err
		}
		payload = bytes.NewReader(buf)
	}

	httpReq, err := http.NewRequestWithContext(ctx, r.method, endpointURL(baseURL, r.path, r.query), payload)
	if err != nil {
		return err
	}
	if r.body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	// Authorization header is added by the client's transport layer.

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return apierr.NewNetworkError(r.op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != r.wantStatus {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errBodyLimit))
		return apierr.FromResponse(r.op, resp.StatusCode, body)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
