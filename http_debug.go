package gobox

import (
	"net/http"
	"net/http/httputil"
	"os"

	"github.com/rs/zerolog/log"
)

// debugTransport dumps each request and response for troubleshooting API
// communication problems (malformed requests, unexpected responses, header
// issues).
//
// Enabled by WithDebugLogging or by setting GOBOX_DEBUG=true (or DEBUG=true)
// in the environment. Dumps include full bodies and the Authorization header,
// so keep it out of production and treat the log output as sensitive.
type debugTransport struct{ base http.RoundTripper }

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
	}

	resp, err := dt.base.RoundTrip(req)
	if err != nil {
		log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}

// debugLoggingRequested checks whether HTTP debug logging should be enabled
// from the environment. GOBOX_DEBUG targets this SDK alone; DEBUG is honored
// for broader application debugging workflows. Both must be exactly "true".
func debugLoggingRequested() bool {
	return os.Getenv("GOBOX_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
