package client

import (
	"net/http"
	"net/http/httputil"
	"os"

	"github.com/rs/zerolog/log"
)

// debugTransport dumps every request and response for troubleshooting
// API communication problems (timeouts, malformed requests, unexpected
// envelopes).
//
// Activation: set PUJADESK_DEBUG=true or DEBUG=true, or pass
// WithDebugLogging(true). Dumps include full bodies and headers, token
// included, so keep this out of production logs.
type debugTransport struct{ base http.RoundTripper }

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := dt.base
	if base == nil {
		base = http.DefaultTransport
	}

	if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
	}

	resp, err := base.RoundTrip(req)
	if err != nil {
		log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}

// debugLoggingRequested checks if HTTP debug logging should be enabled
// via environment. Both variables are supported: PUJADESK_DEBUG for
// targeted SDK debugging, DEBUG for broader application debugging.
func debugLoggingRequested() bool {
	return os.Getenv("PUJADESK_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
