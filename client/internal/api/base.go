// Package api contains the per-resource request builders. Every
// function takes a *Caller so tests can point modules at an
// httptest server without constructing the public client.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/pujadesk/pujadesk/client/internal/apierr"
	"github.com/pujadesk/pujadesk/client/internal/types"
)

// HTTPClient interface for dependency injection.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// NotifyFunc receives the user-facing notice derived from a transport
// failure. The transport never renders anything itself.
type NotifyFunc func(apierr.Notice)

// Caller bundles what every request needs: the HTTP client (already
// wrapped with the bearer transport), the backend origin, and the two
// hooks that keep transport failures user-visible and sessions honest.
type Caller struct {
	HTTP    HTTPClient
	BaseURL string

	// Notify is invoked once per failed request. May be nil.
	Notify NotifyFunc

	// OnUnauthorized is invoked after any 401 response, before the
	// error is returned. The owner uses it to clear the token and
	// session. May be nil.
	OnUnauthorized func()
}

// DoJSON issues one JSON request and decodes the response envelope.
// Failures come back as *apierr.Error: HTTP failures carry the server
// status, network failures carry status 0. The notice hook fires on
// every failure path.
func (c *Caller) DoJSON(ctx context.Context, method, path string, body any) (*types.Envelope, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var payload io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%s %s: encode body: %w", method, path, err)
		}
		payload = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, payload)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, method+" "+path)
}

// send executes the request and applies the status policy.
func (c *Caller) send(req *http.Request, operation string) (*types.Envelope, error) {
	resp, err := c.HTTP.Do(req)
	if err != nil {
		// Context cancellation is the caller's doing, not a
		// transport fault; no notice for it.
		if ctxErr := req.Context().Err(); ctxErr != nil {
			return nil, ctxErr
		}
		clsErr, notice := apierr.Network(operation, err)
		c.fail(operation, clsErr, notice)
		return nil, clsErr
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		clsErr, notice := apierr.Network(operation, err)
		c.fail(operation, clsErr, notice)
		return nil, clsErr
	}

	var env types.Envelope
	if len(raw) > 0 {
		// Non-envelope bodies (proxies, HTML error pages) are kept
		// raw so the classified error still carries them.
		if err := json.Unmarshal(raw, &env); err != nil {
			env = types.Envelope{Data: raw}
		}
	}

	// Every completed response counts, error statuses included;
	// requestFailuresTotal tracks the failure kinds separately.
	requestsTotal.WithLabelValues(req.Method, codeClass(resp.StatusCode)).Inc()

	if resp.StatusCode >= 400 {
		clsErr, notice := apierr.Classify(resp.StatusCode, env.Error, env.Data, operation)
		if resp.StatusCode == http.StatusUnauthorized && c.OnUnauthorized != nil {
			c.OnUnauthorized()
		}
		c.fail(operation, clsErr, notice)
		return nil, clsErr
	}
	return &env, nil
}

func (c *Caller) fail(operation string, err *apierr.Error, notice apierr.Notice) {
	requestFailuresTotal.WithLabelValues(notice.Kind.String()).Inc()
	log.Debug().Str("operation", operation).Int("status", err.Status).Str("kind", notice.Kind.String()).Msg("request failed")
	if c.Notify != nil {
		c.Notify(notice)
	}
}

func codeClass(status int) string {
	return fmt.Sprintf("%dxx", status/100)
}
