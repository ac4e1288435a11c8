// Package client is the SDK for the Puja Proposition backend. It wraps
// the REST API behind typed methods, applies the shared status policy
// on every response, and keeps the bearer token in lockstep with the
// durable keystore.
package client

import (
	"net/http"
	"sync"
	"time"

	"github.com/pujadesk/pujadesk/client/internal/api"
	"github.com/pujadesk/pujadesk/client/internal/apierr"
	"github.com/pujadesk/pujadesk/keystore"
)

// Client is safe for concurrent use.
type Client struct {
	baseURL  string
	http     *http.Client
	caller   *api.Caller
	retryMax int

	mu             sync.RWMutex
	token          string
	keys           *keystore.Store
	notifier       Notifier
	onUnauthorized func()
}

// New constructs a Client for the given configuration. BaseURL must be
// set. Additional knobs are provided via functional options.
func New(cfg Config, opts ...Option) *Client {
	if cfg.BaseURL == "" {
		panic("client: BaseURL cannot be empty")
	}
	timeout := cfg.HTTPTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	c := &Client{
		baseURL:  cfg.BaseURL,
		http:     &http.Client{Timeout: timeout},
		retryMax: cfg.RetryMaxAttempts,
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			panic(err)
		}
	}

	// The bearer wrapper sits on top so debug logging sees the
	// outgoing Authorization header.
	c.http.Transport = &bearerTransport{base: c.http.Transport, source: c}

	c.caller = &api.Caller{
		HTTP:    c.http,
		BaseURL: c.baseURL,
		Notify:  c.notify,
		OnUnauthorized: func() {
			_ = c.ClearToken()
			c.mu.RLock()
			hook := c.onUnauthorized
			c.mu.RUnlock()
			if hook != nil {
				hook()
			}
		},
	}

	// A token persisted by a previous run is adopted on construction
	// so the header and the durable copy start out agreeing.
	if c.keys != nil {
		if tok, ok := c.keys.Get(keystore.KeyAuthToken); ok && tok != "" {
			c.mu.Lock()
			c.token = tok
			c.mu.Unlock()
		}
	}
	return c
}

// SetToken stores tok as the bearer token for subsequent requests and
// mirrors it into the keystore when one is attached. The in-memory
// header source and the durable copy never disagree: the keystore
// write happens before the new token becomes visible to transports.
func (c *Client) SetToken(tok string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.keys != nil {
		if err := c.keys.Set(keystore.KeyAuthToken, tok); err != nil {
			return err
		}
	}
	c.token = tok
	return nil
}

// ClearToken removes the bearer token from both the transport and the
// keystore.
func (c *Client) ClearToken() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.keys != nil {
		if err := c.keys.Delete(keystore.KeyAuthToken); err != nil {
			return err
		}
	}
	c.token = ""
	return nil
}

// Token returns the current bearer token, empty when signed out.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// SetUnauthorizedHandler registers a hook invoked after any 401
// response, once the token has already been cleared.
func (c *Client) SetUnauthorizedHandler(f func()) {
	c.mu.Lock()
	c.onUnauthorized = f
	c.mu.Unlock()
}

// SetNotifier replaces the notice sink. Pass nil to drop notices.
func (c *Client) SetNotifier(n Notifier) {
	c.mu.Lock()
	c.notifier = n
	c.mu.Unlock()
}

func (c *Client) notify(n apierr.Notice) {
	c.mu.RLock()
	sink := c.notifier
	c.mu.RUnlock()
	if sink != nil {
		sink.Notify(n)
	}
}

// bearerTransport injects the Authorization header when a token is set.
type bearerTransport struct {
	base   http.RoundTripper
	source *Client
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	tok := t.source.Token()
	if tok == "" {
		return base.RoundTrip(req)
	}
	// Clone so retries and concurrent use never see a half-mutated request.
	cloned := req.Clone(req.Context())
	cloned.Header.Set("Authorization", "Bearer "+tok)
	return base.RoundTrip(cloned)
}
