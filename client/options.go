package client

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file makes it easy to
// discover all available knobs at a glance.

import (
	"fmt"
	"time"

	"github.com/pujadesk/pujadesk/keystore"
)

// Option configures a Client during construction in New.
//
// Options are applied before the bearer transport wrapper is installed,
// so transport-related options (like debug logging) end up underneath
// it. Options must be deterministic and side-effect free.
type Option func(*Client) error

// WithHTTPTimeout overrides the configured http.Client timeout.
//
// Prefer per-request context deadlines where possible; this timeout is
// a coarse safety net bounding the total time spent on a single HTTP
// request. The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithKeystore attaches the durable store that mirrors the bearer
// token. A token already persisted there is adopted on construction.
func WithKeystore(ks *keystore.Store) Option {
	return func(c *Client) error {
		if ks == nil {
			return fmt.Errorf("keystore must not be nil")
		}
		c.keys = ks
		return nil
	}
}

// WithNotifier wires the sink that receives a Notice for every
// transport failure. Without one, failures are still returned as
// errors but nothing is surfaced to the user.
func WithNotifier(n Notifier) Option {
	return func(c *Client) error {
		c.notifier = n
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each
// request/response is logged when enabled is true.
//
// Do not enable this in production environments: dumps include headers
// and bodies.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			c.http.Transport = &debugTransport{base: c.http.Transport}
		}
		return nil
	}
}
