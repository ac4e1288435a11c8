package client

import (
	"context"
	"time"

	backoff "github.com/cenkalti/backoff/v4"

	"github.com/pujadesk/pujadesk/client/internal/apierr"
)

// Retry re-issues op with exponential backoff until it succeeds, the
// attempt budget runs out, or ctx is cancelled. It is opt-in per call
// site and only retries failures a fresh attempt could fix: responses
// with status >= 500. Everything else, 4xx included, fails on the
// first attempt.
func Retry(ctx context.Context, maxAttempts int, op func(context.Context) error) error {
	if maxAttempts <= 0 {
		maxAttempts = 3
	}

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = 200 * time.Millisecond
	exp.Multiplier = 2
	exp.MaxInterval = 10 * time.Second
	exp.Reset()

	var err error
	for attempt := 1; ; attempt++ {
		err = op(ctx)
		if err == nil {
			return nil
		}
		if !retryable(err) || attempt >= maxAttempts {
			return err
		}
		retriesTotal.Inc()
		select {
		case <-time.After(exp.NextBackOff()):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Retry runs op with the attempt budget from the client configuration
// (PUJADESK_RETRY_MAX_ATTEMPTS, default 3).
func (c *Client) Retry(ctx context.Context, op func(context.Context) error) error {
	return Retry(ctx, c.retryMax, op)
}

// retryable limits the helper to server-side failures.
func retryable(err error) bool {
	e, ok := apierr.AsError(err)
	return ok && e.Status >= 500
}
