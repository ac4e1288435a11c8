package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRetry_RecoversAfterServerErrors(t *testing.T) {
	t.Parallel()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		envelopeOK(w)
	}))
	defer srv.Close()
	c := New(Config{BaseURL: srv.URL})

	err := Retry(context.Background(), 5, func(ctx context.Context) error {
		_, err := c.Do(ctx, http.MethodGet, "/x", nil)
		return err
	})
	require.NoError(t, err)
	require.EqualValues(t, 3, hits.Load())
}

func TestRetry_NeverRetriesClientErrors(t *testing.T) {
	t.Parallel()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()
	c := New(Config{BaseURL: srv.URL})

	err := Retry(context.Background(), 5, func(ctx context.Context) error {
		_, err := c.Do(ctx, http.MethodGet, "/x", nil)
		return err
	})
	require.Error(t, err)
	require.EqualValues(t, 1, hits.Load(), "4xx must fail on the first attempt")
}

func TestRetry_ExhaustsBudget(t *testing.T) {
	t.Parallel()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()
	c := New(Config{BaseURL: srv.URL})

	err := Retry(context.Background(), 3, func(ctx context.Context) error {
		_, err := c.Do(ctx, http.MethodGet, "/x", nil)
		return err
	})
	require.Error(t, err)
	require.EqualValues(t, 3, hits.Load())
	require.Equal(t, http.StatusBadGateway, StatusOf(err))
}

func TestClientRetry_UsesConfiguredBudget(t *testing.T) {
	t.Parallel()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) < 4 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		envelopeOK(w)
	}))
	defer srv.Close()

	// Budget of 2 gives up before the server recovers.
	small := New(Config{BaseURL: srv.URL, RetryMaxAttempts: 2})
	err := small.Retry(context.Background(), func(ctx context.Context) error {
		_, err := small.Do(ctx, http.MethodGet, "/x", nil)
		return err
	})
	require.Error(t, err)
	require.EqualValues(t, 2, hits.Load())

	// Budget of 4 reaches the recovered attempt.
	hits.Store(0)
	big := New(Config{BaseURL: srv.URL, RetryMaxAttempts: 4})
	err = big.Retry(context.Background(), func(ctx context.Context) error {
		_, err := big.Do(ctx, http.MethodGet, "/x", nil)
		return err
	})
	require.NoError(t, err)
	require.EqualValues(t, 4, hits.Load())
}

func TestRetry_PlainErrorsNotRetried(t *testing.T) {
	t.Parallel()
	calls := 0
	err := Retry(context.Background(), 5, func(ctx context.Context) error {
		calls++
		return context.DeadlineExceeded
	})
	require.Error(t, err)
	require.Equal(t, 1, calls)
}
