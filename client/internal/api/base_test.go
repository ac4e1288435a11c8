package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/pujadesk/pujadesk/client/internal/apierr"
)

func TestDoJSON_StatusPolicyTable(t *testing.T) {
	t.Parallel()
	tests := []struct {
		status   int
		wantKind apierr.NoticeKind
	}{
		{400, apierr.NoticeValidation},
		{401, apierr.NoticeAuth},
		{403, apierr.NoticeAccessDenied},
		{404, apierr.NoticeNotFound},
		{409, apierr.NoticeConflict},
		{422, apierr.NoticeValidation},
		{429, apierr.NoticeRateLimit},
		{500, apierr.NoticeServerError},
		{503, apierr.NoticeServerError},
	}
	for _, tt := range tests {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeError(w, tt.status, "boom")
		}))
		c, rec := newTestCaller(srv)

		_, err := c.DoJSON(context.Background(), http.MethodGet, "/x", nil)
		srv.Close()
		if err == nil {
			t.Fatalf("status %d: expected error", tt.status)
		}
		if got := apierr.StatusOf(err); got != tt.status {
			t.Errorf("status %d: StatusOf = %d", tt.status, got)
		}
		notices := rec.all()
		if len(notices) != 1 {
			t.Fatalf("status %d: %d notices, want exactly 1", tt.status, len(notices))
		}
		if notices[0].Kind != tt.wantKind {
			t.Errorf("status %d: notice kind = %v, want %v", tt.status, notices[0].Kind, tt.wantKind)
		}
	}
}

func TestDoJSON_NetworkFailureStatusZero(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // connection refused from here on
	c, rec := newTestCaller(srv)
	c.HTTP = http.DefaultClient

	_, err := c.DoJSON(context.Background(), http.MethodGet, "/x", nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if got := apierr.StatusOf(err); got != 0 {
		t.Fatalf("StatusOf = %d, want 0", got)
	}
	notices := rec.all()
	if len(notices) != 1 || notices[0].Kind != apierr.NoticeNetwork {
		t.Fatalf("notices = %+v, want one network notice", notices)
	}
}

func TestDoJSON_UnauthorizedHookFires(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusUnauthorized, "expired")
	}))
	defer srv.Close()
	c, _ := newTestCaller(srv)
	fired := false
	c.OnUnauthorized = func() { fired = true }

	_, err := c.DoJSON(context.Background(), http.MethodGet, "/x", nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if !fired {
		t.Fatal("OnUnauthorized hook did not fire")
	}
}

func TestDoJSON_UnauthorizedHookOnlyFor401(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusForbidden, "nope")
	}))
	defer srv.Close()
	c, _ := newTestCaller(srv)
	fired := false
	c.OnUnauthorized = func() { fired = true }

	if _, err := c.DoJSON(context.Background(), http.MethodGet, "/x", nil); err == nil {
		t.Fatal("expected error")
	}
	if fired {
		t.Fatal("OnUnauthorized must not fire for 403")
	}
}

func TestDoJSON_SuccessEnvelope(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("missing content type on body-carrying request")
		}
		writeEnvelope(w, http.StatusOK, map[string]string{"hello": "world"})
	}))
	defer srv.Close()
	c, rec := newTestCaller(srv)

	env, err := c.DoJSON(context.Background(), http.MethodPost, "/x", map[string]int{"a": 1})
	if err != nil {
		t.Fatalf("DoJSON error: %v", err)
	}
	var out map[string]string
	if err := env.Decode(&out); err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if out["hello"] != "world" {
		t.Fatalf("decoded %v", out)
	}
	if len(rec.all()) != 0 {
		t.Fatal("success must not emit notices")
	}
}

func TestDoJSON_NonEnvelopeErrorBody(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>upstream dead</html>"))
	}))
	defer srv.Close()
	c, rec := newTestCaller(srv)

	_, err := c.DoJSON(context.Background(), http.MethodGet, "/x", nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if got := apierr.StatusOf(err); got != http.StatusBadGateway {
		t.Fatalf("StatusOf = %d", got)
	}
	if n := rec.all(); len(n) != 1 || n[0].Kind != apierr.NoticeServerError {
		t.Fatalf("notices = %+v", n)
	}
}

func TestRequestsCounterIncludesErrorStatuses(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusBadGateway, "down")
	}))
	defer srv.Close()
	c, _ := newTestCaller(srv)

	// No other test in the package sends a PUT to a 5xx backend, so
	// this label series belongs to this test alone.
	before := testutil.ToFloat64(requestsTotal.WithLabelValues(http.MethodPut, "5xx"))
	if _, err := c.DoJSON(context.Background(), http.MethodPut, "/x", nil); err == nil {
		t.Fatal("expected error")
	}
	after := testutil.ToFloat64(requestsTotal.WithLabelValues(http.MethodPut, "5xx"))
	if after != before+1 {
		t.Fatalf("5xx request counter delta = %v, want 1", after-before)
	}
}

func TestDoJSON_CancelledContext(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()
	c, rec := newTestCaller(srv)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := c.DoJSON(ctx, http.MethodGet, "/x", nil); err != context.Canceled {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if len(rec.all()) != 0 {
		t.Fatal("cancellation must not emit notices")
	}
}
