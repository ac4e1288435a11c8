package apierr

import (
	"errors"
	"fmt"
	"testing"
)

func TestClassify_Table(t *testing.T) {
	t.Parallel()
	tests := []struct {
		status   int
		wantKind NoticeKind
		wantCat  Category
	}{
		{400, NoticeValidation, Irrecoverable},
		{401, NoticeAuth, Irrecoverable},
		{403, NoticeAccessDenied, Irrecoverable},
		{404, NoticeNotFound, Irrecoverable},
		{409, NoticeConflict, Irrecoverable},
		{422, NoticeValidation, Irrecoverable},
		{429, NoticeRateLimit, Recoverable},
		{500, NoticeServerError, Recoverable},
		{503, NoticeServerError, Recoverable},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("status_%d", tt.status), func(t *testing.T) {
			e, n := Classify(tt.status, "", nil, "op")
			if n.Kind != tt.wantKind {
				t.Errorf("notice kind = %v, want %v", n.Kind, tt.wantKind)
			}
			if e.Category != tt.wantCat {
				t.Errorf("category = %v, want %v", e.Category, tt.wantCat)
			}
			if e.Status != tt.status || n.Status != tt.status {
				t.Errorf("status not carried through: err=%d notice=%d", e.Status, n.Status)
			}
		})
	}
}

func TestClassify_ServerMessageWinsForValidation(t *testing.T) {
	t.Parallel()
	e, n := Classify(400, "month must be between 1 and 12", nil, "generate")
	if n.Message != "month must be between 1 and 12" {
		t.Fatalf("notice message = %q, want server message", n.Message)
	}
	if e.Message != n.Message {
		t.Fatalf("error and notice messages diverge: %q vs %q", e.Message, n.Message)
	}
}

func TestClassify_ServerMessageIgnoredForAuth(t *testing.T) {
	t.Parallel()
	_, n := Classify(401, "token signature mismatch", nil, "list")
	if n.Message != msgSessionGone {
		t.Fatalf("401 must use the fixed session message, got %q", n.Message)
	}
}

func TestNetwork_DistinctStatusZero(t *testing.T) {
	t.Parallel()
	cause := errors.New("dial tcp: connection refused")
	e, n := Network("dashboard", cause)
	if e.Status != 0 || n.Status != 0 {
		t.Fatalf("network failures must carry status 0, got %d/%d", e.Status, n.Status)
	}
	if n.Kind != NoticeNetwork {
		t.Fatalf("kind = %v, want NoticeNetwork", n.Kind)
	}
	if !errors.Is(e, cause) {
		t.Fatal("underlying cause not reachable via errors.Is")
	}
	if IsIrrecoverable(e) {
		t.Fatal("network errors are recoverable")
	}
}

func TestStatusOf(t *testing.T) {
	t.Parallel()
	e, _ := Classify(404, "", nil, "get")
	if got := StatusOf(e); got != 404 {
		t.Fatalf("StatusOf = %d, want 404", got)
	}
	if got := StatusOf(errors.New("plain")); got != -1 {
		t.Fatalf("StatusOf(plain) = %d, want -1", got)
	}
}

func TestWrappedErrorStillClassified(t *testing.T) {
	t.Parallel()
	e, _ := Classify(403, "", nil, "review")
	wrapped := fmt.Errorf("submit review: %w", e)
	if !IsIrrecoverable(wrapped) {
		t.Fatal("classification lost through wrapping")
	}
	if StatusOf(wrapped) != 403 {
		t.Fatal("status lost through wrapping")
	}
}
