package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pujadesk/pujadesk/client/internal/types"
)

func TestSubmitFeedback_Success(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/feedback" {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		writeEnvelope(w, http.StatusCreated, types.FeedbackEntry{ID: "f1", Rating: 4})
	}))
	defer srv.Close()
	c, _ := newTestCaller(srv)

	entry, err := SubmitFeedback(context.Background(), c, types.FeedbackRequest{Month: 5, Year: 2024, Rating: 4})
	if err != nil || entry.ID != "f1" {
		t.Fatalf("SubmitFeedback: %+v %v", entry, err)
	}
}

func TestSubmitFeedback_RatingValidated(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()
	c, _ := newTestCaller(srv)

	_, err := SubmitFeedback(context.Background(), c, types.FeedbackRequest{Month: 5, Year: 2024, Rating: 9})
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("err = %v, want *ValidationError", err)
	}
}

func TestGetFeedbackSummary(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, types.FeedbackSummary{Month: 5, Year: 2024, Count: 3, AverageRating: 4.3})
	}))
	defer srv.Close()
	c, _ := newTestCaller(srv)

	sum, err := GetFeedbackSummary(context.Background(), c, 5, 2024)
	if err != nil || sum.Count != 3 {
		t.Fatalf("GetFeedbackSummary: %+v %v", sum, err)
	}
}
