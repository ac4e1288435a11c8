package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pujadesk/pujadesk/client/internal/types"
)

// SubmitFeedback records reviewer feedback for a month.
func SubmitFeedback(ctx context.Context, c *Caller, req types.FeedbackRequest) (*types.FeedbackEntry, error) {
	if r := types.ValidateFeedbackRequest(req); !r.IsValid {
		return nil, &ValidationError{Result: r}
	}
	env, err := c.DoJSON(ctx, http.MethodPost, "/feedback", req)
	if err != nil {
		return nil, err
	}
	var entry types.FeedbackEntry
	if err := env.Decode(&entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListFeedback retrieves feedback for a month.
func ListFeedback(ctx context.Context, c *Caller, month, year int) (*types.ListFeedbackResponse, error) {
	if r := types.ValidateMonthYear(month, year); !r.IsValid {
		return nil, &ValidationError{Result: r}
	}
	path := fmt.Sprintf("/feedback?month=%d&year=%d", month, year)
	env, err := c.DoJSON(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	var out types.ListFeedbackResponse
	if err := env.Decode(&out); err != nil {
		return nil, err
	}
	if out.Total == 0 {
		out.Total = env.Total
	}
	return &out, nil
}

// GetFeedbackSummary retrieves the aggregated rating summary.
func GetFeedbackSummary(ctx context.Context, c *Caller, month, year int) (*types.FeedbackSummary, error) {
	if r := types.ValidateMonthYear(month, year); !r.IsValid {
		return nil, &ValidationError{Result: r}
	}
	path := fmt.Sprintf("/feedback/summary?month=%d&year=%d", month, year)
	env, err := c.DoJSON(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	var out types.FeedbackSummary
	if err := env.Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}
