package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pujadesk/pujadesk/client/internal/types"
)

// validation failures never reach the transport; they come back as a
// plain error wrapping the field map so callers can render them inline.

// ValidationError carries a failed client-side validation result.
type ValidationError struct {
	Result types.ValidationResult
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %v", e.Result.Errors)
}

// GeneratePropositions asks the backend for AI-assisted propositions.
func GeneratePropositions(ctx context.Context, c *Caller, req types.GenerateRequest) ([]types.Proposition, error) {
	if r := types.ValidateGenerateRequest(req); !r.IsValid {
		return nil, &ValidationError{Result: r}
	}
	env, err := c.DoJSON(ctx, http.MethodPost, "/puja/propositions/generate", req)
	if err != nil {
		return nil, err
	}
	var out types.ListPropositionsResponse
	if err := env.Decode(&out); err != nil {
		return nil, err
	}
	return out.Propositions, nil
}

// ListPropositions retrieves propositions matching params.
func ListPropositions(ctx context.Context, c *Caller, params types.ListPropositionsParams) (*types.ListPropositionsResponse, error) {
	q := url.Values{}
	if params.Month != 0 {
		q.Set("month", strconv.Itoa(params.Month))
	}
	if params.Year != 0 {
		q.Set("year", strconv.Itoa(params.Year))
	}
	if params.Status != "" {
		q.Set("status", string(params.Status))
	}
	if params.Deity != "" {
		q.Set("deity", params.Deity)
	}
	if params.Page != 0 {
		q.Set("page", strconv.Itoa(params.Page))
	}
	if params.Limit != 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}
	path := "/puja/propositions"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	env, err := c.DoJSON(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	var out types.ListPropositionsResponse
	if err := env.Decode(&out); err != nil {
		return nil, err
	}
	if env.Pagination != nil {
		out.Pagination = env.Pagination
	}
	if out.Total == 0 {
		out.Total = env.Total
	}
	return &out, nil
}

// GetProposition retrieves one proposition by ID.
func GetProposition(ctx context.Context, c *Caller, id string) (*types.Proposition, error) {
	env, err := c.DoJSON(ctx, http.MethodGet, "/puja/propositions/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	var p types.Proposition
	if err := env.Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdatePropositionStatus patches the lifecycle state of one proposition.
func UpdatePropositionStatus(ctx context.Context, c *Caller, id string, status types.PropositionStatus) (*types.Proposition, error) {
	if !types.ValidStatus(status) {
		r := types.ValidationResult{IsValid: false, Errors: map[string]string{"status": fmt.Sprintf("unknown status %q", status)}}
		return nil, &ValidationError{Result: r}
	}
	body := map[string]string{"status": string(status)}
	env, err := c.DoJSON(ctx, http.MethodPatch, "/puja/propositions/"+url.PathEscape(id)+"/status", body)
	if err != nil {
		return nil, err
	}
	var p types.Proposition
	if err := env.Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// SubmitReview records a review decision with optional team notes.
func SubmitReview(ctx context.Context, c *Caller, id string, req types.ReviewRequest) (*types.Proposition, error) {
	if r := types.ValidateReviewRequest(req); !r.IsValid {
		return nil, &ValidationError{Result: r}
	}
	env, err := c.DoJSON(ctx, http.MethodPost, "/puja/propositions/"+url.PathEscape(id)+"/review", req)
	if err != nil {
		return nil, err
	}
	var p types.Proposition
	if err := env.Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// BulkUpdateStatus patches several propositions in one call.
// Returns the number of propositions the server reports as updated.
func BulkUpdateStatus(ctx context.Context, c *Caller, req types.BulkStatusRequest) (int, error) {
	if r := types.ValidateBulkStatusRequest(req); !r.IsValid {
		return 0, &ValidationError{Result: r}
	}
	env, err := c.DoJSON(ctx, http.MethodPatch, "/puja/propositions/bulk-status", req)
	if err != nil {
		return 0, err
	}
	var out struct {
		Updated int `json:"updated"`
	}
	if err := env.Decode(&out); err != nil {
		return 0, err
	}
	return out.Updated, nil
}

// GetPanchang fetches calendar data for a month. The payload is opaque
// to the client and handed to the caller raw.
func GetPanchang(ctx context.Context, c *Caller, month, year int) (json.RawMessage, error) {
	if r := types.ValidateMonthYear(month, year); !r.IsValid {
		return nil, &ValidationError{Result: r}
	}
	path := fmt.Sprintf("/puja/panchang?month=%d&year=%d", month, year)
	env, err := c.DoJSON(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	return env.Data, nil
}

// GetFocusSuggestion fetches suggested focus themes for a month.
func GetFocusSuggestion(ctx context.Context, c *Caller, month, year int) (*types.FocusSuggestion, error) {
	if r := types.ValidateMonthYear(month, year); !r.IsValid {
		return nil, &ValidationError{Result: r}
	}
	path := fmt.Sprintf("/puja/focus-suggestion?month=%d&year=%d", month, year)
	env, err := c.DoJSON(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	var out types.FocusSuggestion
	if err := env.Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListExperiments retrieves the running proposition experiments.
func ListExperiments(ctx context.Context, c *Caller) ([]types.Experiment, error) {
	env, err := c.DoJSON(ctx, http.MethodGet, "/puja/experiments", nil)
	if err != nil {
		return nil, err
	}
	var out struct {
		Experiments []types.Experiment `json:"experiments"`
	}
	if err := env.Decode(&out); err != nil {
		return nil, err
	}
	return out.Experiments, nil
}

// RequestAnalysis asks the backend to analyse a month's performance.
func RequestAnalysis(ctx context.Context, c *Caller, req types.AnalysisRequest) (*types.AnalysisResult, error) {
	if r := types.ValidateMonthYear(req.Month, req.Year); !r.IsValid {
		return nil, &ValidationError{Result: r}
	}
	env, err := c.DoJSON(ctx, http.MethodPost, "/puja/analysis", req)
	if err != nil {
		return nil, err
	}
	var out types.AnalysisResult
	if err := env.Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}
