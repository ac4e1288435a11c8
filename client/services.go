package client

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/pujadesk/pujadesk/client/internal/api"
)

// --------------------------------------------------------------------
// Auth operations - delegated to internal/api
// --------------------------------------------------------------------

// Login exchanges credentials for a token and profile. The token is
// not stored; the auth store decides whether to persist it.
func (c *Client) Login(ctx context.Context, creds Credentials) (*AuthPayload, error) {
	return api.Login(ctx, c.caller, creds)
}

// Register creates an account and returns the initial token and profile.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthPayload, error) {
	return api.Register(ctx, c.caller, req)
}

// Logout tells the server to drop the session.
func (c *Client) Logout(ctx context.Context) error {
	return api.Logout(ctx, c.caller)
}

// GetProfile fetches the session for the current bearer token.
func (c *Client) GetProfile(ctx context.Context) (*Session, error) {
	return api.GetProfile(ctx, c.caller)
}

// UpdateProfile patches mutable profile fields.
func (c *Client) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*Session, error) {
	return api.UpdateProfile(ctx, c.caller, req)
}

// ChangePassword rotates the account password.
func (c *Client) ChangePassword(ctx context.Context, req ChangePasswordRequest) error {
	return api.ChangePassword(ctx, c.caller, req)
}

// ForgotPassword starts a password reset for the given email.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	return api.ForgotPassword(ctx, c.caller, email)
}

// ResetPassword completes a password reset with the emailed token.
func (c *Client) ResetPassword(ctx context.Context, req ResetPasswordRequest) error {
	return api.ResetPassword(ctx, c.caller, req)
}

// --------------------------------------------------------------------
// Proposition operations - delegated to internal/api
// --------------------------------------------------------------------

// GeneratePropositions asks the backend for AI-assisted propositions.
func (c *Client) GeneratePropositions(ctx context.Context, req GenerateRequest) ([]Proposition, error) {
	return api.GeneratePropositions(ctx, c.caller, req)
}

// ListPropositions retrieves propositions matching params.
func (c *Client) ListPropositions(ctx context.Context, params ListPropositionsParams) (*ListPropositionsResponse, error) {
	return api.ListPropositions(ctx, c.caller, params)
}

// GetProposition retrieves one proposition by ID.
func (c *Client) GetProposition(ctx context.Context, id string) (*Proposition, error) {
	return api.GetProposition(ctx, c.caller, id)
}

// UpdatePropositionStatus patches the lifecycle state of one proposition.
func (c *Client) UpdatePropositionStatus(ctx context.Context, id string, status PropositionStatus) (*Proposition, error) {
	return api.UpdatePropositionStatus(ctx, c.caller, id, status)
}

// SubmitReview records a review decision with optional team notes.
func (c *Client) SubmitReview(ctx context.Context, id string, req ReviewRequest) (*Proposition, error) {
	return api.SubmitReview(ctx, c.caller, id, req)
}

// BulkUpdateStatus patches several propositions in one call.
func (c *Client) BulkUpdateStatus(ctx context.Context, req BulkStatusRequest) (int, error) {
	return api.BulkUpdateStatus(ctx, c.caller, req)
}

// GetPanchang fetches calendar data for a month; the payload is opaque.
func (c *Client) GetPanchang(ctx context.Context, month, year int) (json.RawMessage, error) {
	return api.GetPanchang(ctx, c.caller, month, year)
}

// GetFocusSuggestion fetches suggested focus themes for a month.
func (c *Client) GetFocusSuggestion(ctx context.Context, month, year int) (*FocusSuggestion, error) {
	return api.GetFocusSuggestion(ctx, c.caller, month, year)
}

// ListExperiments retrieves the running proposition experiments.
func (c *Client) ListExperiments(ctx context.Context) ([]Experiment, error) {
	return api.ListExperiments(ctx, c.caller)
}

// RequestAnalysis asks the backend to analyse a month's performance.
func (c *Client) RequestAnalysis(ctx context.Context, req AnalysisRequest) (*AnalysisResult, error) {
	return api.RequestAnalysis(ctx, c.caller, req)
}

// --------------------------------------------------------------------
// Feedback operations - delegated to internal/api
// --------------------------------------------------------------------

// SubmitFeedback records reviewer feedback for a month.
func (c *Client) SubmitFeedback(ctx context.Context, req FeedbackRequest) (*FeedbackEntry, error) {
	return api.SubmitFeedback(ctx, c.caller, req)
}

// ListFeedback retrieves feedback for a month.
func (c *Client) ListFeedback(ctx context.Context, month, year int) (*ListFeedbackResponse, error) {
	return api.ListFeedback(ctx, c.caller, month, year)
}

// GetFeedbackSummary retrieves the aggregated rating summary.
func (c *Client) GetFeedbackSummary(ctx context.Context, month, year int) (*FeedbackSummary, error) {
	return api.GetFeedbackSummary(ctx, c.caller, month, year)
}

// --------------------------------------------------------------------
// PDF operations - delegated to internal/api
// --------------------------------------------------------------------

// ProgressFunc reports upload progress as bytes sent of total.
type ProgressFunc = api.ProgressFunc

// UploadPDFs validates and uploads reference documents. Invalid sets
// are rejected before any bytes are sent.
func (c *Client) UploadPDFs(ctx context.Context, files []UploadFile, onProgress ProgressFunc) (*UploadResponse, error) {
	return api.UploadPDFs(ctx, c.caller, files, onProgress)
}

// ListPDFs retrieves the uploaded documents.
func (c *Client) ListPDFs(ctx context.Context) (*ListPDFsResponse, error) {
	return api.ListPDFs(ctx, c.caller)
}

// DeletePDF removes an uploaded document by ID.
func (c *Client) DeletePDF(ctx context.Context, id string) error {
	return api.DeletePDF(ctx, c.caller, id)
}

// --------------------------------------------------------------------
// Dashboard aggregation - delegated to internal/api
// --------------------------------------------------------------------

// GetDashboardData assembles the dashboard view model from four
// concurrent requests. Partial backend failure never fails the call;
// failed sources contribute their documented fallbacks.
func (c *Client) GetDashboardData(ctx context.Context, month, year int) (*DashboardData, error) {
	return api.GetDashboardData(ctx, c.caller, month, year)
}

// DefaultStats is the all-zero stats baseline used when stats sources fail.
func DefaultStats() Stats { return api.DefaultStats() }

// --------------------------------------------------------------------
// Raw access
// --------------------------------------------------------------------

// Do issues one JSON request against an arbitrary path and returns the
// decoded envelope. Exists for endpoints the typed surface does not
// cover yet.
func (c *Client) Do(ctx context.Context, method, path string, body any) (*Envelope, error) {
	return c.caller.DoJSON(ctx, method, path, body)
}

// Get issues a raw GET against path.
func (c *Client) Get(ctx context.Context, path string) (*Envelope, error) {
	return c.caller.DoJSON(ctx, http.MethodGet, path, nil)
}

// Post issues a raw POST against path.
func (c *Client) Post(ctx context.Context, path string, body any) (*Envelope, error) {
	return c.caller.DoJSON(ctx, http.MethodPost, path, body)
}

// Put issues a raw PUT against path.
func (c *Client) Put(ctx context.Context, path string, body any) (*Envelope, error) {
	return c.caller.DoJSON(ctx, http.MethodPut, path, body)
}

// Patch issues a raw PATCH against path.
func (c *Client) Patch(ctx context.Context, path string, body any) (*Envelope, error) {
	return c.caller.DoJSON(ctx, http.MethodPatch, path, body)
}

// Delete issues a raw DELETE against path.
func (c *Client) Delete(ctx context.Context, path string) (*Envelope, error) {
	return c.caller.DoJSON(ctx, http.MethodDelete, path, nil)
}

// Upload posts files and form fields as multipart/form-data against an
// arbitrary path. UploadPDFs is the validated, typed front for the PDF
// endpoint; this is the raw escape hatch.
func (c *Client) Upload(ctx context.Context, path string, files []UploadFile, fields map[string]string, onProgress ProgressFunc) (*Envelope, error) {
	return c.caller.Upload(ctx, path, files, fields, onProgress)
}
