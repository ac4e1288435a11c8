package client

import "github.com/pujadesk/pujadesk/client/internal/types"

// Public aliases so SDK consumers never import internal packages.

type (
	Role              = types.Role
	Session           = types.Session
	PropositionStatus = types.PropositionStatus
	Proposition       = types.Proposition
	FeedbackEntry     = types.FeedbackEntry
	PDFDocument       = types.PDFDocument
	ActivityItem      = types.ActivityItem
	UpcomingPuja      = types.UpcomingPuja

	Credentials           = types.Credentials
	RegisterRequest       = types.RegisterRequest
	UpdateProfileRequest  = types.UpdateProfileRequest
	ChangePasswordRequest = types.ChangePasswordRequest
	ResetPasswordRequest  = types.ResetPasswordRequest
	GenerateRequest       = types.GenerateRequest
	ListPropositionsParams = types.ListPropositionsParams
	ReviewRequest         = types.ReviewRequest
	BulkStatusRequest     = types.BulkStatusRequest
	FeedbackRequest       = types.FeedbackRequest
	AnalysisRequest       = types.AnalysisRequest
	UploadFile            = types.UploadFile

	Envelope                 = types.Envelope
	Pagination               = types.Pagination
	AuthPayload              = types.AuthPayload
	ListPropositionsResponse = types.ListPropositionsResponse
	ListFeedbackResponse     = types.ListFeedbackResponse
	FeedbackSummary          = types.FeedbackSummary
	ListPDFsResponse         = types.ListPDFsResponse
	UploadResponse           = types.UploadResponse
	FocusSuggestion          = types.FocusSuggestion
	Experiment               = types.Experiment
	AnalysisResult           = types.AnalysisResult
	Stats                    = types.Stats
	QuickStats               = types.QuickStats
	DashboardData            = types.DashboardData

	ValidationResult = types.ValidationResult
)

// Role and status constants, re-exported.
const (
	RoleAdmin  = types.RoleAdmin
	RoleEditor = types.RoleEditor
	RoleUser   = types.RoleUser

	StatusPendingReview = types.StatusPendingReview
	StatusApproved      = types.StatusApproved
	StatusRejected      = types.StatusRejected
	StatusNeedsRevision = types.StatusNeedsRevision
	StatusInProgress    = types.StatusInProgress
	StatusCompleted     = types.StatusCompleted
)

// Validation helpers, re-exported for form-level use.
var (
	ValidateMonthYear       = types.ValidateMonthYear
	ValidateGenerateRequest = types.ValidateGenerateRequest
	ValidatePDFUpload       = types.ValidatePDFUpload
)
