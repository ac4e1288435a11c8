package types

import "io"

// ------------------------------
// Request Types
// ------------------------------

// Credentials carries a login attempt.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest carries a new-account registration.
type RegisterRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest patches mutable profile fields.
type UpdateProfileRequest struct {
	FullName  string `json:"fullName,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// ChangePasswordRequest rotates the account password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// ResetPasswordRequest completes a forgot-password flow.
type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

// GenerateRequest asks the backend for AI-assisted propositions
// covering the given dates.
type GenerateRequest struct {
	Month        int      `json:"month"`
	Year         int      `json:"year"`
	Dates        []string `json:"dates"`
	FocusThemes  []string `json:"focusThemes,omitempty"`
	Instructions string   `json:"instructions,omitempty"`
}

// ListPropositionsParams filters the proposition list endpoint.
// Zero values are omitted from the query string.
type ListPropositionsParams struct {
	Month  int
	Year   int
	Status PropositionStatus
	Deity  string
	Page   int
	Limit  int
}

// ReviewRequest records a review decision on one proposition.
type ReviewRequest struct {
	Status    PropositionStatus `json:"status"`
	TeamNotes string            `json:"teamNotes,omitempty"`
}

// BulkStatusRequest patches the status of several propositions at once.
type BulkStatusRequest struct {
	IDs    []string          `json:"ids"`
	Status PropositionStatus `json:"status"`
}

// FeedbackRequest submits reviewer feedback.
type FeedbackRequest struct {
	PropositionID string `json:"propositionId,omitempty"`
	Month         int    `json:"month"`
	Year          int    `json:"year"`
	Rating        int    `json:"rating"`
	Comments      string `json:"comments,omitempty"`
}

// AnalysisRequest asks the backend to analyse performance for a month.
type AnalysisRequest struct {
	Month int    `json:"month"`
	Year  int    `json:"year"`
	Focus string `json:"focus,omitempty"`
}

// UploadFile is one file in a multipart upload. Size is validated
// client-side before any bytes are read from Content.
type UploadFile struct {
	Name    string
	Size    int64
	Content io.Reader
}
