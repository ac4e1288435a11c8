package types

import "encoding/json"

// ------------------------------
// Response Types
// ------------------------------

// Pagination mirrors the backend pagination block.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// Envelope is the JSON wrapper every backend response follows.
// Data is left raw so each API module can decode its own payload.
type Envelope struct {
	Success    bool            `json:"success"`
	Data       json.RawMessage `json:"data,omitempty"`
	Error      string          `json:"error,omitempty"`
	Total      int             `json:"total,omitempty"`
	Pagination *Pagination     `json:"pagination,omitempty"`
}

// Decode unmarshals the envelope's data payload into v.
func (e *Envelope) Decode(v any) error {
	if len(e.Data) == 0 {
		return nil
	}
	return json.Unmarshal(e.Data, v)
}

// AuthPayload is the data block of login and register responses.
type AuthPayload struct {
	Token string  `json:"token"`
	User  Session `json:"user"`
}

// ListPropositionsResponse mirrors the proposition list shape.
type ListPropositionsResponse struct {
	Propositions []Proposition `json:"propositions"`
	Total        int           `json:"total"`
	Pagination   *Pagination   `json:"pagination,omitempty"`
}

// ListFeedbackResponse mirrors the feedback list shape.
type ListFeedbackResponse struct {
	Feedback []FeedbackEntry `json:"feedback"`
	Total    int             `json:"total"`
}

// FeedbackSummary aggregates ratings for a month.
type FeedbackSummary struct {
	Month         int     `json:"month"`
	Year          int     `json:"year"`
	Count         int     `json:"count"`
	AverageRating float64 `json:"averageRating"`
}

// ListPDFsResponse mirrors the PDF list shape.
type ListPDFsResponse struct {
	Documents []PDFDocument `json:"documents"`
	Count     int           `json:"count"`
}

// UploadResponse acknowledges a multipart upload.
type UploadResponse struct {
	Documents []PDFDocument `json:"documents"`
	Count     int           `json:"count"`
}

// FocusSuggestion is the backend's suggested monthly focus themes.
type FocusSuggestion struct {
	Themes    []string `json:"themes"`
	Rationale string   `json:"rationale,omitempty"`
}

// Experiment is one entry of the experiments list.
type Experiment struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Hypothesis string  `json:"hypothesis,omitempty"`
	Status     string  `json:"status"`
	Lift       float64 `json:"lift,omitempty"`
}

// AnalysisResult is the backend's performance analysis for a month.
type AnalysisResult struct {
	Month    int      `json:"month"`
	Year     int      `json:"year"`
	Summary  string   `json:"summary"`
	Insights []string `json:"insights,omitempty"`
}

// ------------------------------
// Dashboard
// ------------------------------

// Stats is the merged dashboard stats object. It stays schemaless
// because the stats and performance-metrics endpoints overlap and the
// merge is last-write-wins per key.
type Stats map[string]any

// QuickStats holds the small derived numbers the dashboard header shows.
type QuickStats struct {
	ThisMonth     int   `json:"thisMonth"`
	TopPerformers []any `json:"topPerformers"`
}

// DashboardData is the merged view model assembled from up to four
// independent partial responses.
type DashboardData struct {
	Stats          Stats          `json:"stats"`
	RecentActivity []ActivityItem `json:"recentActivity"`
	UpcomingPujas  []UpcomingPuja `json:"upcomingPujas"`
	QuickStats     QuickStats     `json:"quickStats"`
}
