package types

import "time"

// ------------------------------
// Core Domain Entities
// ------------------------------

// Role is the coarse permission level attached to a session.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
	RoleUser   Role = "user"
)

// Session represents the signed-in user as known to the client.
// Offline is true only when the session was synthesized from stored
// token claims because the profile endpoint was unreachable.
type Session struct {
	UserID    string `json:"userId"`
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	AvatarURL string `json:"avatarUrl,omitempty"`
	Offline   bool   `json:"-"`
}

// PropositionStatus is the review lifecycle state of a proposition.
type PropositionStatus string

const (
	StatusPendingReview PropositionStatus = "pending_review"
	StatusApproved      PropositionStatus = "approved"
	StatusRejected      PropositionStatus = "rejected"
	StatusNeedsRevision PropositionStatus = "needs_revision"
	StatusInProgress    PropositionStatus = "in_progress"
	StatusCompleted     PropositionStatus = "completed"
)

// ValidStatus reports whether s is one of the known lifecycle states.
func ValidStatus(s PropositionStatus) bool {
	switch s {
	case StatusPendingReview, StatusApproved, StatusRejected,
		StatusNeedsRevision, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Proposition is the client-side view of one AI-suggested puja item.
// The server owns the record; the client reads and patches it and
// re-fetches to resync.
type Proposition struct {
	ID               string            `json:"id"`
	Date             string            `json:"date"`
	Deity            string            `json:"deity"`
	UseCase          string            `json:"useCase"`
	Status           PropositionStatus `json:"status"`
	PerformanceScore *float64          `json:"performanceScore,omitempty"`
	Taglines         []string          `json:"taglines"`
	Rationale        string            `json:"rationale"`
	TeamNotes        string            `json:"teamNotes,omitempty"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        time.Time         `json:"updatedAt"`
}

// FeedbackEntry is one piece of reviewer feedback for a month of
// propositions.
type FeedbackEntry struct {
	ID            string    `json:"id"`
	PropositionID string    `json:"propositionId,omitempty"`
	Month         int       `json:"month"`
	Year          int       `json:"year"`
	Rating        int       `json:"rating"`
	Comments      string    `json:"comments,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// PDFDocument describes an uploaded reference document.
type PDFDocument struct {
	ID         string    `json:"id"`
	FileName   string    `json:"fileName"`
	SizeBytes  int64     `json:"sizeBytes"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// ActivityItem is one row of the dashboard recent-activity feed.
type ActivityItem struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// UpcomingPuja is one row of the dashboard upcoming-pujas panel.
type UpcomingPuja struct {
	ID    string `json:"id"`
	Date  string `json:"date"`
	Deity string `json:"deity"`
	Name  string `json:"name"`
}
