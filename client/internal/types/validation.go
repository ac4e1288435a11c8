package types

import (
	"fmt"
	"strings"
)

// Bounds enforced before a request ever reaches the transport. The
// server re-validates; these only exist so forms can render per-field
// messages without a round-trip.
const (
	MinYear = 2020
	MaxYear = 2030

	MaxPDFSizeBytes = 10 << 20 // 10 MB
	MaxPDFCount     = 5

	MinRating = 1
	MaxRating = 5
)

// ValidationResult maps field names to messages. It is returned by
// value and never as an error: invalid input is expected form state,
// not a failure.
type ValidationResult struct {
	IsValid bool
	Errors  map[string]string
}

func newResult() ValidationResult {
	return ValidationResult{IsValid: true, Errors: map[string]string{}}
}

func (r *ValidationResult) fail(field, msg string) {
	r.IsValid = false
	r.Errors[field] = msg
}

// ValidateMonthYear checks the shared month/year filter bounds.
func ValidateMonthYear(month, year int) ValidationResult {
	r := newResult()
	if month < 1 || month > 12 {
		r.fail("month", "month must be between 1 and 12")
	}
	if year < MinYear || year > MaxYear {
		r.fail("year", fmt.Sprintf("year must be between %d and %d", MinYear, MaxYear))
	}
	return r
}

// ValidateGenerateRequest checks a generation request before submission.
func ValidateGenerateRequest(req GenerateRequest) ValidationResult {
	r := ValidateMonthYear(req.Month, req.Year)
	if len(req.Dates) == 0 {
		r.fail("dates", "at least one date is required")
	}
	return r
}

// ValidateReviewRequest checks a review decision.
func ValidateReviewRequest(req ReviewRequest) ValidationResult {
	r := newResult()
	if !ValidStatus(req.Status) {
		r.fail("status", fmt.Sprintf("unknown status %q", req.Status))
	}
	return r
}

// ValidateBulkStatusRequest checks a bulk status patch.
func ValidateBulkStatusRequest(req BulkStatusRequest) ValidationResult {
	r := newResult()
	if len(req.IDs) == 0 {
		r.fail("ids", "no propositions selected")
	}
	if !ValidStatus(req.Status) {
		r.fail("status", fmt.Sprintf("unknown status %q", req.Status))
	}
	return r
}

// ValidateFeedbackRequest checks reviewer feedback.
func ValidateFeedbackRequest(req FeedbackRequest) ValidationResult {
	r := ValidateMonthYear(req.Month, req.Year)
	if req.Rating < MinRating || req.Rating > MaxRating {
		r.fail("rating", fmt.Sprintf("rating must be between %d and %d", MinRating, MaxRating))
	}
	return r
}

// ValidatePDFUpload checks file constraints before any bytes are sent.
// Type is judged by extension only; the server inspects content.
func ValidatePDFUpload(files []UploadFile) ValidationResult {
	r := newResult()
	if len(files) == 0 {
		r.fail("files", "at least one file is required")
		return r
	}
	if len(files) > MaxPDFCount {
		r.fail("files", fmt.Sprintf("Maximum %d files allowed", MaxPDFCount))
		return r
	}
	for i, f := range files {
		field := fmt.Sprintf("files[%d]", i)
		if !strings.EqualFold(ext(f.Name), ".pdf") {
			r.fail(field, fmt.Sprintf("%s is not a PDF file", f.Name))
			continue
		}
		if f.Size > MaxPDFSizeBytes {
			r.fail(field, fmt.Sprintf("%s exceeds the 10 MB limit", f.Name))
		}
	}
	return r
}

func ext(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i:]
	}
	return ""
}
