package domain

import "time"

// Grant represents a single grant-funding opportunity.
//
// Grants are read-only for the lifetime of a session: they are loaded
// from the catalog file and never mutated. All user state (bookmarks,
// folders, application statuses) lives outside the Grant itself and is
// keyed by Grant.ID.
type Grant struct {
	// ─────────────────────────────
	// Identity (immutable)
	// ─────────────────────────────

	// ID is the canonical unique identifier of the opportunity.
	// Example: stem-innovation-2026
	ID string `json:"id"`

	// ─────────────────────────────
	// Descriptive fields
	// ─────────────────────────────

	// Title is the display name of the grant.
	Title string `json:"title"`

	// Description is the free-text summary shown on cards and exports.
	Description string `json:"description"`

	// Category is the funding category.
	// Example: STEM, Arts, Literacy
	Category string `json:"category"`

	// FundingSource names the organization offering the grant.
	FundingSource string `json:"fundingSource"`

	// ApplicationLink is the external URL of the application form.
	ApplicationLink string `json:"applicationLink"`

	// ─────────────────────────────
	// Funding & timing
	// ─────────────────────────────

	// Amount is the funding value in whole currency units. Never negative.
	Amount float64 `json:"amount"`

	// Deadline is the application deadline as a date-parsable string.
	// Malformed values are tolerated: such grants stay visible but are
	// excluded from every date-bounded filter.
	Deadline string `json:"deadline"`

	// Eligibility is the ordered list of eligibility tags.
	// Example: Elementary, Title I
	Eligibility []string `json:"eligibility"`
}

// deadlineLayouts are tried in order when parsing Grant.Deadline.
var deadlineLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"January 2, 2006",
	"01/02/2006",
}

// DeadlineTime parses the grant deadline. The second return value is
// false when the deadline string cannot be interpreted as a date.
func (g *Grant) DeadlineTime() (time.Time, bool) {
	return ParseDeadline(g.Deadline)
}

// ParseDeadline parses a deadline string against the supported layouts.
func ParseDeadline(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range deadlineLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
