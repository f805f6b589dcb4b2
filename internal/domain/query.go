package domain

// SortOption selects the ordering applied by the query engine.
type SortOption string

const (
	SortDeadlineAsc  SortOption = "deadline-asc"
	SortDeadlineDesc SortOption = "deadline-desc"
	SortAmountAsc    SortOption = "amount-asc"
	SortAmountDesc   SortOption = "amount-desc"
	SortTitleAsc     SortOption = "title-asc"
	SortTitleDesc    SortOption = "title-desc"
)

// DefaultSort is applied when no sort option has been chosen.
const DefaultSort = SortDeadlineAsc

// ParseSortOption validates a raw sort option string.
func ParseSortOption(s string) (SortOption, bool) {
	switch SortOption(s) {
	case SortDeadlineAsc, SortDeadlineDesc, SortAmountAsc, SortAmountDesc, SortTitleAsc, SortTitleDesc:
		return SortOption(s), true
	}
	return "", false
}

// Tab selects the grant scope of a query.
type Tab string

const (
	TabAll        Tab = "all"
	TabBookmarked Tab = "bookmarked"
)

// Filters is the structured filter set of a query. Every field is
// independently optional; the zero value of each field means "unset"
// and imposes no constraint. Set fields AND together.
//
// Unset is expressed through the type system (empty string, nil
// pointer, false) rather than a magic "all" sentinel, so "filter
// absent" can never collide with a literal filter value.
type Filters struct {
	// Category keeps grants whose category matches exactly.
	Category string `json:"category,omitempty"`

	// Eligibility keeps grants where any eligibility entry contains
	// the value, case-insensitively.
	Eligibility string `json:"eligibility,omitempty"`

	// MinAmount / MaxAmount are inclusive bounds on Grant.Amount.
	MinAmount *float64 `json:"minAmount,omitempty"`
	MaxAmount *float64 `json:"maxAmount,omitempty"`

	// DeadlineDays keeps grants due strictly after today and within N
	// days inclusive (1 <= DaysUntil <= N). Nil or non-positive means
	// unset.
	DeadlineDays *int `json:"deadlineDays,omitempty"`

	// HideExpired drops grants whose deadline has passed. A deadline
	// due today is kept.
	HideExpired bool `json:"hideExpired,omitempty"`

	// BookmarkedOnly keeps grants in the global bookmark set.
	BookmarkedOnly bool `json:"bookmarkedOnly,omitempty"`

	// UrgentOnly keeps grants due within the urgent window (1..7 days).
	UrgentOnly bool `json:"urgentOnly,omitempty"`

	// Status keeps grants whose resolved application status matches.
	// Grants without a recorded status resolve to StatusNotStarted.
	Status *ApplicationStatus `json:"status,omitempty"`
}

// DefaultPageSize is the fixed number of grants per result page.
const DefaultPageSize = 9

// Query is the full transient query state driving the engine.
type Query struct {
	// Search is the free-text search string. Whitespace-only values
	// are a no-op.
	Search string

	// Tab scopes the query to all grants or to bookmarks.
	Tab Tab

	// FolderID narrows a bookmarked-tab query to one folder. Empty or
	// DefaultFolderID means the whole bookmark set. Ignored when Tab
	// is TabAll.
	FolderID string

	Filters Filters

	Sort SortOption

	// Page is 1-based. Values below 1 are treated as 1.
	Page int

	// PageSize overrides DefaultPageSize when positive.
	PageSize int
}
