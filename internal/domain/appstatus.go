package domain

// ApplicationStatus tracks the user's progress toward applying for a
// bookmarked grant. A grant with no recorded status resolves to
// StatusNotStarted everywhere (engine, exports, kanban, statistics).
type ApplicationStatus string

const (
	StatusNotStarted ApplicationStatus = "Not Started"
	StatusInProgress ApplicationStatus = "In Progress"
	StatusApplied    ApplicationStatus = "Applied"
	StatusAwarded    ApplicationStatus = "Awarded"
	StatusRejected   ApplicationStatus = "Rejected"
)

// AllStatuses lists every status in display order. Kanban columns and
// status summaries iterate this slice so output ordering is stable.
var AllStatuses = []ApplicationStatus{
	StatusNotStarted,
	StatusInProgress,
	StatusApplied,
	StatusAwarded,
	StatusRejected,
}

// ParseStatus validates a raw status string.
func ParseStatus(s string) (ApplicationStatus, bool) {
	for _, status := range AllStatuses {
		if string(status) == s {
			return status, true
		}
	}
	return "", false
}

// ResolveStatus returns the recorded status for a grant id, defaulting
// to StatusNotStarted when no entry exists.
func ResolveStatus(statuses map[string]ApplicationStatus, grantID string) ApplicationStatus {
	if status, ok := statuses[grantID]; ok {
		return status
	}
	return StatusNotStarted
}
