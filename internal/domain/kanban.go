package domain

// KanbanColumn is one status column of the application board.
type KanbanColumn struct {
	Status ApplicationStatus `json:"status"`
	Grants []*Grant          `json:"grants"`
}

// BuildBoard arranges the bookmarked grants into one column per
// application status, columns in AllStatuses order and grants in
// catalog order within each column.
func BuildBoard(grants []*Grant, bookmarkedIDs []string, statuses map[string]ApplicationStatus) []KanbanColumn {
	bookmarked := make(map[string]struct{}, len(bookmarkedIDs))
	for _, id := range bookmarkedIDs {
		bookmarked[id] = struct{}{}
	}

	byStatus := make(map[ApplicationStatus][]*Grant, len(AllStatuses))
	for _, g := range grants {
		if _, ok := bookmarked[g.ID]; !ok {
			continue
		}
		status := ResolveStatus(statuses, g.ID)
		byStatus[status] = append(byStatus[status], g)
	}

	columns := make([]KanbanColumn, 0, len(AllStatuses))
	for _, status := range AllStatuses {
		grantsInColumn := byStatus[status]
		if grantsInColumn == nil {
			grantsInColumn = []*Grant{}
		}
		columns = append(columns, KanbanColumn{Status: status, Grants: grantsInColumn})
	}
	return columns
}
