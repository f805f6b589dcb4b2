package domain

import (
	"sort"
	"strings"
	"time"
)

// Result is one page of engine output plus the totals the caller needs
// for page-count computation.
type Result struct {
	Grants     []*Grant `json:"grants"`
	Total      int      `json:"total"`
	Page       int      `json:"page"`
	TotalPages int      `json:"totalPages"`
}

// SelectGrants deterministically computes the visible, ordered,
// paginated grant list from the full grant collection and the current
// query state. It is a pure function: it never mutates its inputs and
// reads no clock; callers inject now so results are reproducible.
//
// The pipeline applies, in order: free-text search, tab/folder scope,
// structured filters, stable sort, pagination.
func SelectGrants(
	grants []*Grant,
	bookmarkedIDs []string,
	folders []*BookmarkFolder,
	statuses map[string]ApplicationStatus,
	q Query,
	now time.Time,
) Result {
	bookmarked := make(map[string]struct{}, len(bookmarkedIDs))
	for _, id := range bookmarkedIDs {
		bookmarked[id] = struct{}{}
	}

	matched := make([]*Grant, 0, len(grants))
	search := strings.ToLower(strings.TrimSpace(q.Search))
	for _, g := range grants {
		if search != "" && !matchesSearch(g, search) {
			continue
		}
		if !inScope(g, q, bookmarked, folders) {
			continue
		}
		if !matchesFilters(g, q.Filters, bookmarked, statuses, now) {
			continue
		}
		matched = append(matched, g)
	}

	sortGrants(matched, q.Sort)

	return paginate(matched, q.Page, q.PageSize)
}

// matchesSearch checks the lowercase query against title, description,
// funding source and category.
func matchesSearch(g *Grant, search string) bool {
	return strings.Contains(strings.ToLower(g.Title), search) ||
		strings.Contains(strings.ToLower(g.Description), search) ||
		strings.Contains(strings.ToLower(g.FundingSource), search) ||
		strings.Contains(strings.ToLower(g.Category), search)
}

// inScope applies the tab/folder scope. On the bookmarked tab a
// specific folder restricts membership to that folder's grant ids; a
// missing folder yields no matches.
func inScope(g *Grant, q Query, bookmarked map[string]struct{}, folders []*BookmarkFolder) bool {
	if q.Tab != TabBookmarked {
		return true
	}
	if q.FolderID == "" || q.FolderID == DefaultFolderID {
		_, ok := bookmarked[g.ID]
		return ok
	}
	for _, f := range folders {
		if f.ID == q.FolderID {
			return f.Contains(g.ID)
		}
	}
	return false
}

func matchesFilters(
	g *Grant,
	f Filters,
	bookmarked map[string]struct{},
	statuses map[string]ApplicationStatus,
	now time.Time,
) bool {
	if f.Category != "" && g.Category != f.Category {
		return false
	}

	if f.Eligibility != "" && !matchesEligibility(g, f.Eligibility) {
		return false
	}

	if f.MinAmount != nil && g.Amount < *f.MinAmount {
		return false
	}
	if f.MaxAmount != nil && g.Amount > *f.MaxAmount {
		return false
	}

	// Date-bounded filters: grants with unparseable deadlines are
	// excluded whenever a date filter is active, and pass otherwise.
	deadline, hasDeadline := g.DeadlineTime()

	if f.DeadlineDays != nil && *f.DeadlineDays > 0 {
		if !hasDeadline {
			return false
		}
		days := DaysUntil(deadline, now)
		if days < 1 || days > *f.DeadlineDays {
			return false
		}
	}

	if f.HideExpired {
		if !hasDeadline || IsExpired(deadline, now) {
			return false
		}
	}

	if f.UrgentOnly {
		if !hasDeadline || !IsUrgent(deadline, now) {
			return false
		}
	}

	if f.BookmarkedOnly {
		if _, ok := bookmarked[g.ID]; !ok {
			return false
		}
	}

	if f.Status != nil && ResolveStatus(statuses, g.ID) != *f.Status {
		return false
	}

	return true
}

func matchesEligibility(g *Grant, value string) bool {
	value = strings.ToLower(value)
	for _, tag := range g.Eligibility {
		if strings.Contains(strings.ToLower(tag), value) {
			return true
		}
	}
	return false
}

// sortGrants orders the slice in place. Sorting is stable: ties keep
// catalog order. Grants with unparseable deadlines sort after every
// dated grant under both deadline orders.
func sortGrants(grants []*Grant, opt SortOption) {
	switch opt {
	case SortDeadlineAsc, SortDeadlineDesc, "":
		desc := opt == SortDeadlineDesc
		sort.SliceStable(grants, func(i, j int) bool {
			ti, oki := grants[i].DeadlineTime()
			tj, okj := grants[j].DeadlineTime()
			if oki != okj {
				return oki // dated before undated
			}
			if !oki {
				return false
			}
			if desc {
				return ti.After(tj)
			}
			return ti.Before(tj)
		})
	case SortAmountAsc:
		sort.SliceStable(grants, func(i, j int) bool { return grants[i].Amount < grants[j].Amount })
	case SortAmountDesc:
		sort.SliceStable(grants, func(i, j int) bool { return grants[i].Amount > grants[j].Amount })
	case SortTitleAsc:
		sort.SliceStable(grants, func(i, j int) bool { return lessTitle(grants[i].Title, grants[j].Title) })
	case SortTitleDesc:
		sort.SliceStable(grants, func(i, j int) bool { return lessTitle(grants[j].Title, grants[i].Title) })
	}
}

// lessTitle compares titles case-insensitively, falling back to the
// raw strings so the order stays total.
func lessTitle(a, b string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	if la != lb {
		return la < lb
	}
	return a < b
}

// paginate slices the matched set into fixed-size pages. Pages are
// 1-based; a page past the end yields an empty slice, never an error.
func paginate(matched []*Grant, page, pageSize int) Result {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}

	total := len(matched)
	totalPages := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	out := make([]*Grant, end-start)
	copy(out, matched[start:end])

	return Result{
		Grants:     out,
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
	}
}
