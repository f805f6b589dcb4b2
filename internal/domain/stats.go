package domain

import (
	"math"
	"sort"
	"time"
)

// CategoryStat aggregates grants per funding category.
type CategoryStat struct {
	Name          string  `json:"name"`
	Count         int     `json:"count"`
	Bookmarked    int     `json:"bookmarked"`
	TotalAmount   float64 `json:"totalAmount"`
	AverageAmount float64 `json:"averageAmount"`
}

// CategoryStats aggregates the full catalog per category. Results are
// sorted by category name for deterministic output.
func CategoryStats(grants []*Grant, bookmarkedIDs []string) []CategoryStat {
	bookmarked := make(map[string]struct{}, len(bookmarkedIDs))
	for _, id := range bookmarkedIDs {
		bookmarked[id] = struct{}{}
	}

	byName := make(map[string]*CategoryStat)
	for _, g := range grants {
		stat, ok := byName[g.Category]
		if !ok {
			stat = &CategoryStat{Name: g.Category}
			byName[g.Category] = stat
		}
		stat.Count++
		stat.TotalAmount += g.Amount
		if _, ok := bookmarked[g.ID]; ok {
			stat.Bookmarked++
		}
	}

	out := make([]CategoryStat, 0, len(byName))
	for _, stat := range byName {
		stat.AverageAmount = math.Round(stat.TotalAmount / float64(stat.Count))
		out = append(out, *stat)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// StatusCount is one entry of the application-status summary.
type StatusCount struct {
	Status ApplicationStatus `json:"status"`
	Count  int               `json:"count"`
}

// StatusCounts tallies resolved statuses over the bookmarked grants,
// one entry per status in AllStatuses order.
func StatusCounts(grants []*Grant, bookmarkedIDs []string, statuses map[string]ApplicationStatus) []StatusCount {
	bookmarked := make(map[string]struct{}, len(bookmarkedIDs))
	for _, id := range bookmarkedIDs {
		bookmarked[id] = struct{}{}
	}

	counts := make(map[ApplicationStatus]int, len(AllStatuses))
	for _, g := range grants {
		if _, ok := bookmarked[g.ID]; !ok {
			continue
		}
		counts[ResolveStatus(statuses, g.ID)]++
	}

	out := make([]StatusCount, 0, len(AllStatuses))
	for _, status := range AllStatuses {
		out = append(out, StatusCount{Status: status, Count: counts[status]})
	}
	return out
}

// Deadline bucket names, ordered from most to least pressing.
const (
	BucketThisWeek  = "This Week"
	BucketThisMonth = "This Month"
	BucketLater     = "Later"
	BucketExpired   = "Expired"
)

// DeadlineBucket is one entry of the deadline-horizon summary.
type DeadlineBucket struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// DeadlineBuckets groups bookmarked grants by deadline horizon relative
// to now: expired, due within 7 days, due within 30 days, or later.
// Grants with unparseable deadlines are skipped.
func DeadlineBuckets(grants []*Grant, bookmarkedIDs []string, now time.Time) []DeadlineBucket {
	bookmarked := make(map[string]struct{}, len(bookmarkedIDs))
	for _, id := range bookmarkedIDs {
		bookmarked[id] = struct{}{}
	}

	counts := map[string]int{}
	for _, g := range grants {
		if _, ok := bookmarked[g.ID]; !ok {
			continue
		}
		deadline, ok := g.DeadlineTime()
		if !ok {
			continue
		}
		switch days := DaysUntil(deadline, now); {
		case days < 0:
			counts[BucketExpired]++
		case days <= 7:
			counts[BucketThisWeek]++
		case days <= 30:
			counts[BucketThisMonth]++
		default:
			counts[BucketLater]++
		}
	}

	return []DeadlineBucket{
		{Name: BucketThisWeek, Count: counts[BucketThisWeek]},
		{Name: BucketThisMonth, Count: counts[BucketThisMonth]},
		{Name: BucketLater, Count: counts[BucketLater]},
		{Name: BucketExpired, Count: counts[BucketExpired]},
	}
}
