package domain

import "time"

// calendarCells is the fixed size of a month grid: 6 rows of 7 days.
const calendarCells = 42

// CalendarDay is one cell of a month grid.
type CalendarDay struct {
	Date    time.Time `json:"date"`
	InMonth bool      `json:"inMonth"`
	Grants  []*Grant  `json:"grants,omitempty"`
}

// MonthGrid builds the 42-cell calendar grid for a month, Sunday-first,
// padded with trailing days of the previous month and leading days of
// the next. Each cell carries the grants whose deadline falls on that
// date; grants with unparseable deadlines appear nowhere.
func MonthGrid(grants []*Grant, year int, month time.Month) []CalendarDay {
	byDate := make(map[string][]*Grant)
	for _, g := range grants {
		deadline, ok := g.DeadlineTime()
		if !ok {
			continue
		}
		key := deadline.Format("2006-01-02")
		byDate[key] = append(byDate[key], g)
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	start := first.AddDate(0, 0, -int(first.Weekday()))

	days := make([]CalendarDay, 0, calendarCells)
	for i := 0; i < calendarCells; i++ {
		date := start.AddDate(0, 0, i)
		days = append(days, CalendarDay{
			Date:    date,
			InMonth: date.Month() == month,
			Grants:  byDate[date.Format("2006-01-02")],
		})
	}
	return days
}
