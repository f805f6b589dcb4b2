package domain

import (
	"math"
	"time"
)

// UrgentWindowDays is the deadline horizon, in days, under which a
// grant counts as urgent.
const UrgentWindowDays = 7

// midnight truncates a timestamp to the start of its calendar day.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysUntil returns the number of whole calendar days from now until
// the deadline, comparing midnight-normalized dates in the deadline's
// location. A deadline on the current day yields 0, yesterday yields
// -1, tomorrow yields 1.
// Both midnights share a location, so the difference is a whole number
// of days; rounding absorbs the odd 23h or 25h DST day.
func DaysUntil(deadline, now time.Time) int {
	d := midnight(deadline).Sub(midnight(now.In(deadline.Location())))
	return int(math.Round(d.Hours() / 24))
}

// IsExpired reports whether the deadline has passed. A deadline falling
// on the current day is NOT expired.
func IsExpired(deadline, now time.Time) bool {
	return DaysUntil(deadline, now) < 0
}

// IsUrgent reports whether the deadline falls within the urgent window:
// strictly in the future and at most UrgentWindowDays away. A deadline
// due today is excluded (DaysUntil must be positive).
func IsUrgent(deadline, now time.Time) bool {
	days := DaysUntil(deadline, now)
	return days >= 1 && days <= UrgentWindowDays
}
