package domain

import "time"

// DateOf truncates t to its calendar day at UTC midnight. All dates flowing
// through the engine are normalized this way so they compare and hash cleanly.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// NewDate returns the UTC midnight time for the given calendar day.
func NewDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the number of whole days from a to b. Negative when b is
// before a. Both arguments are assumed to be day-normalized.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

func isWorkday(t time.Time) bool {
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// countWorkdays returns the number of Monday-Friday days in [from, to],
// computed arithmetically so callers never walk day by day from the anchor.
func countWorkdays(from, to time.Time) int {
	if to.Before(from) {
		return 0
	}

	days := daysBetween(from, to) + 1
	count := (days / 7) * 5

	rem := days % 7
	wd := int(from.Weekday())
	for i := 0; i < rem; i++ {
		d := time.Weekday((wd + i) % 7)
		if d != time.Saturday && d != time.Sunday {
			count++
		}
	}

	return count
}
