package domain

import (
	"fmt"
	"time"
)

// RecurrencePeriod is the unit a recurrence rule steps by.
type RecurrencePeriod string

const (
	PeriodDaily      RecurrencePeriod = "daily"
	PeriodWeekly     RecurrencePeriod = "weekly"
	PeriodWorkDay    RecurrencePeriod = "workday" // Monday-Friday
	PeriodMonthly    RecurrencePeriod = "monthly"
	PeriodQuarterly  RecurrencePeriod = "quarterly"
	PeriodHalfYearly RecurrencePeriod = "halfyearly"
	PeriodYearly     RecurrencePeriod = "yearly"
)

// Valid reports whether p is a known period.
func (p RecurrencePeriod) Valid() bool {
	switch p {
	case PeriodDaily, PeriodWeekly, PeriodWorkDay, PeriodMonthly,
		PeriodQuarterly, PeriodHalfYearly, PeriodYearly:
		return true
	}

	return false
}

// monthsPerUnit returns the month span of one period unit, or 0 for day-based
// periods.
func (p RecurrencePeriod) monthsPerUnit() int {
	switch p {
	case PeriodMonthly:
		return 1
	case PeriodQuarterly:
		return 3
	case PeriodHalfYearly:
		return 6
	case PeriodYearly:
		return 12
	}

	return 0
}

// RecurrenceRule describes how an obligation repeats: a period unit, an
// interval multiplier, the anchor date of the first occurrence, and an
// optional date of the last occurrence.
type RecurrenceRule struct {
	Period RecurrencePeriod
	Every  int
	Start  time.Time
	End    *time.Time
}

// Validate reports configuration errors in the rule. A malformed rule must be
// rejected when the obligation is created, never silently substituted.
func (r RecurrenceRule) Validate() error {
	if !r.Period.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownPeriod, r.Period)
	}

	if r.Every < 1 {
		return fmt.Errorf("%w: every=%d", ErrInvalidRecurrence, r.Every)
	}

	return nil
}

// HasOccurrence reports whether the rule produces at least one occurrence in
// [start, end]. Equivalent to Occurrences(start, end) being non-empty, but
// stops at the first hit.
func (r RecurrenceRule) HasOccurrence(start, end time.Time) bool {
	return len(r.occurrences(start, end, 1)) > 0
}

// Occurrences expands the rule over [start, end] in ascending date order. An
// unsatisfiable rule yields nothing; that is never an error.
func (r RecurrenceRule) Occurrences(start, end time.Time) []time.Time {
	return r.occurrences(start, end, 0)
}

// occurrences expands up to max occurrences (max <= 0 means all). Rules are
// validated at the obligation boundary; an invalid rule degrades to an empty
// expansion here.
func (r RecurrenceRule) occurrences(start, end time.Time, max int) []time.Time {
	if r.Validate() != nil {
		return nil
	}

	start = DateOf(start)
	end = DateOf(end)
	if start.After(end) {
		return nil
	}

	anchor := DateOf(r.Start)
	if anchor.After(end) {
		return nil
	}

	effEnd := end
	if r.End != nil {
		if last := DateOf(*r.End); last.Before(effEnd) {
			effEnd = last
		}
	}

	effStart := start
	if anchor.After(effStart) {
		effStart = anchor
	}

	if effStart.After(effEnd) {
		return nil
	}

	if months := r.Period.monthsPerUnit(); months > 0 {
		return r.monthOccurrences(anchor, effStart, effEnd, months*r.Every, max)
	}

	switch r.Period {
	case PeriodDaily:
		return r.dayOccurrences(anchor, effStart, effEnd, r.Every, max)
	case PeriodWeekly:
		return r.dayOccurrences(anchor, effStart, effEnd, 7*r.Every, max)
	case PeriodWorkDay:
		return r.workdayOccurrences(anchor, effStart, effEnd, max)
	}

	return nil
}

// dayOccurrences emits every step-th day counted from the anchor. The first
// occurrence on or after effStart is computed directly, not by stepping from
// the anchor.
func (r RecurrenceRule) dayOccurrences(anchor, effStart, effEnd time.Time, step, max int) []time.Time {
	diff := daysBetween(anchor, effStart)
	k := diff / step
	if diff%step != 0 {
		k++
	}

	var out []time.Time
	for d := anchor.AddDate(0, 0, k*step); !d.After(effEnd); d = d.AddDate(0, 0, step) {
		out = append(out, d)
		if max > 0 && len(out) >= max {
			break
		}
	}

	return out
}

// workdayOccurrences emits every Every-th Monday-Friday day counted from the
// anchor. The workday index is computed arithmetically per candidate day, so
// only days inside the requested window are visited.
func (r RecurrenceRule) workdayOccurrences(anchor, effStart, effEnd time.Time, max int) []time.Time {
	var out []time.Time
	for d := effStart; !d.After(effEnd); d = d.AddDate(0, 0, 1) {
		if !isWorkday(d) {
			continue
		}

		idx := countWorkdays(anchor, d) - 1
		if idx%r.Every != 0 {
			continue
		}

		out = append(out, d)
		if max > 0 && len(out) >= max {
			break
		}
	}

	return out
}

// monthOccurrences emits the anchor's day-of-month every stepMonths months.
// A month that lacks that day (January 31st stepping into February) produces
// no occurrence for that period.
func (r RecurrenceRule) monthOccurrences(anchor, effStart, effEnd time.Time, stepMonths, max int) []time.Time {
	months := monthsBetween(anchor, effStart)
	k := months / stepMonths
	if months%stepMonths != 0 {
		k++
	}

	var out []time.Time
	for ; ; k++ {
		year, month := monthAdd(anchor.Year(), anchor.Month(), k*stepMonths)
		if NewDate(year, month, 1).After(effEnd) {
			break
		}

		d, ok := exactDate(year, month, anchor.Day())
		if !ok || d.Before(effStart) || d.After(effEnd) {
			continue
		}

		out = append(out, d)
		if max > 0 && len(out) >= max {
			break
		}
	}

	return out
}

func monthsBetween(a, b time.Time) int {
	return (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
}

func monthAdd(year int, month time.Month, months int) (int, time.Month) {
	m := int(month) - 1 + months
	y := year + m/12
	m %= 12
	if m < 0 {
		m += 12
		y--
	}

	return y, time.Month(m + 1)
}

// exactDate builds the given calendar day without normalization; it reports
// false when the day does not exist in that month.
func exactDate(year int, month time.Month, day int) (time.Time, bool) {
	d := NewDate(year, month, day)
	if d.Month() != month || d.Day() != day {
		return time.Time{}, false
	}

	return d, true
}
