package forecast

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/cashflow/internal/domain"
)

// MergeMethod selects how multiple balance series combine into one.
type MergeMethod string

const (
	// MergeSum adds the series pointwise over the union of their dates,
	// forward-filling each input's last known balance across gaps.
	MergeSum MergeMethod = "sum"
	// MergeOverride takes, at each date, the value of the last-listed series
	// that explicitly defines that date.
	MergeOverride MergeMethod = "override"
)

// ParseMergeMethod resolves a configured method name. An unrecognized name is
// a configuration error surfaced to the caller, never silently defaulted.
func ParseMergeMethod(s string) (MergeMethod, error) {
	switch MergeMethod(strings.ToLower(strings.TrimSpace(s))) {
	case MergeSum:
		return MergeSum, nil
	case MergeOverride:
		return MergeOverride, nil
	}

	return "", fmt.Errorf("%w: %q", domain.ErrUnknownMergeMethod, s)
}

// MergeCalculator combines per-account series sets from multiple calculators
// into one final set.
type MergeCalculator struct {
	method MergeMethod
}

// NewMergeCalculator creates a MergeCalculator for the given method.
func NewMergeCalculator(method MergeMethod) *MergeCalculator {
	return &MergeCalculator{method: method}
}

// Merge combines the sets in list order. Sum is order-insensitive; Override
// gives later-listed sets precedence. Merging a single set is the identity.
func (c *MergeCalculator) Merge(sets []SeriesSet) (SeriesSet, error) {
	switch c.method {
	case MergeSum, MergeOverride:
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownMergeMethod, c.method)
	}

	if len(sets) == 0 {
		return SeriesSet{}, nil
	}

	accounts := make(map[string]struct{})
	for _, set := range sets {
		for id := range set {
			accounts[id] = struct{}{}
		}
	}

	out := make(SeriesSet, len(accounts))
	for id := range accounts {
		inputs := make([]Series, 0, len(sets))
		for _, set := range sets {
			if s, ok := set[id]; ok {
				inputs = append(inputs, s)
			}
		}
		out[id] = c.mergeSeries(inputs)
	}

	return out, nil
}

// mergeSeries reindexes the inputs onto the union of their dates and combines
// them per the configured method.
func (c *MergeCalculator) mergeSeries(inputs []Series) Series {
	if len(inputs) == 1 {
		return inputs[0]
	}

	dates := unionDates(inputs)
	merged := make(Series, 0, len(dates))

	for _, date := range dates {
		var balance decimal.Decimal

		switch c.method {
		case MergeSum:
			total := decimal.Zero
			for _, s := range inputs {
				if v, ok := s.valueAt(date); ok {
					total = total.Add(v)
				}
			}
			balance = total

		case MergeOverride:
			// Explicit points win; among those, the last-listed series does.
			for i := len(inputs) - 1; i >= 0; i-- {
				if v, ok := inputs[i].definedAt(date); ok {
					balance = v
					break
				}
			}
		}

		merged = append(merged, Point{Date: date, Balance: balance})
	}

	return merged
}

func unionDates(inputs []Series) []time.Time {
	seen := make(map[time.Time]struct{})
	for _, s := range inputs {
		for _, p := range s {
			seen[p.Date] = struct{}{}
		}
	}

	dates := make([]time.Time, 0, len(seen))
	for d := range seen {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	return dates
}
