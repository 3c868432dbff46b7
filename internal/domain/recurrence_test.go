package domain

import (
	"errors"
	"testing"
	"time"
)

func datePtr(t time.Time) *time.Time { return &t }

func TestRecurrenceRule_Validate(t *testing.T) {
	tests := []struct {
		name        string
		rule        RecurrenceRule
		expectedErr error
	}{
		{
			name: "valid monthly rule",
			rule: RecurrenceRule{Period: PeriodMonthly, Every: 1, Start: NewDate(2024, 1, 1)},
		},
		{
			name: "valid quarterly with multiplier",
			rule: RecurrenceRule{Period: PeriodQuarterly, Every: 2, Start: NewDate(2024, 1, 1)},
		},
		{
			name:        "zero interval",
			rule:        RecurrenceRule{Period: PeriodDaily, Every: 0, Start: NewDate(2024, 1, 1)},
			expectedErr: ErrInvalidRecurrence,
		},
		{
			name:        "negative interval",
			rule:        RecurrenceRule{Period: PeriodWeekly, Every: -3, Start: NewDate(2024, 1, 1)},
			expectedErr: ErrInvalidRecurrence,
		},
		{
			name:        "unknown period",
			rule:        RecurrenceRule{Period: "fortnightly", Every: 1, Start: NewDate(2024, 1, 1)},
			expectedErr: ErrUnknownPeriod,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rule.Validate()
			if tt.expectedErr != nil {
				if err == nil || !errors.Is(err, tt.expectedErr) {
					t.Fatalf("expected error %v, got %v", tt.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestRecurrenceRule_Occurrences(t *testing.T) {
	tests := []struct {
		name  string
		rule  RecurrenceRule
		start time.Time
		end   time.Time
		want  []time.Time
	}{
		{
			name:  "monthly anchored at range start",
			rule:  RecurrenceRule{Period: PeriodMonthly, Every: 1, Start: NewDate(2024, 1, 1)},
			start: NewDate(2024, 1, 1),
			end:   NewDate(2024, 3, 31),
			want:  []time.Time{NewDate(2024, 1, 1), NewDate(2024, 2, 1), NewDate(2024, 3, 1)},
		},
		{
			name:  "monthly skips months without the anchor day",
			rule:  RecurrenceRule{Period: PeriodMonthly, Every: 1, Start: NewDate(2024, 1, 31)},
			start: NewDate(2024, 1, 1),
			end:   NewDate(2024, 4, 30),
			want:  []time.Time{NewDate(2024, 1, 31), NewDate(2024, 3, 31)},
		},
		{
			name:  "monthly with old anchor jumps into range",
			rule:  RecurrenceRule{Period: PeriodMonthly, Every: 1, Start: NewDate(1999, 6, 15)},
			start: NewDate(2024, 1, 1),
			end:   NewDate(2024, 2, 29),
			want:  []time.Time{NewDate(2024, 1, 15), NewDate(2024, 2, 15)},
		},
		{
			name:  "every second month counts from anchor",
			rule:  RecurrenceRule{Period: PeriodMonthly, Every: 2, Start: NewDate(2024, 1, 10)},
			start: NewDate(2024, 2, 1),
			end:   NewDate(2024, 6, 30),
			want:  []time.Time{NewDate(2024, 3, 10), NewDate(2024, 5, 10)},
		},
		{
			name:  "quarterly",
			rule:  RecurrenceRule{Period: PeriodQuarterly, Every: 1, Start: NewDate(2024, 2, 1)},
			start: NewDate(2024, 1, 1),
			end:   NewDate(2024, 12, 31),
			want:  []time.Time{NewDate(2024, 2, 1), NewDate(2024, 5, 1), NewDate(2024, 8, 1), NewDate(2024, 11, 1)},
		},
		{
			name:  "half-yearly",
			rule:  RecurrenceRule{Period: PeriodHalfYearly, Every: 1, Start: NewDate(2023, 3, 1)},
			start: NewDate(2024, 1, 1),
			end:   NewDate(2024, 12, 31),
			want:  []time.Time{NewDate(2024, 3, 1), NewDate(2024, 9, 1)},
		},
		{
			name:  "yearly",
			rule:  RecurrenceRule{Period: PeriodYearly, Every: 1, Start: NewDate(2020, 7, 4)},
			start: NewDate(2023, 1, 1),
			end:   NewDate(2025, 12, 31),
			want:  []time.Time{NewDate(2023, 7, 4), NewDate(2024, 7, 4), NewDate(2025, 7, 4)},
		},
		{
			name:  "daily every third day",
			rule:  RecurrenceRule{Period: PeriodDaily, Every: 3, Start: NewDate(2024, 1, 1)},
			start: NewDate(2024, 1, 2),
			end:   NewDate(2024, 1, 11),
			want:  []time.Time{NewDate(2024, 1, 4), NewDate(2024, 1, 7), NewDate(2024, 1, 10)},
		},
		{
			name:  "weekly keeps the anchor weekday",
			rule:  RecurrenceRule{Period: PeriodWeekly, Every: 1, Start: NewDate(2024, 1, 3)}, // Wednesday
			start: NewDate(2024, 1, 8),
			end:   NewDate(2024, 1, 31),
			want:  []time.Time{NewDate(2024, 1, 10), NewDate(2024, 1, 17), NewDate(2024, 1, 24), NewDate(2024, 1, 31)},
		},
		{
			name:  "workdays skip the weekend",
			rule:  RecurrenceRule{Period: PeriodWorkDay, Every: 1, Start: NewDate(2024, 1, 1)},
			start: NewDate(2024, 1, 4), // Thursday
			end:   NewDate(2024, 1, 9), // Tuesday
			want:  []time.Time{NewDate(2024, 1, 4), NewDate(2024, 1, 5), NewDate(2024, 1, 8), NewDate(2024, 1, 9)},
		},
		{
			name:  "rule end date caps the expansion",
			rule:  RecurrenceRule{Period: PeriodMonthly, Every: 1, Start: NewDate(2024, 1, 1), End: datePtr(NewDate(2024, 2, 15))},
			start: NewDate(2024, 1, 1),
			end:   NewDate(2024, 12, 31),
			want:  []time.Time{NewDate(2024, 1, 1), NewDate(2024, 2, 1)},
		},
		{
			name:  "anchor after range yields nothing",
			rule:  RecurrenceRule{Period: PeriodMonthly, Every: 1, Start: NewDate(2025, 1, 1)},
			start: NewDate(2024, 1, 1),
			end:   NewDate(2024, 12, 31),
			want:  nil,
		},
		{
			name:  "rule ended before range yields nothing",
			rule:  RecurrenceRule{Period: PeriodMonthly, Every: 1, Start: NewDate(2020, 1, 1), End: datePtr(NewDate(2022, 1, 1))},
			start: NewDate(2024, 1, 1),
			end:   NewDate(2024, 12, 31),
			want:  nil,
		},
		{
			name:  "inverted range yields nothing",
			rule:  RecurrenceRule{Period: PeriodDaily, Every: 1, Start: NewDate(2024, 1, 1)},
			start: NewDate(2024, 2, 1),
			end:   NewDate(2024, 1, 1),
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.rule.Occurrences(tt.start, tt.end)

			if len(got) != len(tt.want) {
				t.Fatalf("expected %d occurrences, got %d: %v", len(tt.want), len(got), got)
			}

			for i := range got {
				if !got[i].Equal(tt.want[i]) {
					t.Errorf("occurrence %d: expected %s, got %s", i, tt.want[i], got[i])
				}
			}
		})
	}
}

func TestRecurrenceRule_HasOccurrenceMatchesExpansion(t *testing.T) {
	rules := []RecurrenceRule{
		{Period: PeriodDaily, Every: 1, Start: NewDate(2024, 1, 1)},
		{Period: PeriodDaily, Every: 5, Start: NewDate(2023, 12, 30)},
		{Period: PeriodWeekly, Every: 2, Start: NewDate(2024, 1, 6)},
		{Period: PeriodWorkDay, Every: 1, Start: NewDate(2024, 1, 1)},
		{Period: PeriodMonthly, Every: 1, Start: NewDate(2024, 1, 31)},
		{Period: PeriodQuarterly, Every: 1, Start: NewDate(2023, 11, 30)},
		{Period: PeriodHalfYearly, Every: 3, Start: NewDate(2010, 2, 28)},
		{Period: PeriodYearly, Every: 1, Start: NewDate(2024, 2, 29)},
		{Period: PeriodMonthly, Every: 1, Start: NewDate(2025, 6, 1)},
	}

	ranges := [][2]time.Time{
		{NewDate(2024, 1, 1), NewDate(2024, 1, 1)},
		{NewDate(2024, 1, 1), NewDate(2024, 3, 31)},
		{NewDate(2024, 2, 2), NewDate(2024, 2, 27)},
		{NewDate(2024, 6, 1), NewDate(2026, 5, 31)},
	}

	for _, rule := range rules {
		for _, r := range ranges {
			has := rule.HasOccurrence(r[0], r[1])
			n := len(rule.Occurrences(r[0], r[1]))
			if has != (n > 0) {
				t.Errorf("rule %+v range [%s, %s]: HasOccurrence=%v but %d occurrences",
					rule, r[0].Format("2006-01-02"), r[1].Format("2006-01-02"), has, n)
			}
		}
	}
}

func TestRecurrenceRule_OccurrencesAreDeterministic(t *testing.T) {
	rule := RecurrenceRule{Period: PeriodWeekly, Every: 2, Start: NewDate(2023, 5, 8)}
	start, end := NewDate(2024, 1, 1), NewDate(2024, 6, 30)

	first := rule.Occurrences(start, end)
	second := rule.Occurrences(start, end)

	if len(first) != len(second) {
		t.Fatalf("expected identical expansions, got %d and %d occurrences", len(first), len(second))
	}

	for i := range first {
		if !first[i].Equal(second[i]) {
			t.Errorf("occurrence %d differs between runs: %s vs %s", i, first[i], second[i])
		}
	}
}
