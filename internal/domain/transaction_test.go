package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func strPtr(s string) *string { return &s }

func TestGenerators_HasAnyMatchesGenerate(t *testing.T) {
	source := "acc-src"

	generators := []struct {
		name string
		gen  TransactionGenerator
	}{
		{
			name: "one-off inside range",
			gen: &OneOffTransaction{
				ID: "o1", Date: NewDate(2024, 2, 10),
				Amount: decimal.NewFromInt(-250), TargetAccountID: "acc-a",
			},
		},
		{
			name: "one-off outside range",
			gen: &OneOffTransaction{
				ID: "o2", Date: NewDate(2025, 2, 10),
				Amount: decimal.NewFromInt(-250), TargetAccountID: "acc-a",
			},
		},
		{
			name: "recurring monthly",
			gen: &RecurringTransaction{
				ID: "r1", Amount: decimal.NewFromInt(-100),
				Rule:            RecurrenceRule{Period: PeriodMonthly, Every: 1, Start: NewDate(2024, 1, 1)},
				TargetAccountID: "acc-a",
			},
		},
		{
			name: "recurring with unreachable anchor",
			gen: &RecurringTransaction{
				ID: "r2", Amount: decimal.NewFromInt(50),
				Rule:            RecurrenceRule{Period: PeriodYearly, Every: 1, Start: NewDate(2030, 1, 1)},
				TargetAccountID: "acc-a",
			},
		},
		{
			name: "imported in range",
			gen: &ImportedTransaction{
				ID: "i1", Date: NewDate(2024, 1, 20),
				Amount: decimal.NewFromInt(-42), AccountID: "acc-b",
			},
		},
		{
			name: "unpaid recurring wrapper",
			gen: &UnpaidRecurring{Recurring: RecurringTransaction{
				ID: "u1", Amount: decimal.NewFromInt(-700),
				Rule:            RecurrenceRule{Period: PeriodMonthly, Every: 1, Start: NewDate(2024, 1, 1)},
				TargetAccountID: "acc-a", SourceAccountID: &source,
			}},
		},
	}

	ranges := [][2]time.Time{
		{NewDate(2024, 1, 1), NewDate(2024, 3, 31)},
		{NewDate(2024, 2, 10), NewDate(2024, 2, 10)},
		{NewDate(2023, 1, 1), NewDate(2023, 12, 31)},
	}

	for _, g := range generators {
		for _, r := range ranges {
			has := g.gen.HasAnyTransaction(r[0], r[1])
			txs := g.gen.GenerateTransactions(r[0], r[1])
			if has != (len(txs) > 0) {
				t.Errorf("%s: HasAnyTransaction=%v but %d transactions in [%s, %s]",
					g.name, has, len(txs), r[0].Format("2006-01-02"), r[1].Format("2006-01-02"))
			}
		}
	}
}

func TestGenerators_DoubleEntryPairsSumToZero(t *testing.T) {
	gen := &RecurringTransaction{
		ID:              "rent",
		Amount:          decimal.NewFromInt(-1200),
		Rule:            RecurrenceRule{Period: PeriodMonthly, Every: 1, Start: NewDate(2024, 1, 1)},
		TargetAccountID: "acc-landlord",
		SourceAccountID: strPtr("acc-checking"),
	}

	txs := gen.GenerateTransactions(NewDate(2024, 1, 1), NewDate(2024, 3, 31))

	if len(txs) != 6 {
		t.Fatalf("expected 3 occurrences x 2 rows, got %d rows", len(txs))
	}

	// Every occurrence must balance independently, not just in aggregate.
	for i := 0; i < len(txs); i += 2 {
		target, source := txs[i], txs[i+1]

		if !target.Date.Equal(source.Date) {
			t.Errorf("pair %d: dates differ: %s vs %s", i/2, target.Date, source.Date)
		}
		if !target.Amount.Add(source.Amount).IsZero() {
			t.Errorf("pair %d: amounts do not sum to zero: %s + %s", i/2, target.Amount, source.Amount)
		}
		if target.AccountID != "acc-landlord" || source.AccountID != "acc-checking" {
			t.Errorf("pair %d: unexpected accounts %s/%s", i/2, target.AccountID, source.AccountID)
		}
	}
}

func TestGenerators_GenerateIsRestartable(t *testing.T) {
	gen := &RecurringTransaction{
		ID:              "salary",
		Amount:          decimal.NewFromInt(3000),
		Rule:            RecurrenceRule{Period: PeriodMonthly, Every: 1, Start: NewDate(2023, 1, 25)},
		TargetAccountID: "acc-checking",
	}

	start, end := NewDate(2024, 1, 1), NewDate(2024, 6, 30)

	first := gen.GenerateTransactions(start, end)
	second := gen.GenerateTransactions(start, end)

	if len(first) != len(second) {
		t.Fatalf("expected identical sequences, got %d and %d", len(first), len(second))
	}

	for i := range first {
		if !first[i].Date.Equal(second[i].Date) ||
			!first[i].Amount.Equal(second[i].Amount) ||
			first[i].AccountID != second[i].AccountID {
			t.Errorf("row %d differs between calls: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestNewTransaction_TruncatesToCalendarDay(t *testing.T) {
	stamp := time.Date(2024, 3, 15, 17, 42, 3, 0, time.FixedZone("CET", 3600))
	tx := NewTransaction(stamp, decimal.NewFromInt(10), "acc-a")

	if !tx.Date.Equal(NewDate(2024, 3, 15)) {
		t.Fatalf("expected date truncated to 2024-03-15 UTC, got %s", tx.Date)
	}
}
