package forecast

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/cashflow/internal/domain"
)

func TestTabulate_EmptyGeneratorList(t *testing.T) {
	table, err := Tabulate(nil, domain.NewDate(2024, 1, 1), domain.NewDate(2024, 12, 31))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if table.Len() != 0 {
		t.Fatalf("expected empty table, got %d rows", table.Len())
	}
}

func TestTabulate_RejectsInvertedRange(t *testing.T) {
	calls := 0
	gen := &countingGenerator{calls: &calls}

	_, err := Tabulate([]domain.TransactionGenerator{gen}, domain.NewDate(2024, 2, 1), domain.NewDate(2024, 1, 1))
	if !errors.Is(err, domain.ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}

	if calls != 0 {
		t.Fatalf("expected no generator invocation on an inverted range, got %d", calls)
	}
}

func TestTabulate_ChronologicalWithStableTies(t *testing.T) {
	day := domain.NewDate(2024, 3, 1)
	earlier := domain.NewDate(2024, 2, 1)

	first := &domain.ImportedTransaction{ID: "i1", Date: day, Amount: decimal.NewFromInt(1), AccountID: "acc-a"}
	second := &domain.ImportedTransaction{ID: "i2", Date: earlier, Amount: decimal.NewFromInt(2), AccountID: "acc-a"}
	third := &domain.ImportedTransaction{ID: "i3", Date: day, Amount: decimal.NewFromInt(3), AccountID: "acc-b"}

	table, err := Tabulate(
		[]domain.TransactionGenerator{first, second, third},
		domain.NewDate(2024, 1, 1), domain.NewDate(2024, 12, 31),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows := table.Rows()
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	// Earlier date first; the two same-date rows keep generator-list order.
	if !rows[0].Amount.Equal(decimal.NewFromInt(2)) {
		t.Errorf("expected the earlier transaction first, got amount %s", rows[0].Amount)
	}
	if !rows[1].Amount.Equal(decimal.NewFromInt(1)) || !rows[2].Amount.Equal(decimal.NewFromInt(3)) {
		t.Errorf("expected stable tie order 1 then 3, got %s then %s", rows[1].Amount, rows[2].Amount)
	}
}

func TestTabulate_IsPure(t *testing.T) {
	gen := &domain.RecurringTransaction{
		ID:              "r1",
		Amount:          decimal.NewFromInt(-100),
		Rule:            domain.RecurrenceRule{Period: domain.PeriodMonthly, Every: 1, Start: domain.NewDate(2024, 1, 1)},
		TargetAccountID: "acc-a",
	}

	start, end := domain.NewDate(2024, 1, 1), domain.NewDate(2024, 6, 30)

	first, err := Tabulate([]domain.TransactionGenerator{gen}, start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Tabulate([]domain.TransactionGenerator{gen}, start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.Len() != second.Len() {
		t.Fatalf("expected identical tables, got %d and %d rows", first.Len(), second.Len())
	}

	for i := range first.Rows() {
		a, b := first.Rows()[i], second.Rows()[i]
		if !a.Date.Equal(b.Date) || !a.Amount.Equal(b.Amount) || a.AccountID != b.AccountID {
			t.Errorf("row %d differs between calls: %+v vs %+v", i, a, b)
		}
	}
}

func TestTable_Accounts(t *testing.T) {
	table, err := Tabulate([]domain.TransactionGenerator{
		&domain.ImportedTransaction{ID: "i1", Date: domain.NewDate(2024, 1, 5), Amount: decimal.NewFromInt(1), AccountID: "acc-b"},
		&domain.ImportedTransaction{ID: "i2", Date: domain.NewDate(2024, 1, 6), Amount: decimal.NewFromInt(1), AccountID: "acc-a"},
		&domain.ImportedTransaction{ID: "i3", Date: domain.NewDate(2024, 1, 7), Amount: decimal.NewFromInt(1), AccountID: "acc-b"},
	}, domain.NewDate(2024, 1, 1), domain.NewDate(2024, 1, 31))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	accounts := table.Accounts()
	if len(accounts) != 2 || accounts[0] != "acc-a" || accounts[1] != "acc-b" {
		t.Fatalf("expected sorted distinct accounts [acc-a acc-b], got %v", accounts)
	}
}

type countingGenerator struct {
	calls *int
}

func (g *countingGenerator) HasAnyTransaction(start, end time.Time) bool {
	*g.calls++
	return false
}

func (g *countingGenerator) GenerateTransactions(start, end time.Time) []domain.Transaction {
	*g.calls++
	return nil
}
