package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecurringTransaction is a durable obligation that repeats on a recurrence
// rule. The amount applies per occurrence: positive for income, negative for
// an expense. TrackSettlement marks obligations whose occurrences are
// reconciled individually; those also feed the unpaid-recurring adjustment.
type RecurringTransaction struct {
	ID              string
	Name            string
	Amount          decimal.Decimal
	Rule            RecurrenceRule
	TargetAccountID string
	SourceAccountID *string
	TrackSettlement bool
	CreatedAt       time.Time
}

// HasAnyTransaction reports whether the rule has an occurrence in [start, end].
func (t *RecurringTransaction) HasAnyTransaction(start, end time.Time) bool {
	return t.Rule.HasOccurrence(start, end)
}

// GenerateTransactions expands every occurrence in [start, end] into its
// double-entry rows, in occurrence order.
func (t *RecurringTransaction) GenerateTransactions(start, end time.Time) []Transaction {
	var txs []Transaction
	for _, d := range t.Rule.Occurrences(start, end) {
		txs = append(txs, expandPair(d, t.Amount, t.TargetAccountID, t.SourceAccountID)...)
	}

	return txs
}
