package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OneOffTransaction is a durable obligation that occurs exactly once. When a
// source account is set the occurrence expands into a mirrored double-entry
// pair.
type OneOffTransaction struct {
	ID              string
	Name            string
	Date            time.Time
	Amount          decimal.Decimal
	TargetAccountID string
	SourceAccountID *string
	CreatedAt       time.Time
}

// HasAnyTransaction reports whether the obligation's date falls in [start, end].
func (t *OneOffTransaction) HasAnyTransaction(start, end time.Time) bool {
	d := DateOf(t.Date)
	return !d.Before(DateOf(start)) && !d.After(DateOf(end))
}

// GenerateTransactions produces at most one occurrence (one or two rows).
func (t *OneOffTransaction) GenerateTransactions(start, end time.Time) []Transaction {
	if !t.HasAnyTransaction(start, end) {
		return nil
	}

	return expandPair(t.Date, t.Amount, t.TargetAccountID, t.SourceAccountID)
}
