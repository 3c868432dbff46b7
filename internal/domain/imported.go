package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ImportedTransaction is an already-dated record from a bank import.
// Generation is a pass-through: the record yields itself when its date falls
// in range.
type ImportedTransaction struct {
	ID        string
	Date      time.Time
	Amount    decimal.Decimal
	AccountID string
	Reference string
	CreatedAt time.Time
}

func (t *ImportedTransaction) HasAnyTransaction(start, end time.Time) bool {
	d := DateOf(t.Date)
	return !d.Before(DateOf(start)) && !d.After(DateOf(end))
}

func (t *ImportedTransaction) GenerateTransactions(start, end time.Time) []Transaction {
	if !t.HasAnyTransaction(start, end) {
		return nil
	}

	return []Transaction{NewTransaction(t.Date, t.Amount, t.AccountID)}
}
