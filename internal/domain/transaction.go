package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a single dated, signed monetary movement against one account.
// Positive amounts credit the account, negative amounts debit it. Transactions
// are ephemeral projections produced by generators; they are never persisted.
type Transaction struct {
	Date      time.Time
	Amount    decimal.Decimal
	AccountID string
}

// NewTransaction creates a Transaction, truncating the date to its calendar day.
func NewTransaction(date time.Time, amount decimal.Decimal, accountID string) Transaction {
	return Transaction{
		Date:      DateOf(date),
		Amount:    amount,
		AccountID: accountID,
	}
}

// TransactionGenerator is the capability every obligation variant implements:
// expanding its durable record into dated cash-flow events over a range.
//
// Both methods are pure. GenerateTransactions is deterministic and restartable;
// a fresh call with the same range re-produces the same sequence.
// HasAnyTransaction must agree with GenerateTransactions returning a non-empty
// result for the same range. Callers must not assume the sequence is sorted;
// ordering is the tabulator's responsibility.
type TransactionGenerator interface {
	HasAnyTransaction(start, end time.Time) bool
	GenerateTransactions(start, end time.Time) []Transaction
}

// expandPair produces the double-entry expansion of one occurrence: the target
// account is credited with the signed amount and, when a source account is set,
// the source is debited with its negation. The two amounts always sum to zero.
func expandPair(date time.Time, amount decimal.Decimal, targetID string, sourceID *string) []Transaction {
	txs := []Transaction{NewTransaction(date, amount, targetID)}
	if sourceID != nil {
		txs = append(txs, NewTransaction(date, amount.Neg(), *sourceID))
	}

	return txs
}
