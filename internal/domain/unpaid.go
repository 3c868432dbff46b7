package domain

import "time"

// UnpaidRecurring wraps a settlement-tracked recurring obligation. It behaves
// like the wrapped generator for ordinary projection and additionally exposes
// the outstanding view: occurrences already due but not confirmed settled.
type UnpaidRecurring struct {
	Recurring RecurringTransaction
}

func (u *UnpaidRecurring) HasAnyTransaction(start, end time.Time) bool {
	return u.Recurring.HasAnyTransaction(start, end)
}

func (u *UnpaidRecurring) GenerateTransactions(start, end time.Time) []Transaction {
	return u.Recurring.GenerateTransactions(start, end)
}

// Outstanding produces one adjustment per occurrence in [start, end] that is
// due on or before asOf and not in the settled set. Occurrences due after asOf
// are never outstanding; they are ordinary future projection.
func (u *UnpaidRecurring) Outstanding(start, end, asOf time.Time, settled SettlementSet) []Transaction {
	limit := DateOf(end)
	if asOf := DateOf(asOf); asOf.Before(limit) {
		limit = asOf
	}

	start = DateOf(start)
	if limit.Before(start) {
		return nil
	}

	var txs []Transaction
	for _, due := range u.Recurring.Rule.Occurrences(start, limit) {
		if settled.IsSettled(OccurrenceKey{ObligationID: u.Recurring.ID, DueDate: due}) {
			continue
		}

		txs = append(txs, expandPair(due, u.Recurring.Amount, u.Recurring.TargetAccountID, u.Recurring.SourceAccountID)...)
	}

	return txs
}
