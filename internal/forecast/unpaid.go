package forecast

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/cashflow/internal/domain"
)

// UnpaidRecurringCalculator produces the adjustment series for recurring
// occurrences that are due but not confirmed settled as of a reference date.
// A rent payment due on the 1st depresses the forecast even before the
// matching bank record arrives; once reconciled it must not be counted twice.
type UnpaidRecurringCalculator struct {
	asOf    time.Time
	settled domain.SettlementSet
}

// NewUnpaidRecurringCalculator creates a calculator for the given reference
// date and settled-occurrence set.
func NewUnpaidRecurringCalculator(asOf time.Time, settled domain.SettlementSet) *UnpaidRecurringCalculator {
	return &UnpaidRecurringCalculator{asOf: domain.DateOf(asOf), settled: settled}
}

// Compute folds every outstanding occurrence in [start, end] into a
// per-account cumulative adjustment series starting from zero. Accounts with
// no outstanding occurrences are absent from the result.
func (c *UnpaidRecurringCalculator) Compute(obligations []*domain.UnpaidRecurring, start, end time.Time) (SeriesSet, error) {
	if err := domain.ValidateRange(start, end); err != nil {
		return nil, err
	}

	var rows []Row
	for _, ob := range obligations {
		for _, tx := range ob.Outstanding(start, end, c.asOf, c.settled) {
			rows = append(rows, Row{Date: tx.Date, Amount: tx.Amount, AccountID: tx.AccountID})
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Date.Before(rows[j].Date)
	})

	byAccount := make(map[string][]Row)
	for _, row := range rows {
		byAccount[row.AccountID] = append(byAccount[row.AccountID], row)
	}

	out := make(SeriesSet, len(byAccount))
	for id, accountRows := range byAccount {
		running := decimal.Zero
		var series Series
		for i := 0; i < len(accountRows); {
			date := accountRows[i].Date
			for i < len(accountRows) && accountRows[i].Date.Equal(date) {
				running = running.Add(accountRows[i].Amount)
				i++
			}
			series = append(series, Point{Date: date, Balance: running})
		}
		out[id] = series
	}

	return out, nil
}
