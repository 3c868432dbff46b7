package forecast

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/cashflow/internal/domain"
)

// BalanceCalculator folds tabulated activity into per-account running
// balances. Opening balances are as of the query start date, supplied by the
// persistence layer.
type BalanceCalculator struct {
	opening map[string]decimal.Decimal
}

// NewBalanceCalculator creates a BalanceCalculator with the given opening
// balances. Accounts absent from the map open at zero.
func NewBalanceCalculator(opening map[string]decimal.Decimal) *BalanceCalculator {
	return &BalanceCalculator{opening: opening}
}

// Compute returns one cumulative series per account over [start, end]: one
// point per distinct date with activity, carrying the end-of-day balance.
// Every account known from the opening balances gets an anchor point at start,
// so an account with no activity in range still yields a flat series.
func (c *BalanceCalculator) Compute(table *Table, start, end time.Time) (SeriesSet, error) {
	if err := domain.ValidateRange(start, end); err != nil {
		return nil, err
	}

	start = domain.DateOf(start)

	byAccount := make(map[string][]Row)
	for _, row := range table.Rows() {
		byAccount[row.AccountID] = append(byAccount[row.AccountID], row)
	}
	for id := range c.opening {
		if _, ok := byAccount[id]; !ok {
			byAccount[id] = nil
		}
	}

	out := make(SeriesSet, len(byAccount))
	for id, rows := range byAccount {
		out[id] = c.computeAccount(id, rows, start)
	}

	return out, nil
}

// computeAccount folds one account's rows, already chronological, into its
// series. Multiple rows on one date collapse to a single end-of-day point.
func (c *BalanceCalculator) computeAccount(accountID string, rows []Row, start time.Time) Series {
	running := c.opening[accountID]
	series := Series{{Date: start, Balance: running}}

	for i := 0; i < len(rows); {
		date := rows[i].Date
		for i < len(rows) && rows[i].Date.Equal(date) {
			running = running.Add(rows[i].Amount)
			i++
		}

		if date.Equal(start) {
			series[0].Balance = running
			continue
		}

		series = append(series, Point{Date: date, Balance: running})
	}

	return series
}
