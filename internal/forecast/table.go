package forecast

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/cashflow/internal/domain"
)

// Row is the tabulated form of one generated transaction.
type Row struct {
	Date      time.Time
	Amount    decimal.Decimal
	AccountID string
}

// Table is the columnar form of a set of generated transactions: ascending by
// date, ties kept in generator-list order.
type Table struct {
	rows []Row
}

// Tabulate expands every generator over [start, end] and flattens the results
// into one table. It is a pure function of its inputs: no caching, no state.
// An empty generator list yields an empty table. An inverted range is rejected
// before any generator is invoked.
func Tabulate(generators []domain.TransactionGenerator, start, end time.Time) (*Table, error) {
	if err := domain.ValidateRange(start, end); err != nil {
		return nil, err
	}

	var rows []Row
	for _, gen := range generators {
		for _, tx := range gen.GenerateTransactions(start, end) {
			rows = append(rows, Row{Date: tx.Date, Amount: tx.Amount, AccountID: tx.AccountID})
		}
	}

	// Generators make no ordering promise; chronological order with stable
	// ties is established here, once.
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Date.Before(rows[j].Date)
	})

	return &Table{rows: rows}, nil
}

// Rows returns the table rows in chronological order.
func (t *Table) Rows() []Row { return t.rows }

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Accounts returns the distinct account IDs present in the table, sorted.
func (t *Table) Accounts() []string {
	seen := make(map[string]struct{})
	for _, row := range t.rows {
		seen[row.AccountID] = struct{}{}
	}

	accounts := make([]string, 0, len(seen))
	for id := range seen {
		accounts = append(accounts, id)
	}
	sort.Strings(accounts)

	return accounts
}
