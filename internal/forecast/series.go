// Package forecast implements the generation, tabulation, aggregation and
// merge pipeline that turns obligation records into per-account balance
// forecasts. Every stage is a pure in-memory transform over immutable inputs.
package forecast

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Point is one dated balance in an account's series.
type Point struct {
	Date    time.Time       `json:"date"`
	Balance decimal.Decimal `json:"balance"`
}

// Series is one account's balance over time, ascending by date, one point per
// distinct date with activity.
type Series []Point

// SeriesSet maps account IDs to their balance series.
type SeriesSet map[string]Series

// valueAt returns the forward-filled balance at date: the balance of the last
// point on or before date. ok is false when the series has no point yet.
func (s Series) valueAt(date time.Time) (decimal.Decimal, bool) {
	var (
		value decimal.Decimal
		found bool
	)

	for _, p := range s {
		if p.Date.After(date) {
			break
		}
		value = p.Balance
		found = true
	}

	return value, found
}

// definedAt returns the explicit balance at date, if the series has a point on
// exactly that day.
func (s Series) definedAt(date time.Time) (decimal.Decimal, bool) {
	for _, p := range s {
		if p.Date.Equal(date) {
			return p.Balance, true
		}
		if p.Date.After(date) {
			break
		}
	}

	return decimal.Decimal{}, false
}

// Accounts returns the set's account IDs, sorted for deterministic iteration.
func (s SeriesSet) Accounts() []string {
	accounts := make([]string, 0, len(s))
	for id := range s {
		accounts = append(accounts, id)
	}
	sort.Strings(accounts)

	return accounts
}
