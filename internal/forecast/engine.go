package forecast

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/iho/cashflow/internal/domain"
)

// Engine runs the full pipeline: expand generators into a table, fold the
// baseline balances and the unpaid-recurring adjustments in parallel, and
// merge the two into the final per-account series set.
type Engine struct {
	opening map[string]decimal.Decimal
	asOf    time.Time
	settled domain.SettlementSet
	method  MergeMethod
}

// NewEngine creates an Engine. Opening balances are as of the query start;
// asOf separates settled history from outstanding obligations.
func NewEngine(opening map[string]decimal.Decimal, asOf time.Time, settled domain.SettlementSet, method MergeMethod) *Engine {
	return &Engine{
		opening: opening,
		asOf:    domain.DateOf(asOf),
		settled: settled,
		method:  method,
	}
}

// Forecast expands the obligations over [start, end] and returns the merged
// balance series per account. The two calculators read only immutable inputs,
// so they run concurrently.
func (e *Engine) Forecast(ctx context.Context, generators []domain.TransactionGenerator, start, end time.Time) (SeriesSet, error) {
	if _, err := ParseMergeMethod(string(e.method)); err != nil {
		return nil, err
	}

	if err := domain.ValidateRange(start, end); err != nil {
		return nil, err
	}

	start = domain.DateOf(start)
	end = domain.DateOf(end)

	table, err := Tabulate(generators, start, end)
	if err != nil {
		return nil, err
	}

	var unpaid []*domain.UnpaidRecurring
	for _, gen := range generators {
		if u, ok := gen.(*domain.UnpaidRecurring); ok {
			unpaid = append(unpaid, u)
		}
	}

	var baseline, adjustment SeriesSet

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		baseline, err = NewBalanceCalculator(e.opening).Compute(table, start, end)
		return err
	})
	g.Go(func() error {
		var err error
		adjustment, err = NewUnpaidRecurringCalculator(e.asOf, e.settled).Compute(unpaid, start, end)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return NewMergeCalculator(e.method).Merge([]SeriesSet{baseline, adjustment})
}
