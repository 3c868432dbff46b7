package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/iho/cashflow/internal/infrastructure/postgres/generated"
)

// BalanceRepository implements usecase.OpeningBalanceRepository.
type BalanceRepository struct {
	queries *generated.Queries
	retrier *Retrier
	idGen   *ULIDGenerator
}

// NewBalanceRepository creates a new BalanceRepository.
func NewBalanceRepository(pool *pgxpool.Pool, retrier *Retrier) *BalanceRepository {
	return &BalanceRepository{
		queries: generated.New(pool),
		retrier: retrier,
		idGen:   NewULIDGenerator(),
	}
}

// OpeningBalances returns the latest recorded balance per account as of the
// given date. Accounts with no recorded balance on or before asOf are absent.
func (r *BalanceRepository) OpeningBalances(ctx context.Context, asOf time.Time) (map[string]decimal.Decimal, error) {
	rows, err := r.queries.LatestAccountBalances(ctx, timeToPgDate(asOf))
	if err != nil {
		return nil, err
	}

	balances := make(map[string]decimal.Decimal, len(rows))
	for _, row := range rows {
		balances[row.AccountID] = numericToDecimal(row.Balance)
	}

	return balances, nil
}

// RecordBalance stores an observed account balance.
func (r *BalanceRepository) RecordBalance(ctx context.Context, accountID string, balance decimal.Decimal, asOf time.Time) error {
	return r.retrier.Retry(ctx, func() error {
		return r.queries.CreateAccountBalance(ctx, generated.CreateAccountBalanceParams{
			ID:         r.idGen.Generate(),
			AccountID:  accountID,
			Balance:    decimalToNumeric(balance),
			AsOf:       timeToPgDate(asOf),
			RecordedAt: timeToPgTimestamptz(time.Now().UTC()),
		})
	})
}
