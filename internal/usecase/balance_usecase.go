package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/cashflow/internal/domain"
)

// BalanceUseCase handles recorded account balance business logic. A recorded
// balance is a manual statement of an account's real balance on a date; the
// latest one at or before a forecast's start becomes that account's opening
// balance.
type BalanceUseCase struct {
	balanceRepo OpeningBalanceRepository
}

// NewBalanceUseCase creates a new BalanceUseCase.
func NewBalanceUseCase(balanceRepo OpeningBalanceRepository) *BalanceUseCase {
	return &BalanceUseCase{balanceRepo: balanceRepo}
}

// RecordBalanceInput represents input for recording an account balance.
type RecordBalanceInput struct {
	AccountID string
	Balance   decimal.Decimal
	AsOf      time.Time
}

// RecordBalance stores a dated balance statement for an account.
func (uc *BalanceUseCase) RecordBalance(ctx context.Context, input RecordBalanceInput) error {
	if input.AccountID == "" {
		return domain.ErrMissingAccount
	}

	asOf := input.AsOf
	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}

	return uc.balanceRepo.RecordBalance(ctx, input.AccountID, input.Balance, domain.DateOf(asOf))
}

// OpeningBalances returns the latest recorded balance per account as of the
// given date.
func (uc *BalanceUseCase) OpeningBalances(ctx context.Context, asOf time.Time) (map[string]decimal.Decimal, error) {
	return uc.balanceRepo.OpeningBalances(ctx, domain.DateOf(asOf))
}
