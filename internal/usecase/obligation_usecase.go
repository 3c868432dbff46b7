package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/cashflow/internal/domain"
)

// ObligationUseCase handles obligation business logic.
type ObligationUseCase struct {
	obligationRepo ObligationRepository
	settlementRepo SettlementRepository
	idGen          IDGenerator
}

// NewObligationUseCase creates a new ObligationUseCase.
func NewObligationUseCase(
	obligationRepo ObligationRepository,
	settlementRepo SettlementRepository,
	idGen IDGenerator,
) *ObligationUseCase {
	return &ObligationUseCase{
		obligationRepo: obligationRepo,
		settlementRepo: settlementRepo,
		idGen:          idGen,
	}
}

// CreateOneOffInput represents input for creating a one-off obligation.
type CreateOneOffInput struct {
	Name            string
	Date            time.Time
	Amount          decimal.Decimal
	TargetAccountID string
	SourceAccountID *string
}

// CreateOneOff creates a new one-off obligation.
func (uc *ObligationUseCase) CreateOneOff(ctx context.Context, input CreateOneOffInput) (*domain.OneOffTransaction, error) {
	if err := domain.ValidateObligationName(input.Name); err != nil {
		return nil, err
	}

	if input.Amount.IsZero() {
		return nil, domain.ErrZeroAmount
	}

	if input.TargetAccountID == "" {
		return nil, domain.ErrMissingAccount
	}

	obligation := &domain.OneOffTransaction{
		ID:              uc.idGen.Generate(),
		Name:            input.Name,
		Date:            domain.DateOf(input.Date),
		Amount:          input.Amount,
		TargetAccountID: input.TargetAccountID,
		SourceAccountID: input.SourceAccountID,
		CreatedAt:       time.Now().UTC(),
	}

	if err := uc.obligationRepo.CreateOneOff(ctx, obligation); err != nil {
		return nil, err
	}

	return obligation, nil
}

// CreateRecurringInput represents input for creating a recurring obligation.
type CreateRecurringInput struct {
	Name            string
	Amount          decimal.Decimal
	Period          string
	Every           int
	Start           time.Time
	End             *time.Time
	TargetAccountID string
	SourceAccountID *string
	TrackSettlement bool
}

// CreateRecurring creates a new recurring obligation. The recurrence rule is
// validated up front; a rule that never fires is a client error, not an empty
// forecast.
func (uc *ObligationUseCase) CreateRecurring(ctx context.Context, input CreateRecurringInput) (*domain.RecurringTransaction, error) {
	if err := domain.ValidateObligationName(input.Name); err != nil {
		return nil, err
	}

	if input.Amount.IsZero() {
		return nil, domain.ErrZeroAmount
	}

	if input.TargetAccountID == "" {
		return nil, domain.ErrMissingAccount
	}

	rule := domain.RecurrenceRule{
		Period: domain.RecurrencePeriod(input.Period),
		Every:  input.Every,
		Start:  domain.DateOf(input.Start),
		End:    input.End,
	}
	if rule.Every == 0 {
		rule.Every = 1
	}
	if err := rule.Validate(); err != nil {
		return nil, err
	}

	obligation := &domain.RecurringTransaction{
		ID:              uc.idGen.Generate(),
		Name:            input.Name,
		Amount:          input.Amount,
		Rule:            rule,
		TargetAccountID: input.TargetAccountID,
		SourceAccountID: input.SourceAccountID,
		TrackSettlement: input.TrackSettlement,
		CreatedAt:       time.Now().UTC(),
	}

	if err := uc.obligationRepo.CreateRecurring(ctx, obligation); err != nil {
		return nil, err
	}

	return obligation, nil
}

// ImportTransactionInput represents one historical bank record to import.
type ImportTransactionInput struct {
	Date      time.Time
	Amount    decimal.Decimal
	AccountID string
	Reference string
}

// ImportTransactions stores a batch of historical bank records. The whole
// batch is validated before anything is written.
func (uc *ObligationUseCase) ImportTransactions(ctx context.Context, inputs []ImportTransactionInput) ([]*domain.ImportedTransaction, error) {
	now := time.Now().UTC()

	transactions := make([]*domain.ImportedTransaction, 0, len(inputs))
	for _, input := range inputs {
		if input.AccountID == "" {
			return nil, domain.ErrMissingAccount
		}

		transactions = append(transactions, &domain.ImportedTransaction{
			ID:        uc.idGen.Generate(),
			Date:      domain.DateOf(input.Date),
			Amount:    input.Amount,
			AccountID: input.AccountID,
			Reference: input.Reference,
			CreatedAt: now,
		})
	}

	if len(transactions) == 0 {
		return transactions, nil
	}

	if err := uc.obligationRepo.CreateImported(ctx, transactions); err != nil {
		return nil, err
	}

	return transactions, nil
}

// ListObligationsInput represents input for listing obligations.
type ListObligationsInput struct {
	Limit  int
	Offset int
}

// ListOneOffs lists one-off obligations with pagination.
func (uc *ObligationUseCase) ListOneOffs(ctx context.Context, input ListObligationsInput) ([]*domain.OneOffTransaction, error) {
	limit, offset, _ := domain.ValidatePagination(input.Limit, input.Offset)
	return uc.obligationRepo.ListOneOffs(ctx, limit, offset)
}

// ListRecurring lists recurring obligations with pagination.
func (uc *ObligationUseCase) ListRecurring(ctx context.Context, input ListObligationsInput) ([]*domain.RecurringTransaction, error) {
	limit, offset, _ := domain.ValidatePagination(input.Limit, input.Offset)
	return uc.obligationRepo.ListRecurring(ctx, limit, offset)
}

// DeleteOneOff removes a one-off obligation.
func (uc *ObligationUseCase) DeleteOneOff(ctx context.Context, id string) error {
	return uc.obligationRepo.DeleteOneOff(ctx, id)
}

// DeleteRecurring removes a recurring obligation.
func (uc *ObligationUseCase) DeleteRecurring(ctx context.Context, id string) error {
	return uc.obligationRepo.DeleteRecurring(ctx, id)
}

// MarkSettledInput represents input for settling one recurring occurrence.
type MarkSettledInput struct {
	ObligationID string
	DueDate      time.Time
	Settled      bool
}

// MarkSettled records settlement state for one occurrence of a recurring
// obligation. Later records override earlier ones, so settling can be undone.
func (uc *ObligationUseCase) MarkSettled(ctx context.Context, input MarkSettledInput) (*domain.SettlementRecord, error) {
	obligation, err := uc.obligationRepo.GetRecurringByID(ctx, input.ObligationID)
	if err != nil {
		return nil, err
	}

	record := &domain.SettlementRecord{
		ID: uc.idGen.Generate(),
		Key: domain.OccurrenceKey{
			ObligationID: obligation.ID,
			DueDate:      domain.DateOf(input.DueDate),
		},
		Settled:    input.Settled,
		RecordedAt: time.Now().UTC(),
	}

	if err := uc.settlementRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

// ListSettlements lists settlement records for one recurring obligation.
func (uc *ObligationUseCase) ListSettlements(ctx context.Context, obligationID string) ([]*domain.SettlementRecord, error) {
	return uc.settlementRepo.ListByObligation(ctx, obligationID)
}
