package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/iho/cashflow/internal/domain"
	"github.com/iho/cashflow/internal/infrastructure/postgres/generated"
)

// ObligationRepository implements usecase.ObligationRepository.
type ObligationRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
	retrier *Retrier
}

// NewObligationRepository creates a new ObligationRepository.
func NewObligationRepository(pool *pgxpool.Pool, retrier *Retrier) *ObligationRepository {
	return &ObligationRepository{
		pool:    pool,
		queries: generated.New(pool),
		retrier: retrier,
	}
}

// CreateOneOff stores a one-off obligation.
func (r *ObligationRepository) CreateOneOff(ctx context.Context, obligation *domain.OneOffTransaction) error {
	return r.retrier.Retry(ctx, func() error {
		return r.queries.CreateOneOffTransaction(ctx, generated.CreateOneOffTransactionParams{
			ID:              obligation.ID,
			Name:            obligation.Name,
			DueDate:         timeToPgDate(obligation.Date),
			Amount:          decimalToNumeric(obligation.Amount),
			TargetAccountID: obligation.TargetAccountID,
			SourceAccountID: strPtrToPgText(obligation.SourceAccountID),
			CreatedAt:       timeToPgTimestamptz(obligation.CreatedAt),
		})
	})
}

// CreateRecurring stores a recurring obligation.
func (r *ObligationRepository) CreateRecurring(ctx context.Context, obligation *domain.RecurringTransaction) error {
	return r.retrier.Retry(ctx, func() error {
		return r.queries.CreateRecurringTransaction(ctx, generated.CreateRecurringTransactionParams{
			ID:              obligation.ID,
			Name:            obligation.Name,
			Amount:          decimalToNumeric(obligation.Amount),
			Period:          string(obligation.Rule.Period),
			Every:           int32(obligation.Rule.Every),
			StartDate:       timeToPgDate(obligation.Rule.Start),
			EndDate:         timePtrToPgDate(obligation.Rule.End),
			TargetAccountID: obligation.TargetAccountID,
			SourceAccountID: strPtrToPgText(obligation.SourceAccountID),
			TrackSettlement: obligation.TrackSettlement,
			CreatedAt:       timeToPgTimestamptz(obligation.CreatedAt),
		})
	})
}

// CreateImported stores a batch of imported bank records in one transaction.
func (r *ObligationRepository) CreateImported(ctx context.Context, transactions []*domain.ImportedTransaction) error {
	return r.retrier.Retry(ctx, func() error {
		tx, err := r.pool.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		queries := r.queries.WithTx(tx)
		for _, t := range transactions {
			err := queries.CreateImportedTransaction(ctx, generated.CreateImportedTransactionParams{
				ID:        t.ID,
				TxDate:    timeToPgDate(t.Date),
				Amount:    decimalToNumeric(t.Amount),
				AccountID: t.AccountID,
				Reference: strToPgText(t.Reference),
				CreatedAt: timeToPgTimestamptz(t.CreatedAt),
			})
			if err != nil {
				return err
			}
		}

		return tx.Commit(ctx)
	})
}

// GetRecurringByID retrieves a recurring obligation by ID.
func (r *ObligationRepository) GetRecurringByID(ctx context.Context, id string) (*domain.RecurringTransaction, error) {
	row, err := r.queries.GetRecurringTransactionByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrObligationNotFound
		}

		return nil, err
	}

	return rowToRecurring(row), nil
}

// ListOneOffs lists one-off obligations with pagination.
func (r *ObligationRepository) ListOneOffs(ctx context.Context, limit, offset int) ([]*domain.OneOffTransaction, error) {
	rows, err := r.queries.ListOneOffTransactions(ctx, generated.ListOneOffTransactionsParams{
		Limit:  int32(limit),
		Offset: int32(offset),
	})
	if err != nil {
		return nil, err
	}

	obligations := make([]*domain.OneOffTransaction, 0, len(rows))
	for _, row := range rows {
		obligations = append(obligations, rowToOneOff(row))
	}

	return obligations, nil
}

// ListRecurring lists recurring obligations with pagination.
func (r *ObligationRepository) ListRecurring(ctx context.Context, limit, offset int) ([]*domain.RecurringTransaction, error) {
	rows, err := r.queries.ListRecurringTransactions(ctx, generated.ListRecurringTransactionsParams{
		Limit:  int32(limit),
		Offset: int32(offset),
	})
	if err != nil {
		return nil, err
	}

	obligations := make([]*domain.RecurringTransaction, 0, len(rows))
	for _, row := range rows {
		obligations = append(obligations, rowToRecurring(row))
	}

	return obligations, nil
}

// ListImported lists imported bank records dated within [start, end].
func (r *ObligationRepository) ListImported(ctx context.Context, start, end time.Time) ([]*domain.ImportedTransaction, error) {
	rows, err := r.queries.ListImportedTransactions(ctx, generated.ListImportedTransactionsParams{
		FromDate: timeToPgDate(start),
		ToDate:   timeToPgDate(end),
	})
	if err != nil {
		return nil, err
	}

	transactions := make([]*domain.ImportedTransaction, 0, len(rows))
	for _, row := range rows {
		transactions = append(transactions, rowToImported(row))
	}

	return transactions, nil
}

// DeleteOneOff removes a one-off obligation.
func (r *ObligationRepository) DeleteOneOff(ctx context.Context, id string) error {
	affected, err := r.queries.DeleteOneOffTransaction(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrObligationNotFound
	}

	return nil
}

// DeleteRecurring removes a recurring obligation.
func (r *ObligationRepository) DeleteRecurring(ctx context.Context, id string) error {
	affected, err := r.queries.DeleteRecurringTransaction(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrObligationNotFound
	}

	return nil
}

func rowToOneOff(row generated.OneOffTransaction) *domain.OneOffTransaction {
	return &domain.OneOffTransaction{
		ID:              row.ID,
		Name:            row.Name,
		Date:            row.DueDate.Time,
		Amount:          numericToDecimal(row.Amount),
		TargetAccountID: row.TargetAccountID,
		SourceAccountID: pgTextToStrPtr(row.SourceAccountID),
		CreatedAt:       row.CreatedAt.Time,
	}
}

func rowToRecurring(row generated.RecurringTransaction) *domain.RecurringTransaction {
	return &domain.RecurringTransaction{
		ID:     row.ID,
		Name:   row.Name,
		Amount: numericToDecimal(row.Amount),
		Rule: domain.RecurrenceRule{
			Period: domain.RecurrencePeriod(row.Period),
			Every:  int(row.Every),
			Start:  row.StartDate.Time,
			End:    pgDateToTimePtr(row.EndDate),
		},
		TargetAccountID: row.TargetAccountID,
		SourceAccountID: pgTextToStrPtr(row.SourceAccountID),
		TrackSettlement: row.TrackSettlement,
		CreatedAt:       row.CreatedAt.Time,
	}
}

func rowToImported(row generated.ImportedTransaction) *domain.ImportedTransaction {
	return &domain.ImportedTransaction{
		ID:        row.ID,
		Date:      row.TxDate.Time,
		Amount:    numericToDecimal(row.Amount),
		AccountID: row.AccountID,
		Reference: row.Reference.String,
		CreatedAt: row.CreatedAt.Time,
	}
}

// Type conversion helpers.
func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric

	_ = n.Scan(d.String())

	return n
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}

	d, _ := decimal.NewFromString(n.Int.String())
	if n.Exp != 0 {
		d = d.Shift(n.Exp)
	}

	return d
}

func timeToPgTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func timeToPgDate(t time.Time) pgtype.Date {
	return pgtype.Date{Time: t, Valid: true}
}

func timePtrToPgDate(t *time.Time) pgtype.Date {
	if t == nil {
		return pgtype.Date{}
	}
	return pgtype.Date{Time: *t, Valid: true}
}

func pgDateToTimePtr(d pgtype.Date) *time.Time {
	if !d.Valid {
		return nil
	}
	t := d.Time
	return &t
}

func strToPgText(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: s, Valid: true}
}

func strPtrToPgText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func pgTextToStrPtr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	s := t.String
	return &s
}
