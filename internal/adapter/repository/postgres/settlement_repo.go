package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/cashflow/internal/domain"
	"github.com/iho/cashflow/internal/infrastructure/postgres/generated"
)

// SettlementRepository implements usecase.SettlementRepository.
type SettlementRepository struct {
	queries *generated.Queries
	retrier *Retrier
}

// NewSettlementRepository creates a new SettlementRepository.
func NewSettlementRepository(pool *pgxpool.Pool, retrier *Retrier) *SettlementRepository {
	return &SettlementRepository{
		queries: generated.New(pool),
		retrier: retrier,
	}
}

// Create stores a settlement record for a single occurrence.
func (r *SettlementRepository) Create(ctx context.Context, record *domain.SettlementRecord) error {
	return r.retrier.Retry(ctx, func() error {
		return r.queries.CreateRecurringSettlement(ctx, generated.CreateRecurringSettlementParams{
			ID:           record.ID,
			ObligationID: record.Key.ObligationID,
			DueDate:      timeToPgDate(record.Key.DueDate),
			Settled:      record.Settled,
			RecordedAt:   timeToPgTimestamptz(record.RecordedAt),
		})
	})
}

// ListByObligation lists settlement records for one obligation.
func (r *SettlementRepository) ListByObligation(ctx context.Context, obligationID string) ([]*domain.SettlementRecord, error) {
	rows, err := r.queries.ListRecurringSettlementsByObligation(ctx, obligationID)
	if err != nil {
		return nil, err
	}

	return rowsToSettlements(rows), nil
}

// ListAll lists every settlement record ordered by recording time.
func (r *SettlementRepository) ListAll(ctx context.Context) ([]*domain.SettlementRecord, error) {
	rows, err := r.queries.ListAllRecurringSettlements(ctx)
	if err != nil {
		return nil, err
	}

	return rowsToSettlements(rows), nil
}

func rowsToSettlements(rows []generated.RecurringSettlement) []*domain.SettlementRecord {
	records := make([]*domain.SettlementRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, &domain.SettlementRecord{
			ID: row.ID,
			Key: domain.OccurrenceKey{
				ObligationID: row.ObligationID,
				DueDate:      row.DueDate.Time,
			},
			Settled:    row.Settled,
			RecordedAt: row.RecordedAt.Time,
		})
	}

	return records
}
