package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/cashflow/internal/domain"
)

// ObligationRepository defines data access for financial obligations.
type ObligationRepository interface {
	CreateOneOff(ctx context.Context, obligation *domain.OneOffTransaction) error
	CreateRecurring(ctx context.Context, obligation *domain.RecurringTransaction) error
	CreateImported(ctx context.Context, transactions []*domain.ImportedTransaction) error
	GetRecurringByID(ctx context.Context, id string) (*domain.RecurringTransaction, error)
	ListOneOffs(ctx context.Context, limit, offset int) ([]*domain.OneOffTransaction, error)
	ListRecurring(ctx context.Context, limit, offset int) ([]*domain.RecurringTransaction, error)
	ListImported(ctx context.Context, start, end time.Time) ([]*domain.ImportedTransaction, error)
	DeleteOneOff(ctx context.Context, id string) error
	DeleteRecurring(ctx context.Context, id string) error
}

// OpeningBalanceRepository defines data access for recorded account balances.
type OpeningBalanceRepository interface {
	// OpeningBalances returns the latest recorded balance per account as of
	// the given date.
	OpeningBalances(ctx context.Context, asOf time.Time) (map[string]decimal.Decimal, error)
	RecordBalance(ctx context.Context, accountID string, balance decimal.Decimal, asOf time.Time) error
}

// SettlementRepository defines data access for per-occurrence settlement records.
type SettlementRepository interface {
	Create(ctx context.Context, record *domain.SettlementRecord) error
	ListByObligation(ctx context.Context, obligationID string) ([]*domain.SettlementRecord, error)
	ListAll(ctx context.Context) ([]*domain.SettlementRecord, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
