package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/cashflow/internal/domain"
	"github.com/iho/cashflow/internal/usecase"
)

// OneOffResponse represents a one-off obligation in API responses.
type OneOffResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Date            string          `json:"date"`
	Amount          decimal.Decimal `json:"amount"`
	TargetAccountID string          `json:"target_account_id"`
	SourceAccountID *string         `json:"source_account_id,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

// OneOffFromDomain converts a domain one-off obligation to a response.
func OneOffFromDomain(o *domain.OneOffTransaction) *OneOffResponse {
	return &OneOffResponse{
		ID:              o.ID,
		Name:            o.Name,
		Date:            o.Date.Format(DateFormat),
		Amount:          o.Amount,
		TargetAccountID: o.TargetAccountID,
		SourceAccountID: o.SourceAccountID,
		CreatedAt:       o.CreatedAt,
	}
}

// OneOffsFromDomain converts domain one-off obligations to responses.
func OneOffsFromDomain(obligations []*domain.OneOffTransaction) []*OneOffResponse {
	result := make([]*OneOffResponse, len(obligations))
	for i, o := range obligations {
		result[i] = OneOffFromDomain(o)
	}
	return result
}

// ListOneOffsResponse represents a page of one-off obligations.
type ListOneOffsResponse struct {
	Obligations []*OneOffResponse `json:"obligations"`
	Total       int64             `json:"total"`
}

// RecurringResponse represents a recurring obligation in API responses.
type RecurringResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Amount          decimal.Decimal `json:"amount"`
	Period          string          `json:"period"`
	Every           int             `json:"every"`
	Start           string          `json:"start"`
	End             *string         `json:"end,omitempty"`
	TargetAccountID string          `json:"target_account_id"`
	SourceAccountID *string         `json:"source_account_id,omitempty"`
	TrackSettlement bool            `json:"track_settlement"`
	CreatedAt       time.Time       `json:"created_at"`
}

// RecurringFromDomain converts a domain recurring obligation to a response.
func RecurringFromDomain(r *domain.RecurringTransaction) *RecurringResponse {
	var end *string
	if r.Rule.End != nil {
		s := r.Rule.End.Format(DateFormat)
		end = &s
	}

	return &RecurringResponse{
		ID:              r.ID,
		Name:            r.Name,
		Amount:          r.Amount,
		Period:          string(r.Rule.Period),
		Every:           r.Rule.Every,
		Start:           r.Rule.Start.Format(DateFormat),
		End:             end,
		TargetAccountID: r.TargetAccountID,
		SourceAccountID: r.SourceAccountID,
		TrackSettlement: r.TrackSettlement,
		CreatedAt:       r.CreatedAt,
	}
}

// RecurringsFromDomain converts domain recurring obligations to responses.
func RecurringsFromDomain(obligations []*domain.RecurringTransaction) []*RecurringResponse {
	result := make([]*RecurringResponse, len(obligations))
	for i, r := range obligations {
		result[i] = RecurringFromDomain(r)
	}
	return result
}

// ListRecurringResponse represents a page of recurring obligations.
type ListRecurringResponse struct {
	Obligations []*RecurringResponse `json:"obligations"`
	Total       int64                `json:"total"`
}

// ImportedResponse represents an imported bank record in API responses.
type ImportedResponse struct {
	ID        string          `json:"id"`
	Date      string          `json:"date"`
	Amount    decimal.Decimal `json:"amount"`
	AccountID string          `json:"account_id"`
	Reference string          `json:"reference,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// ImportedFromDomain converts a domain imported transaction to a response.
func ImportedFromDomain(t *domain.ImportedTransaction) *ImportedResponse {
	return &ImportedResponse{
		ID:        t.ID,
		Date:      t.Date.Format(DateFormat),
		Amount:    t.Amount,
		AccountID: t.AccountID,
		Reference: t.Reference,
		CreatedAt: t.CreatedAt,
	}
}

// ImportedBatchResponse represents the result of an import.
type ImportedBatchResponse struct {
	Transactions []*ImportedResponse `json:"transactions"`
	Total        int64               `json:"total"`
}

// ImportedBatchFromDomain converts imported transactions to a batch response.
func ImportedBatchFromDomain(transactions []*domain.ImportedTransaction) ImportedBatchResponse {
	result := make([]*ImportedResponse, len(transactions))
	for i, t := range transactions {
		result[i] = ImportedFromDomain(t)
	}
	return ImportedBatchResponse{Transactions: result, Total: int64(len(result))}
}

// SettlementResponse represents a settlement record in API responses.
type SettlementResponse struct {
	ID           string    `json:"id"`
	ObligationID string    `json:"obligation_id"`
	DueDate      string    `json:"due_date"`
	Settled      bool      `json:"settled"`
	RecordedAt   time.Time `json:"recorded_at"`
}

// SettlementFromDomain converts a domain settlement record to a response.
func SettlementFromDomain(s *domain.SettlementRecord) *SettlementResponse {
	return &SettlementResponse{
		ID:           s.ID,
		ObligationID: s.Key.ObligationID,
		DueDate:      s.Key.DueDate.Format(DateFormat),
		Settled:      s.Settled,
		RecordedAt:   s.RecordedAt,
	}
}

// SettlementsFromDomain converts domain settlement records to responses.
func SettlementsFromDomain(records []*domain.SettlementRecord) []*SettlementResponse {
	result := make([]*SettlementResponse, len(records))
	for i, s := range records {
		result[i] = SettlementFromDomain(s)
	}
	return result
}

// PointResponse represents one dated balance point in a forecast series.
type PointResponse struct {
	Date    string          `json:"date"`
	Balance decimal.Decimal `json:"balance"`
}

// ForecastResponse represents a forecast in API responses.
type ForecastResponse struct {
	Start    string                     `json:"start"`
	End      string                     `json:"end"`
	AsOf     string                     `json:"as_of"`
	Method   string                     `json:"method"`
	Accounts map[string][]PointResponse `json:"accounts"`
}

// ForecastFromResult converts a use case forecast result to a response.
func ForecastFromResult(result *usecase.ForecastResult) ForecastResponse {
	accounts := make(map[string][]PointResponse, len(result.Accounts))
	for id, series := range result.Accounts {
		points := make([]PointResponse, len(series))
		for i, p := range series {
			points[i] = PointResponse{Date: p.Date.Format(DateFormat), Balance: p.Balance}
		}
		accounts[id] = points
	}

	return ForecastResponse{
		Start:    result.Start.Format(DateFormat),
		End:      result.End.Format(DateFormat),
		AsOf:     result.AsOf.Format(DateFormat),
		Method:   result.Method,
		Accounts: accounts,
	}
}

// BalancesResponse represents recorded opening balances per account.
type BalancesResponse struct {
	AsOf     string                     `json:"as_of"`
	Balances map[string]decimal.Decimal `json:"balances"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
