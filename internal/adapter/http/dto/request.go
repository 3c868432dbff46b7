package dto

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/cashflow/internal/usecase"
)

// DateFormat is the wire format for obligation and forecast dates. All dates
// are calendar days; time-of-day never travels over the API.
const DateFormat = "2006-01-02"

func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(DateFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s: want YYYY-MM-DD, got %q", field, value)
	}
	return t, nil
}

func parseOptionalDate(field string, value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := parseDate(field, *value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// CreateOneOffRequest represents a request to create a one-off obligation.
type CreateOneOffRequest struct {
	Name            string          `json:"name"`
	Date            string          `json:"date"`
	Amount          decimal.Decimal `json:"amount"`
	TargetAccountID string          `json:"target_account_id"`
	SourceAccountID *string         `json:"source_account_id,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateOneOffRequest) ToUseCaseInput() (usecase.CreateOneOffInput, error) {
	date, err := parseDate("date", r.Date)
	if err != nil {
		return usecase.CreateOneOffInput{}, err
	}

	return usecase.CreateOneOffInput{
		Name:            r.Name,
		Date:            date,
		Amount:          r.Amount,
		TargetAccountID: r.TargetAccountID,
		SourceAccountID: r.SourceAccountID,
	}, nil
}

// CreateRecurringRequest represents a request to create a recurring obligation.
type CreateRecurringRequest struct {
	Name            string          `json:"name"`
	Amount          decimal.Decimal `json:"amount"`
	Period          string          `json:"period"`
	Every           int             `json:"every,omitempty"`
	Start           string          `json:"start"`
	End             *string         `json:"end,omitempty"`
	TargetAccountID string          `json:"target_account_id"`
	SourceAccountID *string         `json:"source_account_id,omitempty"`
	TrackSettlement bool            `json:"track_settlement,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateRecurringRequest) ToUseCaseInput() (usecase.CreateRecurringInput, error) {
	start, err := parseDate("start", r.Start)
	if err != nil {
		return usecase.CreateRecurringInput{}, err
	}

	end, err := parseOptionalDate("end", r.End)
	if err != nil {
		return usecase.CreateRecurringInput{}, err
	}

	return usecase.CreateRecurringInput{
		Name:            r.Name,
		Amount:          r.Amount,
		Period:          r.Period,
		Every:           r.Every,
		Start:           start,
		End:             end,
		TargetAccountID: r.TargetAccountID,
		SourceAccountID: r.SourceAccountID,
		TrackSettlement: r.TrackSettlement,
	}, nil
}

// ImportTransactionsRequest represents a batch of bank records to import.
type ImportTransactionsRequest struct {
	Transactions []ImportTransactionItem `json:"transactions"`
}

// ImportTransactionItem represents one bank record in an import batch.
type ImportTransactionItem struct {
	Date      string          `json:"date"`
	Amount    decimal.Decimal `json:"amount"`
	AccountID string          `json:"account_id"`
	Reference string          `json:"reference,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *ImportTransactionsRequest) ToUseCaseInput() ([]usecase.ImportTransactionInput, error) {
	inputs := make([]usecase.ImportTransactionInput, len(r.Transactions))
	for i, item := range r.Transactions {
		date, err := parseDate("date", item.Date)
		if err != nil {
			return nil, fmt.Errorf("transaction %d: %w", i, err)
		}
		inputs[i] = usecase.ImportTransactionInput{
			Date:      date,
			Amount:    item.Amount,
			AccountID: item.AccountID,
			Reference: item.Reference,
		}
	}
	return inputs, nil
}

// MarkSettledRequest represents a request to settle one recurring occurrence.
type MarkSettledRequest struct {
	DueDate string `json:"due_date"`
	Settled bool   `json:"settled"`
}

// ToUseCaseInput converts to use case input.
func (r *MarkSettledRequest) ToUseCaseInput(obligationID string) (usecase.MarkSettledInput, error) {
	dueDate, err := parseDate("due_date", r.DueDate)
	if err != nil {
		return usecase.MarkSettledInput{}, err
	}

	return usecase.MarkSettledInput{
		ObligationID: obligationID,
		DueDate:      dueDate,
		Settled:      r.Settled,
	}, nil
}

// RecordBalanceRequest represents a request to record an account balance.
type RecordBalanceRequest struct {
	AccountID string          `json:"account_id"`
	Balance   decimal.Decimal `json:"balance"`
	AsOf      string          `json:"as_of,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *RecordBalanceRequest) ToUseCaseInput() (usecase.RecordBalanceInput, error) {
	var asOf time.Time
	if r.AsOf != "" {
		parsed, err := parseDate("as_of", r.AsOf)
		if err != nil {
			return usecase.RecordBalanceInput{}, err
		}
		asOf = parsed
	}

	return usecase.RecordBalanceInput{
		AccountID: r.AccountID,
		Balance:   r.Balance,
		AsOf:      asOf,
	}, nil
}

// ForecastQuery represents the query parameters of a forecast request.
type ForecastQuery struct {
	Start  string
	End    string
	AsOf   string
	Method string
}

// ToUseCaseInput converts to use case input. Method is passed through
// unvalidated; the use case owns merge method validation.
func (q ForecastQuery) ToUseCaseInput() (usecase.ForecastInput, error) {
	start, err := parseDate("start", q.Start)
	if err != nil {
		return usecase.ForecastInput{}, err
	}

	end, err := parseDate("end", q.End)
	if err != nil {
		return usecase.ForecastInput{}, err
	}

	var asOf time.Time
	if q.AsOf != "" {
		parsed, err := parseDate("as_of", q.AsOf)
		if err != nil {
			return usecase.ForecastInput{}, err
		}
		asOf = parsed
	}

	return usecase.ForecastInput{
		Start:  start,
		End:    end,
		AsOf:   asOf,
		Method: q.Method,
	}, nil
}
