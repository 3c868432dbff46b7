package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/cashflow/internal/adapter/http/dto"
	"github.com/iho/cashflow/internal/usecase"
)

// BalanceService defines the behavior needed by BalanceHandler.
type BalanceService interface {
	RecordBalance(ctx context.Context, input usecase.RecordBalanceInput) error
	OpeningBalances(ctx context.Context, asOf time.Time) (map[string]decimal.Decimal, error)
}

// BalanceHandler handles recorded balance HTTP requests.
type BalanceHandler struct {
	balanceUC BalanceService
}

// NewBalanceHandler creates a new BalanceHandler.
func NewBalanceHandler(balanceUC BalanceService) *BalanceHandler {
	return &BalanceHandler{balanceUC: balanceUC}
}

// Record stores a dated balance statement for an account.
func (h *BalanceHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req dto.RecordBalanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	if err := h.balanceUC.RecordBalance(r.Context(), input); err != nil {
		writeError(w, mapDomainError(err), "failed to record balance", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// List returns the latest recorded balance per account as of a date.
func (h *BalanceHandler) List(w http.ResponseWriter, r *http.Request) {
	asOf := time.Now().UTC()
	if v := r.URL.Query().Get("as_of"); v != "" {
		parsed, err := time.Parse(dto.DateFormat, v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid as_of", err.Error())
			return
		}
		asOf = parsed
	}

	balances, err := h.balanceUC.OpeningBalances(r.Context(), asOf)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list balances", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.BalancesResponse{
		AsOf:     asOf.Format(dto.DateFormat),
		Balances: balances,
	})
}
