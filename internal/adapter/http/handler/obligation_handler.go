package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/cashflow/internal/adapter/http/dto"
	"github.com/iho/cashflow/internal/domain"
	"github.com/iho/cashflow/internal/usecase"
)

// ObligationService defines the behavior needed by ObligationHandler.
type ObligationService interface {
	CreateOneOff(ctx context.Context, input usecase.CreateOneOffInput) (*domain.OneOffTransaction, error)
	CreateRecurring(ctx context.Context, input usecase.CreateRecurringInput) (*domain.RecurringTransaction, error)
	ImportTransactions(ctx context.Context, inputs []usecase.ImportTransactionInput) ([]*domain.ImportedTransaction, error)
	ListOneOffs(ctx context.Context, input usecase.ListObligationsInput) ([]*domain.OneOffTransaction, error)
	ListRecurring(ctx context.Context, input usecase.ListObligationsInput) ([]*domain.RecurringTransaction, error)
	DeleteOneOff(ctx context.Context, id string) error
	DeleteRecurring(ctx context.Context, id string) error
	MarkSettled(ctx context.Context, input usecase.MarkSettledInput) (*domain.SettlementRecord, error)
	ListSettlements(ctx context.Context, obligationID string) ([]*domain.SettlementRecord, error)
}

// ObligationHandler handles obligation-related HTTP requests.
type ObligationHandler struct {
	obligationUC ObligationService
}

// NewObligationHandler creates a new ObligationHandler.
func NewObligationHandler(obligationUC ObligationService) *ObligationHandler {
	return &ObligationHandler{obligationUC: obligationUC}
}

// CreateOneOff creates a new one-off obligation.
func (h *ObligationHandler) CreateOneOff(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateOneOffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	obligation, err := h.obligationUC.CreateOneOff(r.Context(), input)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create obligation", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.OneOffFromDomain(obligation))
}

// ListOneOffs lists one-off obligations.
func (h *ObligationHandler) ListOneOffs(w http.ResponseWriter, r *http.Request) {
	obligations, err := h.obligationUC.ListOneOffs(r.Context(), usecase.ListObligationsInput{
		Limit:  parseIntQuery(r, "limit", 50),
		Offset: parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list obligations", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListOneOffsResponse{
		Obligations: dto.OneOffsFromDomain(obligations),
		Total:       int64(len(obligations)),
	})
}

// DeleteOneOff removes a one-off obligation.
func (h *ObligationHandler) DeleteOneOff(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing obligation ID", "")
		return
	}

	if err := h.obligationUC.DeleteOneOff(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete obligation", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CreateRecurring creates a new recurring obligation.
func (h *ObligationHandler) CreateRecurring(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateRecurringRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	obligation, err := h.obligationUC.CreateRecurring(r.Context(), input)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create obligation", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.RecurringFromDomain(obligation))
}

// ListRecurring lists recurring obligations.
func (h *ObligationHandler) ListRecurring(w http.ResponseWriter, r *http.Request) {
	obligations, err := h.obligationUC.ListRecurring(r.Context(), usecase.ListObligationsInput{
		Limit:  parseIntQuery(r, "limit", 50),
		Offset: parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list obligations", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListRecurringResponse{
		Obligations: dto.RecurringsFromDomain(obligations),
		Total:       int64(len(obligations)),
	})
}

// DeleteRecurring removes a recurring obligation.
func (h *ObligationHandler) DeleteRecurring(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing obligation ID", "")
		return
	}

	if err := h.obligationUC.DeleteRecurring(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete obligation", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Import stores a batch of historical bank records.
func (h *ObligationHandler) Import(w http.ResponseWriter, r *http.Request) {
	var req dto.ImportTransactionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	inputs, err := req.ToUseCaseInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	imported, err := h.obligationUC.ImportTransactions(r.Context(), inputs)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to import transactions", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.ImportedBatchFromDomain(imported))
}

// MarkSettled records settlement state for one occurrence of a recurring
// obligation.
func (h *ObligationHandler) MarkSettled(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing obligation ID", "")
		return
	}

	var req dto.MarkSettledRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := req.ToUseCaseInput(id)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	record, err := h.obligationUC.MarkSettled(r.Context(), input)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to record settlement", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.SettlementFromDomain(record))
}

// ListSettlements lists settlement records for one recurring obligation.
func (h *ObligationHandler) ListSettlements(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing obligation ID", "")
		return
	}

	records, err := h.obligationUC.ListSettlements(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list settlements", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SettlementsFromDomain(records))
}
