package handler

import (
	"context"
	"net/http"

	"github.com/iho/cashflow/internal/adapter/http/dto"
	"github.com/iho/cashflow/internal/usecase"
)

// ForecastService defines the behavior needed by ForecastHandler.
type ForecastService interface {
	Forecast(ctx context.Context, input usecase.ForecastInput) (*usecase.ForecastResult, error)
}

// ForecastHandler handles forecast HTTP requests.
type ForecastHandler struct {
	forecastUC    ForecastService
	defaultMethod string
}

// NewForecastHandler creates a new ForecastHandler. defaultMethod fills the
// merge method when the request omits it.
func NewForecastHandler(forecastUC ForecastService, defaultMethod string) *ForecastHandler {
	return &ForecastHandler{
		forecastUC:    forecastUC,
		defaultMethod: defaultMethod,
	}
}

// Get computes the forecast for the requested window.
func (h *ForecastHandler) Get(w http.ResponseWriter, r *http.Request) {
	query := dto.ForecastQuery{
		Start:  r.URL.Query().Get("start"),
		End:    r.URL.Query().Get("end"),
		AsOf:   r.URL.Query().Get("as_of"),
		Method: r.URL.Query().Get("method"),
	}
	if query.Method == "" {
		query.Method = h.defaultMethod
	}

	input, err := query.ToUseCaseInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid forecast query", err.Error())
		return
	}

	result, err := h.forecastUC.Forecast(r.Context(), input)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to compute forecast", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ForecastFromResult(result))
}
