package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/cashflow/internal/adapter/http/dto"
	"github.com/iho/cashflow/internal/domain"
	"github.com/iho/cashflow/internal/forecast"
	"github.com/iho/cashflow/internal/usecase"
)

type forecastServiceStub struct {
	forecastFn func(ctx context.Context, input usecase.ForecastInput) (*usecase.ForecastResult, error)
}

func (s *forecastServiceStub) Forecast(ctx context.Context, input usecase.ForecastInput) (*usecase.ForecastResult, error) {
	return s.forecastFn(ctx, input)
}

func TestForecastHandler_Get_Success(t *testing.T) {
	var captured usecase.ForecastInput

	handler := NewForecastHandler(&forecastServiceStub{
		forecastFn: func(ctx context.Context, input usecase.ForecastInput) (*usecase.ForecastResult, error) {
			captured = input
			return &usecase.ForecastResult{
				Start:  input.Start,
				End:    input.End,
				AsOf:   input.AsOf,
				Method: input.Method,
				Accounts: forecast.SeriesSet{
					"acc-checking": {
						{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Balance: decimal.NewFromInt(1000)},
						{Date: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), Balance: decimal.NewFromInt(800)},
					},
				},
			}, nil
		},
	}, "sum")

	req := httptest.NewRequest(http.MethodGet, "/forecast?start=2024-01-01&end=2024-01-31&as_of=2024-01-10", nil)
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	if captured.Method != "sum" {
		t.Errorf("expected default method sum, got %q", captured.Method)
	}
	if !captured.Start.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("expected parsed start, got %s", captured.Start)
	}

	var resp dto.ForecastResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	points := resp.Accounts["acc-checking"]
	if len(points) != 2 || points[1].Date != "2024-01-15" {
		t.Fatalf("unexpected series: %+v", points)
	}
	if !points[1].Balance.Equal(decimal.NewFromInt(800)) {
		t.Errorf("expected balance 800, got %s", points[1].Balance)
	}
}

func TestForecastHandler_Get_ExplicitMethodWins(t *testing.T) {
	var captured usecase.ForecastInput

	handler := NewForecastHandler(&forecastServiceStub{
		forecastFn: func(ctx context.Context, input usecase.ForecastInput) (*usecase.ForecastResult, error) {
			captured = input
			return &usecase.ForecastResult{Method: input.Method}, nil
		},
	}, "sum")

	req := httptest.NewRequest(http.MethodGet, "/forecast?start=2024-01-01&end=2024-01-31&method=override", nil)
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if captured.Method != "override" {
		t.Errorf("expected explicit method override, got %q", captured.Method)
	}
}

func TestForecastHandler_Get_BadDate(t *testing.T) {
	handler := NewForecastHandler(&forecastServiceStub{
		forecastFn: func(ctx context.Context, input usecase.ForecastInput) (*usecase.ForecastResult, error) {
			t.Fatal("Forecast should not be called on a malformed date")
			return nil, nil
		},
	}, "sum")

	req := httptest.NewRequest(http.MethodGet, "/forecast?start=01-01-2024&end=2024-01-31", nil)
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestForecastHandler_Get_DomainErrorsMapToStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "inverted range", err: fmt.Errorf("wrapped: %w", domain.ErrInvalidRange), want: http.StatusBadRequest},
		{name: "unknown merge method", err: domain.ErrUnknownMergeMethod, want: http.StatusBadRequest},
		{name: "unexpected failure", err: fmt.Errorf("connection reset"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewForecastHandler(&forecastServiceStub{
				forecastFn: func(ctx context.Context, input usecase.ForecastInput) (*usecase.ForecastResult, error) {
					return nil, tt.err
				},
			}, "sum")

			req := httptest.NewRequest(http.MethodGet, "/forecast?start=2024-01-01&end=2024-01-31", nil)
			rec := httptest.NewRecorder()

			handler.Get(rec, req)

			if rec.Code != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, rec.Code)
			}
		})
	}
}
