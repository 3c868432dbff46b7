package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/iho/cashflow/internal/domain"
	"github.com/iho/cashflow/internal/forecast"
	"github.com/iho/cashflow/internal/infrastructure/metrics"
)

// ForecastUseCase handles forecast business logic: it assembles the stored
// obligations into generators, loads opening balances and settlement state,
// and runs the forecast engine over the requested window.
type ForecastUseCase struct {
	obligationRepo ObligationRepository
	balanceRepo    OpeningBalanceRepository
	settlementRepo SettlementRepository
	cache          Cache
	cacheTTL       time.Duration
	metrics        *metrics.Metrics
}

// NewForecastUseCase creates a new ForecastUseCase. cache may be nil to
// disable result caching, and m may be nil to disable instrumentation.
func NewForecastUseCase(
	obligationRepo ObligationRepository,
	balanceRepo OpeningBalanceRepository,
	settlementRepo SettlementRepository,
	cache Cache,
	cacheTTL time.Duration,
	m *metrics.Metrics,
) *ForecastUseCase {
	return &ForecastUseCase{
		obligationRepo: obligationRepo,
		balanceRepo:    balanceRepo,
		settlementRepo: settlementRepo,
		cache:          cache,
		cacheTTL:       cacheTTL,
		metrics:        m,
	}
}

// ForecastInput represents input for computing a forecast.
type ForecastInput struct {
	Start  time.Time
	End    time.Time
	AsOf   time.Time // zero means today
	Method string
}

// ForecastResult represents a computed forecast.
type ForecastResult struct {
	Start    time.Time          `json:"start"`
	End      time.Time          `json:"end"`
	AsOf     time.Time          `json:"as_of"`
	Method   string             `json:"method"`
	Accounts forecast.SeriesSet `json:"accounts"`
}

// Forecast computes per-account balance series over [Start, End]. The merge
// method is validated before any repository work so a misconfiguration fails
// fast.
func (uc *ForecastUseCase) Forecast(ctx context.Context, input ForecastInput) (*ForecastResult, error) {
	method, err := forecast.ParseMergeMethod(input.Method)
	if err != nil {
		return nil, err
	}

	if err := domain.ValidateRange(input.Start, input.End); err != nil {
		return nil, err
	}

	start := domain.DateOf(input.Start)
	end := domain.DateOf(input.End)

	asOf := input.AsOf
	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}
	asOf = domain.DateOf(asOf)

	computeStart := time.Now()

	key := forecastCacheKey(start, end, asOf, method)
	if cached := uc.cacheGet(ctx, key); cached != nil {
		if uc.metrics != nil {
			uc.metrics.ForecastCacheHits.Inc()
		}
		return cached, nil
	}
	if uc.metrics != nil {
		uc.metrics.ForecastCacheMiss.Inc()
	}

	generators, err := uc.loadGenerators(ctx, start, end)
	if err != nil {
		return nil, err
	}

	settled, err := uc.loadSettlements(ctx)
	if err != nil {
		return nil, err
	}

	opening, err := uc.balanceRepo.OpeningBalances(ctx, start)
	if err != nil {
		return nil, err
	}

	engine := forecast.NewEngine(opening, asOf, settled, method)
	accounts, err := engine.Forecast(ctx, generators, start, end)
	if err != nil {
		return nil, err
	}

	result := &ForecastResult{
		Start:    start,
		End:      end,
		AsOf:     asOf,
		Method:   string(method),
		Accounts: accounts,
	}

	uc.cacheSet(ctx, key, result)

	if uc.metrics != nil {
		uc.metrics.ForecastsComputed.Inc()
		uc.metrics.ForecastDuration.Observe(time.Since(computeStart).Seconds())
	}

	return result, nil
}

// loadGenerators materializes every stored obligation as a transaction
// generator. Recurring obligations flagged for settlement tracking are wrapped
// so the engine also produces their unpaid adjustment.
func (uc *ForecastUseCase) loadGenerators(ctx context.Context, start, end time.Time) ([]domain.TransactionGenerator, error) {
	// Forecasts read the full obligation set, so ask for the maximum page.
	limit, offset, _ := domain.ValidatePagination(10000, 0)

	oneOffs, err := uc.obligationRepo.ListOneOffs(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	recurring, err := uc.obligationRepo.ListRecurring(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	imported, err := uc.obligationRepo.ListImported(ctx, start, end)
	if err != nil {
		return nil, err
	}

	generators := make([]domain.TransactionGenerator, 0, len(oneOffs)+len(recurring)+len(imported))
	for _, o := range oneOffs {
		generators = append(generators, o)
	}
	for _, r := range recurring {
		if r.TrackSettlement {
			generators = append(generators, &domain.UnpaidRecurring{Recurring: *r})
			continue
		}
		generators = append(generators, r)
	}
	for _, i := range imported {
		generators = append(generators, i)
	}

	return generators, nil
}

func (uc *ForecastUseCase) loadSettlements(ctx context.Context) (domain.SettlementSet, error) {
	records, err := uc.settlementRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	flat := make([]domain.SettlementRecord, 0, len(records))
	for _, r := range records {
		flat = append(flat, *r)
	}

	return domain.BuildSettlementSet(flat), nil
}

func forecastCacheKey(start, end, asOf time.Time, method forecast.MergeMethod) string {
	return fmt.Sprintf("%s:%s:%s:%s",
		start.Format("2006-01-02"), end.Format("2006-01-02"), asOf.Format("2006-01-02"), method)
}

// Cache failures never fail a forecast; the result is recomputed instead.
func (uc *ForecastUseCase) cacheGet(ctx context.Context, key string) *ForecastResult {
	if uc.cache == nil {
		return nil
	}

	data, err := uc.cache.Get(ctx, key)
	if err != nil || data == nil {
		return nil
	}

	var result ForecastResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil
	}

	return &result
}

func (uc *ForecastUseCase) cacheSet(ctx context.Context, key string, result *ForecastResult) {
	if uc.cache == nil {
		return
	}

	data, err := json.Marshal(result)
	if err != nil {
		return
	}

	_ = uc.cache.Set(ctx, key, data, uc.cacheTTL)
}
