package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Forecast metrics
	ForecastsComputed prometheus.Counter
	ForecastDuration  prometheus.Histogram
	ForecastCacheHits prometheus.Counter
	ForecastCacheMiss prometheus.Counter
	ForecastErrors    *prometheus.CounterVec

	// Obligation metrics
	ObligationsCreated  *prometheus.CounterVec
	ObligationsDeleted  *prometheus.CounterVec
	TransactionsQueued  prometheus.Histogram
	SettlementsRecorded prometheus.Counter

	// Balance metrics
	BalancesRecorded prometheus.Counter

	// Database metrics
	DBQueries     *prometheus.CounterVec
	DBDuration    *prometheus.HistogramVec
	DBConnections prometheus.Gauge
	DBErrors      *prometheus.CounterVec

	// Redis metrics
	RedisOperations *prometheus.CounterVec
	RedisErrors     *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		// Forecast metrics
		ForecastsComputed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "cashflow_forecasts_computed_total",
			Help: "Total number of forecasts computed",
		}),
		ForecastDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "cashflow_forecast_duration_seconds",
			Help:    "Duration of forecast computations",
			Buckets: prometheus.DefBuckets,
		}),
		ForecastCacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "cashflow_forecast_cache_hits_total",
			Help: "Total number of forecasts served from cache",
		}),
		ForecastCacheMiss: promauto.NewCounter(prometheus.CounterOpts{
			Name: "cashflow_forecast_cache_misses_total",
			Help: "Total number of forecast cache misses",
		}),
		ForecastErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cashflow_forecast_errors_total",
				Help: "Total number of forecast errors by type",
			},
			[]string{"error_type"},
		),

		// Obligation metrics
		ObligationsCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cashflow_obligations_created_total",
				Help: "Total obligations created by kind",
			},
			[]string{"kind"},
		),
		ObligationsDeleted: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cashflow_obligations_deleted_total",
				Help: "Total obligations deleted by kind",
			},
			[]string{"kind"},
		),
		TransactionsQueued: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "cashflow_imported_batch_size",
			Help:    "Number of rows per imported transaction batch",
			Buckets: []float64{1, 10, 50, 100, 500, 1000, 5000},
		}),
		SettlementsRecorded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "cashflow_settlements_recorded_total",
			Help: "Total settlement records written",
		}),

		// Balance metrics
		BalancesRecorded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "cashflow_balances_recorded_total",
			Help: "Total account balance observations recorded",
		}),

		// Database metrics
		DBQueries: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cashflow_db_queries_total",
				Help: "Total database queries",
			},
			[]string{"operation", "table"},
		),
		DBDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "cashflow_db_query_duration_seconds",
				Help:    "Database query duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation", "table"},
		),
		DBConnections: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "cashflow_db_connections",
			Help: "Current number of database connections",
		}),
		DBErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cashflow_db_errors_total",
				Help: "Total database errors",
			},
			[]string{"operation"},
		),

		// Redis metrics
		RedisOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cashflow_redis_operations_total",
				Help: "Total Redis operations",
			},
			[]string{"operation"},
		),
		RedisErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cashflow_redis_errors_total",
				Help: "Total Redis errors",
			},
			[]string{"operation"},
		),
	}
}
