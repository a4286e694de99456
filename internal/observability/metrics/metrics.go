package metrics

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

type Outcome string

const (
	Success                  Outcome       = "success"
	Error                    Outcome       = "error"
	MetricRequestTimeout     time.Duration = 5 * time.Second
	MetricRequestIdleTimeout time.Duration = 10 * time.Second
)

func (O Outcome) String() string {
	return string(O)
}

var (
	once                           sync.Once
	metricsRouter                  *chi.Mux
	transferLatency                *prometheus.HistogramVec
	queueSendErrorCounter          prometheus.Counter
	clientRequestDurationHistogram *prometheus.HistogramVec
	pollerDurationHistogram        *prometheus.HistogramVec
	ledgerOperationDuration        *prometheus.HistogramVec
	compensationCounter            *prometheus.CounterVec
	totalStakedGauge               prometheus.Gauge
	rewardPerUnitGauge             prometheus.Gauge
	accountsGauge                  *prometheus.GaugeVec
	invariantViolationCounter      *prometheus.CounterVec
	dbLatency                      *prometheus.HistogramVec
)

// Init initializes the metrics package.
func Init(metricsPort int) {
	once.Do(func() {
		initMetricsRouter(metricsPort)
		registerMetrics()
	})
}

// InitCollectors registers the collectors without starting the metrics server.
// Used by one-shot commands and tests.
func InitCollectors() {
	once.Do(registerMetrics)
}

// initMetricsRouter initializes the metrics router.
func initMetricsRouter(metricsPort int) {
	metricsRouter = chi.NewRouter()
	metricsRouter.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})
	// Create a custom server with timeout settings
	metricsAddr := fmt.Sprintf(":%d", metricsPort)
	server := &http.Server{
		Addr:         metricsAddr,
		Handler:      metricsRouter,
		ReadTimeout:  MetricRequestTimeout,
		WriteTimeout: MetricRequestTimeout,
		IdleTimeout:  MetricRequestIdleTimeout,
	}

	// Start the server in a separate goroutine
	go func() {
		log.Printf("Starting metrics server on %s", metricsAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msgf("Error starting metrics server on %s", metricsAddr)
		}
	}()
}

// registerMetrics initializes and register the Prometheus metrics.
func registerMetrics() {
	defaultHistogramBucketsSeconds := []float64{0.1, 0.5, 1, 2.5, 5, 10, 30}

	// client requests are the ones sending to other service
	clientRequestDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "client_request_duration_seconds",
			Help:    "Histogram of outgoing client request durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"baseurl", "method", "path", "status"},
	)

	transferLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "transfer_latency_seconds",
			Help:    "Histogram of token transfer durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"kind", "status"},
	)

	// add a counter for the number of errors from the fail to push message into queue
	queueSendErrorCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "queue_send_error_count",
			Help: "The total number of errors when sending messages to the queue",
		},
	)

	pollerDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "poller_duration_seconds",
			Help:    "Histogram of poller durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"type", "status"},
	)

	ledgerOperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ledger_operation_duration_seconds",
			Help:    "Ledger operation duration in seconds, transfer and commit included.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"operation", "status"},
	)

	compensationCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_compensation_count",
			Help: "Number of reverse transfers and ledger rollbacks issued after a half-applied operation",
		},
		[]string{"kind", "status"},
	)

	totalStakedGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "pool_total_staked",
			Help: "Total staked in the pool at the last invariant check",
		},
	)

	rewardPerUnitGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "pool_reward_per_unit_stored",
			Help: "Scaled reward per unit accumulator at the last invariant check",
		},
	)

	accountsGauge = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "ledger_accounts_count",
			Help: "Number of account records, all or with a positive stake",
		},
		[]string{"type"},
	)

	invariantViolationCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "invariant_violation_count",
			Help: "Number of failed ledger invariant checks",
		},
		[]string{"check"},
	)

	dbLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "db_latency_seconds",
			Help: "DB latency in seconds splitted by method and execution status",
		},
		[]string{"method", "status"},
	)

	prometheus.MustRegister(
		transferLatency,
		queueSendErrorCounter,
		clientRequestDurationHistogram,
		pollerDurationHistogram,
		ledgerOperationDuration,
		compensationCounter,
		totalStakedGauge,
		rewardPerUnitGauge,
		accountsGauge,
		invariantViolationCounter,
		dbLatency,
	)
}

func RecordTransferLatency(d time.Duration, kind string, failure bool) {
	status := Success
	if failure {
		status = Error
	}

	transferLatency.WithLabelValues(kind, status.String()).Observe(d.Seconds())
}

func RecordDbLatency(d time.Duration, method string, failure bool) {
	status := Success
	if failure {
		status = Error
	}

	dbLatency.WithLabelValues(method, status.String()).Observe(d.Seconds())
}

func RecordLedgerOperation(d time.Duration, operation string, failure bool) {
	status := Success
	if failure {
		status = Error
	}

	ledgerOperationDuration.WithLabelValues(operation, status.String()).Observe(d.Seconds())
}

// IncCompensation counts a reverse transfer or a ledger rollback; failure means
// the compensation itself did not go through.
func IncCompensation(kind string, failure bool) {
	status := Success
	if failure {
		status = Error
	}

	compensationCounter.WithLabelValues(kind, status.String()).Inc()
}

// RecordPoolState exports the pool snapshot. The accumulator may exceed
// float64 precision, the gauge is informational only.
func RecordPoolState(totalStaked uint64, rewardPerUnit float64, accounts, stakedAccounts uint64) {
	totalStakedGauge.Set(float64(totalStaked))
	rewardPerUnitGauge.Set(rewardPerUnit)
	accountsGauge.WithLabelValues("all").Set(float64(accounts))
	accountsGauge.WithLabelValues("staked").Set(float64(stakedAccounts))
}

func IncInvariantViolation(check string) {
	invariantViolationCounter.WithLabelValues(check).Inc()
}

// StartClientRequestDurationTimer starts a timer to measure outgoing client request duration.
func StartClientRequestDurationTimer(baseUrl, method, path string) func(statusCode int) {
	startTime := time.Now()
	return func(statusCode int) {
		duration := time.Since(startTime).Seconds()
		clientRequestDurationHistogram.WithLabelValues(
			baseUrl,
			method,
			path,
			fmt.Sprintf("%d", statusCode),
		).Observe(duration)
	}
}

func RecordQueueSendError() {
	queueSendErrorCounter.Inc()
}
