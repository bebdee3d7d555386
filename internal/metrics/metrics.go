package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	// Expenses
	ExpensesCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "expenses_created_total",
			Help: "Expenses persisted through the API",
		},
		[]string{"currency"},
	)
	ExpenseCreateFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "expenses_create_failed_total",
			Help: "Expense creations that failed in the store",
		},
	)

	// Seeding
	SeedRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seed_runs_total",
			Help: "Demo data seeding attempts",
		},
		[]string{"result"}, // ok|error
	)

	WorkerQueueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "worker_queue_depth",
			Help: "Current worker queue depth",
		},
	)

	initOnce sync.Once
)

// /metrics endpoint handler
var Handler = promhttp.Handler

// Init registers the collectors with the default registry. Safe to call more than once.
func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(RequestsTotal, ExpensesCreated, ExpenseCreateFailed, SeedRuns, WorkerQueueDepth)
	})
}
