package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	reportsGenerated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "attendance",
			Name:      "reports_generated_total",
			Help:      "Count of attendance reports generated by output format.",
		},
		[]string{"format"},
	)

	reportsFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "attendance",
			Name:      "reports_failed_total",
			Help:      "Count of generation requests rejected or failed, by stage.",
		},
		[]string{"stage"},
	)

	employeesProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "attendance",
			Name:      "employees_processed_total",
			Help:      "Count of employee sheets generated.",
		},
	)

	generationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "attendance",
			Name:      "generation_duration_seconds",
			Help:      "Time spent generating and rendering one report.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"format"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(reportsGenerated, reportsFailed, employeesProcessed, generationDuration)
	})
}

func ObserveReport(format string, employees int, took time.Duration) {
	reportsGenerated.WithLabelValues(format).Inc()
	employeesProcessed.Add(float64(employees))
	generationDuration.WithLabelValues(format).Observe(took.Seconds())
}

func IncFailed(stage string) {
	reportsFailed.WithLabelValues(stage).Inc()
}
