// Package observability provides Prometheus metrics for fetch runs.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultNamespace is used when NewMetrics is given an empty namespace.
const DefaultNamespace = "nft_sales_fetcher"

// Metrics holds all Prometheus metrics for one process.
// Each instance owns its registry so runs and tests do not share state.
type Metrics struct {
	registry *prometheus.Registry

	// Subgraph metrics
	RequestAttempts *prometheus.CounterVec
	RequestLatency  prometheus.Histogram

	// Run metrics
	RunsTotal    *prometheus.CounterVec
	RunDuration  prometheus.Histogram
	SalesWritten prometheus.Counter

	// Health metrics
	LatestSaleTimestamp prometheus.Gauge
	LastSuccessfulRun   prometheus.Gauge
}

// NewMetrics creates a new Metrics instance with all metrics registered.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = DefaultNamespace
	}

	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		RequestAttempts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "subgraph",
			Name:      "request_attempts_total",
			Help:      "Total number of subgraph request attempts by result",
		}, []string{"result"}),
		RequestLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "subgraph",
			Name:      "request_latency_seconds",
			Help:      "Subgraph request attempt latency in seconds",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),

		RunsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "run",
			Name:      "total",
			Help:      "Total number of fetch runs by outcome",
		}, []string{"outcome"}),
		RunDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "run",
			Name:      "duration_seconds",
			Help:      "Fetch run duration in seconds",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 30, 60, 120},
		}),
		SalesWritten: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "run",
			Name:      "sales_written_total",
			Help:      "Total number of sale records written to the output file",
		}),

		LatestSaleTimestamp: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "health",
			Name:      "latest_sale_timestamp",
			Help:      "Unix timestamp of the newest sale written",
		}),
		LastSuccessfulRun: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "health",
			Name:      "last_successful_run_timestamp",
			Help:      "Unix timestamp of last successful run",
		}),
	}
}

// ObserveAttempt records one subgraph request attempt.
func (m *Metrics) ObserveAttempt(_ int, d time.Duration, err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	m.RequestAttempts.WithLabelValues(result).Inc()
	m.RequestLatency.Observe(d.Seconds())
}

// RecordRun records a finished run with its outcome label.
func (m *Metrics) RecordRun(outcome string, d time.Duration) {
	m.RunsTotal.WithLabelValues(outcome).Inc()
	m.RunDuration.Observe(d.Seconds())
}

// RecordSalesWritten records a successful write of count sales.
func (m *Metrics) RecordSalesWritten(count int, latest time.Time) {
	m.SalesWritten.Add(float64(count))
	m.LatestSaleTimestamp.Set(float64(latest.Unix()))
	m.LastSuccessfulRun.SetToCurrentTime()
}

// WriteTextfile writes all metrics in text exposition format to path,
// for the node_exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
