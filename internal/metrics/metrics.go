// Package metrics provides Prometheus metrics collection for the planner.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/push"
)

var (
	// SolvesTotal tracks solver invocations by outcome status.
	SolvesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "planner_solves_total",
			Help: "Total number of solver invocations",
		},
		[]string{"status"},
	)

	// SolveDuration tracks the wall-clock duration of solver invocations.
	SolveDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "planner_solve_duration_seconds",
			Help:    "Solver invocation duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 5.0, 30.0},
		},
	)
)

// RecordSolve records metrics for one solver invocation.
func RecordSolve(duration time.Duration, status string) {
	SolveDuration.Observe(duration.Seconds())
	SolvesTotal.WithLabelValues(status).Inc()
}

// Push delivers the default registry to a Pushgateway. The planner is a
// one-shot process, so there is nothing for Prometheus to scrape;
// pushing after the run is the only delivery path.
func Push(gatewayURL string) error {
	return push.New(gatewayURL, "production_planner").
		Gatherer(prometheus.DefaultGatherer).
		Push()
}
