package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry is the dedicated Prometheus registry for the scheduler.
	Registry = prometheus.NewRegistry()

	// HTTPRequests counts requests by method, path, and status.
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
		[]string{"method", "path", "status"},
	)
	// HTTPDuration records request durations in seconds.
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"method", "path", "status"},
	)

	// ScheduleRuns counts scheduling runs by outcome (ok, error).
	ScheduleRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "schedule_runs_total", Help: "Scheduling runs by outcome."},
		[]string{"outcome"},
	)
	// ScheduleDuration tracks end-to-end scheduling run latency.
	ScheduleDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{Name: "schedule_run_duration_seconds", Help: "Scheduling run duration in seconds.", Buckets: []float64{.001, .01, .05, .1, .5, 1, 2, 5, 10, 30}},
	)
	// JobsAssigned and JobsUnassigned count job outcomes across runs.
	JobsAssigned = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "jobs_assigned_total", Help: "Jobs assigned to an engineer."},
	)
	JobsUnassigned = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "jobs_unassigned_total", Help: "Jobs with no capable engineer."},
	)
	// RouteFailures counts per-engineer routing failures.
	RouteFailures = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "route_failures_total", Help: "Per-engineer route optimization failures."},
	)
)

var regOnce sync.Once

// RegisterDefault registers all collectors on Registry. Safe to call repeatedly.
func RegisterDefault() {
	regOnce.Do(func() {
		Registry.MustRegister(HTTPRequests)
		Registry.MustRegister(HTTPDuration)
		Registry.MustRegister(ScheduleRuns)
		Registry.MustRegister(ScheduleDuration)
		Registry.MustRegister(JobsAssigned)
		Registry.MustRegister(JobsUnassigned)
		Registry.MustRegister(RouteFailures)
		// Go/process collectors on our registry
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}
