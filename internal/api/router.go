package api

import (
	"field-service-scheduler/internal/api/handlers"
	"field-service-scheduler/internal/platform/metrics"
	"field-service-scheduler/internal/ports"
	"field-service-scheduler/internal/services"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

// RouterOptions tunes scheduling and admission for POST /schedules.
type RouterOptions struct {
	Schedule services.ScheduleOptions
	// Requests per second and burst; a non-positive limit disables limiting.
	ScheduleRateLimit float64
	ScheduleRateBurst int
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(repo ports.RosterRepository, provider ports.DistanceMatrixProvider, opts RouterOptions) http.Handler {
	mux := http.NewServeMux()

	rosterHandler := &handlers.RosterHandler{Repo: repo}
	scheduleHandler := &handlers.ScheduleHandler{
		Repo:     repo,
		Provider: provider,
		Options:  opts.Schedule,
	}

	var schedules http.Handler = http.HandlerFunc(scheduleHandler.Create)
	if opts.ScheduleRateLimit > 0 {
		burst := max(opts.ScheduleRateBurst, 1)
		schedules = rateLimitMiddleware(rate.NewLimiter(rate.Limit(opts.ScheduleRateLimit), burst), schedules)
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/engineers", rosterHandler.Engineers)
	mux.HandleFunc("/jobs", rosterHandler.Jobs)
	mux.Handle("/schedules", schedules)
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	return requestIDMiddleware(loggingMiddleware(mux))
}
