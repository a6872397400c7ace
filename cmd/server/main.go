package main

import (
	"context"
	"field-service-scheduler/internal/api"
	"field-service-scheduler/internal/app"
	"field-service-scheduler/internal/config"
	"field-service-scheduler/internal/platform/metrics"
	"field-service-scheduler/internal/services"
	"log"
	"net/http"
	"time"
)

// main is the application composition root.
// It wires the configured roster and distance adapters behind ports and starts the HTTP server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	sources, err := app.OpenSources(ctx, cfg)
	cancel()
	if err != nil {
		log.Fatal(err)
	}
	defer sources.Close()

	metrics.RegisterDefault()

	router := api.NewRouter(sources.Roster, sources.Distances, api.RouterOptions{
		Schedule: services.ScheduleOptions{
			MaxRouteDestinations: cfg.MaxRouteDestinations,
			Concurrency:          cfg.RouteConcurrency,
		},
		ScheduleRateLimit: cfg.ScheduleRateLimit,
		ScheduleRateBurst: cfg.ScheduleRateBurst,
	})

	// Exhaustive route search at the destination ceiling takes seconds, not minutes.
	log.Printf("Server listening addr=:%s", cfg.Port)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
