package main

import (
	"bytes"
	"context"
	"field-service-scheduler/internal/adapters/dataset"
	"field-service-scheduler/internal/config"
	"field-service-scheduler/internal/report"
	"field-service-scheduler/internal/services"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// scheduler runs one scheduling pass over a dataset file (or the built-in
// sample) and prints the report.
func main() {
	dataPath := flag.String("data", "", "dataset file (JSON or YAML); empty uses the built-in sample")
	format := flag.String("format", "text", "output format: text, json or csv")
	outPath := flag.String("out", "", "output file; empty writes to stdout")
	timeout := flag.Duration("timeout", time.Minute, "abort the run after this long")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	if err := run(*dataPath, *format, *outPath, *timeout); err != nil {
		log.Fatal(err)
	}
}

func run(dataPath, format, outPath string, timeout time.Duration) error {
	if err := report.CheckFormat(format); err != nil {
		return err
	}

	ds := dataset.Sample()
	if dataPath != "" {
		var err error
		if ds, err = dataset.Load(dataPath); err != nil {
			return err
		}
	}

	maxDest, err := config.GetInt("MAX_ROUTE_DESTINATIONS", services.DefaultMaxDestinations)
	if err != nil {
		return err
	}
	concurrency, err := config.GetInt("ROUTE_CONCURRENCY", 0)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	res, err := services.PlanSchedule(ctx, services.PlanScheduleRequest{
		Options: services.ScheduleOptions{MaxRouteDestinations: maxDest, Concurrency: concurrency},
	}, ds, ds)
	if err != nil {
		return err
	}

	// Render fully before touching the output so a failed run leaves no file behind.
	var buf bytes.Buffer
	if err := report.Write(&buf, format, report.Build(res.Engineers, res.Jobs, res.Schedule)); err != nil {
		return err
	}

	if outPath == "" {
		_, err = buf.WriteTo(os.Stdout)
		return err
	}
	if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write output %q: %w", outPath, err)
	}
	return nil
}
