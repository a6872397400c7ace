package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	SourceSample   = "sample"
	SourceFile     = "file"
	SourcePostgres = "postgres"
	SourceDataset  = "dataset"
	SourceRedis    = "redis"
)

// Config holds process settings read from the environment (and .env when present).
type Config struct {
	Port string

	// Where engineers and jobs come from: sample, file or postgres.
	DataSource  string
	DatasetPath string
	DatabaseURL string

	// Where distances come from: dataset (same as DataSource), postgres or redis.
	DistanceSource string
	RedisURL       string
	RedisKeyPrefix string

	MaxRouteDestinations int
	RouteConcurrency     int

	// Requests per second and burst allowed on POST /schedules; 0 disables limiting.
	ScheduleRateLimit float64
	ScheduleRateBurst int
}

// Load reads .env (missing file is not an error) and then the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg := Config{
		Port:           Get("PORT", "8080"),
		DataSource:     strings.ToLower(Get("DATA_SOURCE", SourceSample)),
		DatasetPath:    Get("DATASET_PATH", "data/dataset.yaml"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		DistanceSource: strings.ToLower(Get("DISTANCE_SOURCE", SourceDataset)),
		RedisURL:       Get("REDIS_URL", "redis://localhost:6379/0"),
		RedisKeyPrefix: Get("REDIS_KEY_PREFIX", "distance:"),
	}

	var err error
	if cfg.MaxRouteDestinations, err = GetInt("MAX_ROUTE_DESTINATIONS", 10); err != nil {
		return Config{}, err
	}
	if cfg.RouteConcurrency, err = GetInt("ROUTE_CONCURRENCY", 0); err != nil {
		return Config{}, err
	}
	if cfg.ScheduleRateLimit, err = GetFloat("SCHEDULE_RATE_LIMIT", 2); err != nil {
		return Config{}, err
	}
	if cfg.ScheduleRateBurst, err = GetInt("SCHEDULE_RATE_BURST", 4); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks source selections and their required settings.
func (c Config) Validate() error {
	switch c.DataSource {
	case SourceSample:
	case SourceFile:
		if strings.TrimSpace(c.DatasetPath) == "" {
			return fmt.Errorf("config: DATASET_PATH is required when DATA_SOURCE=%s", SourceFile)
		}
	case SourcePostgres:
		if strings.TrimSpace(c.DatabaseURL) == "" {
			return fmt.Errorf("config: DATABASE_URL is required when DATA_SOURCE=%s", SourcePostgres)
		}
	default:
		return fmt.Errorf("config: unknown DATA_SOURCE %q", c.DataSource)
	}

	switch c.DistanceSource {
	case SourceDataset, SourceRedis:
	case SourcePostgres:
		if strings.TrimSpace(c.DatabaseURL) == "" {
			return fmt.Errorf("config: DATABASE_URL is required when DISTANCE_SOURCE=%s", SourcePostgres)
		}
	default:
		return fmt.Errorf("config: unknown DISTANCE_SOURCE %q", c.DistanceSource)
	}

	if c.DistanceSource == SourceDataset && c.DataSource == SourcePostgres {
		return fmt.Errorf("config: DISTANCE_SOURCE=%s needs a file or sample DATA_SOURCE", SourceDataset)
	}

	if c.MaxRouteDestinations < 0 || c.RouteConcurrency < 0 {
		return fmt.Errorf("config: MAX_ROUTE_DESTINATIONS and ROUTE_CONCURRENCY must be non-negative")
	}
	// A zero rate turns the /schedules limiter off.
	if c.ScheduleRateLimit < 0 {
		return fmt.Errorf("config: SCHEDULE_RATE_LIMIT must be >= 0")
	}
	if c.ScheduleRateLimit > 0 && c.ScheduleRateBurst < 1 {
		return fmt.Errorf("config: SCHEDULE_RATE_BURST must be >= 1 when SCHEDULE_RATE_LIMIT is set")
	}
	return nil
}

// Get returns the environment value for key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func GetInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("config: %s=%q: %w", key, v, err)
	}
	return n, nil
}

func GetFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, fmt.Errorf("config: %s=%q: %w", key, v, err)
	}
	return f, nil
}
