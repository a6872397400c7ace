package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetFallback(t *testing.T) {
	t.Setenv("SCHED_TEST_KEY", "")
	require.Equal(t, "dflt", Get("SCHED_TEST_KEY", "dflt"))

	t.Setenv("SCHED_TEST_KEY", "set")
	require.Equal(t, "set", Get("SCHED_TEST_KEY", "dflt"))
}

func TestGetIntInvalid(t *testing.T) {
	t.Setenv("SCHED_TEST_INT", "ten")
	_, err := GetInt("SCHED_TEST_INT", 1)
	require.Error(t, err)

	t.Setenv("SCHED_TEST_INT", " 7 ")
	n, err := GetInt("SCHED_TEST_INT", 1)
	require.NoError(t, err)
	require.Equal(t, 7, n)
}

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{
		"PORT", "DATA_SOURCE", "DATASET_PATH", "DATABASE_URL", "DISTANCE_SOURCE",
		"MAX_ROUTE_DESTINATIONS", "ROUTE_CONCURRENCY", "SCHEDULE_RATE_LIMIT", "SCHEDULE_RATE_BURST",
	} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, SourceSample, cfg.DataSource)
	require.Equal(t, SourceDataset, cfg.DistanceSource)
	require.Equal(t, 10, cfg.MaxRouteDestinations)
	require.Equal(t, 2.0, cfg.ScheduleRateLimit)
}

func TestValidate(t *testing.T) {
	ok := Config{DataSource: SourceSample, DistanceSource: SourceDataset, ScheduleRateLimit: 1, ScheduleRateBurst: 1}
	require.NoError(t, ok.Validate())

	bad := ok
	bad.DataSource = SourcePostgres
	require.Error(t, bad.Validate(), "postgres without DATABASE_URL")

	bad.DatabaseURL = "postgres://x"
	require.Error(t, bad.Validate(), "postgres roster cannot use dataset distances")

	bad.DistanceSource = SourcePostgres
	require.NoError(t, bad.Validate())

	bad.DistanceSource = "carrier-pigeon"
	require.Error(t, bad.Validate())
}

func TestValidateRateLimit(t *testing.T) {
	cfg := Config{DataSource: SourceSample, DistanceSource: SourceDataset}

	// Zero rate disables limiting, so burst is not checked.
	require.NoError(t, cfg.Validate())

	cfg.ScheduleRateLimit = -1
	require.Error(t, cfg.Validate())

	cfg.ScheduleRateLimit = 5
	require.Error(t, cfg.Validate(), "burst must be set with a rate")

	cfg.ScheduleRateBurst = 2
	require.NoError(t, cfg.Validate())
}

func TestLoadRateLimitDisabled(t *testing.T) {
	for _, k := range []string{"DATA_SOURCE", "DISTANCE_SOURCE", "MAX_ROUTE_DESTINATIONS", "ROUTE_CONCURRENCY", "SCHEDULE_RATE_BURST"} {
		t.Setenv(k, "")
	}
	t.Setenv("SCHEDULE_RATE_LIMIT", "0")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 0.0, cfg.ScheduleRateLimit)
}
