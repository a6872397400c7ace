package app

import (
	"context"
	"field-service-scheduler/internal/adapters/dataset"
	"field-service-scheduler/internal/adapters/distance"
	"field-service-scheduler/internal/config"
	"field-service-scheduler/internal/domain"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestOpenSourcesSample(t *testing.T) {
	s, err := OpenSources(context.Background(), config.Config{
		DataSource:     config.SourceSample,
		DistanceSource: config.SourceDataset,
	})
	require.NoError(t, err)
	defer s.Close()

	engineers, err := s.Roster.ListEngineers(context.Background())
	require.NoError(t, err)
	require.Len(t, engineers, 4)

	m, err := s.Distances.DistanceMatrix(context.Background(), []domain.Location{"A"})
	require.NoError(t, err)
	require.Equal(t, 10.0, m["A"]["B"])
}

func TestOpenSourcesFile(t *testing.T) {
	s, err := OpenSources(context.Background(), config.Config{
		DataSource:     config.SourceFile,
		DatasetPath:    "../adapters/dataset/testdata/small.yaml",
		DistanceSource: config.SourceDataset,
	})
	require.NoError(t, err)
	defer s.Close()

	jobs, err := s.Roster.ListJobs(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, jobs)
}

func TestOpenSourcesMissingFile(t *testing.T) {
	_, err := OpenSources(context.Background(), config.Config{
		DataSource:     config.SourceFile,
		DatasetPath:    "does-not-exist.yaml",
		DistanceSource: config.SourceDataset,
	})
	require.Error(t, err)
}

func TestOpenSourcesRedisDistances(t *testing.T) {
	mr := miniredis.RunT(t)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()
	seed := distance.NewRedisMatrixProvider(rdb, "")
	require.NoError(t, seed.PutMatrix(context.Background(), dataset.Sample().Distances))

	s, err := OpenSources(context.Background(), config.Config{
		DataSource:     config.SourceSample,
		DistanceSource: config.SourceRedis,
		RedisURL:       "redis://" + mr.Addr() + "/0",
		RedisKeyPrefix: distance.DefaultRedisKeyPrefix,
	})
	require.NoError(t, err)
	defer s.Close()

	m, err := s.Distances.DistanceMatrix(context.Background(), []domain.Location{"C"})
	require.NoError(t, err)
	require.Equal(t, 35.0, m["C"]["B"])
}

func TestOpenSourcesRejectsUnknown(t *testing.T) {
	_, err := OpenSources(context.Background(), config.Config{
		DataSource:     "ftp",
		DistanceSource: config.SourceDataset,
	})
	require.Error(t, err)

	_, err = OpenSources(context.Background(), config.Config{
		DataSource:     config.SourceSample,
		DistanceSource: "carrier-pigeon",
	})
	require.Error(t, err)
}
