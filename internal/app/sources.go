// Package app is the composition root shared by the entry points: it turns a
// Config into concrete roster and distance adapters behind the ports.
package app

import (
	"context"
	"database/sql"
	"errors"
	"field-service-scheduler/internal/adapters/dataset"
	"field-service-scheduler/internal/adapters/distance"
	"field-service-scheduler/internal/adapters/repositories"
	"field-service-scheduler/internal/config"
	"field-service-scheduler/internal/platform/db"
	"field-service-scheduler/internal/ports"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
)

// Sources holds the adapters selected by configuration.
type Sources struct {
	Roster    ports.RosterRepository
	Distances ports.DistanceMatrixProvider

	db    *sql.DB
	redis *redis.Client
}

// OpenSources connects the configured roster and distance backends.
// Close must be called to release connections.
func OpenSources(ctx context.Context, cfg config.Config) (_ *Sources, err error) {
	s := &Sources{}
	defer func() {
		if err != nil {
			_ = s.Close()
		}
	}()

	var ds *dataset.Dataset
	switch cfg.DataSource {
	case config.SourceSample:
		ds = dataset.Sample()
		s.Roster = ds
	case config.SourceFile:
		if ds, err = dataset.Load(cfg.DatasetPath); err != nil {
			return nil, fmt.Errorf("open sources: %w", err)
		}
		s.Roster = ds
	case config.SourcePostgres:
		if err = s.openDB(cfg); err != nil {
			return nil, err
		}
		s.Roster = repositories.NewPostgresRosterRepository(s.db)
	default:
		return nil, fmt.Errorf("open sources: unknown data source %q", cfg.DataSource)
	}

	switch cfg.DistanceSource {
	case config.SourceDataset:
		if ds == nil {
			return nil, fmt.Errorf("open sources: distance source %q needs a dataset roster", cfg.DistanceSource)
		}
		s.Distances = ds
	case config.SourcePostgres:
		if err = s.openDB(cfg); err != nil {
			return nil, err
		}
		s.Distances = distance.NewSQLMatrixProvider(s.db)
	case config.SourceRedis:
		if s.redis, err = db.OpenRedis(ctx, cfg.RedisURL); err != nil {
			return nil, fmt.Errorf("open sources: %w", err)
		}
		s.Distances = distance.NewRedisMatrixProvider(s.redis, cfg.RedisKeyPrefix)
	default:
		return nil, fmt.Errorf("open sources: unknown distance source %q", cfg.DistanceSource)
	}

	log.Printf("sources ready data_source=%s distance_source=%s", cfg.DataSource, cfg.DistanceSource)
	return s, nil
}

func (s *Sources) openDB(cfg config.Config) error {
	if s.db != nil {
		return nil
	}
	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("open sources: %w", err)
	}
	s.db = conn
	return nil
}

// Close releases any database or Redis connections.
func (s *Sources) Close() error {
	var errs []error
	if s.db != nil {
		errs = append(errs, s.db.Close())
		s.db = nil
	}
	if s.redis != nil {
		errs = append(errs, s.redis.Close())
		s.redis = nil
	}
	return errors.Join(errs...)
}
