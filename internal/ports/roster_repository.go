package ports

import (
	"context"
	"field-service-scheduler/internal/domain"
)

// Port: a boundary for retrieving engineers and jobs from a data source.
type RosterRepository interface {
	// Retrieve all engineers, in a stable order.
	ListEngineers(ctx context.Context) ([]domain.Engineer, error)
	// Retrieve all jobs awaiting assignment, in a stable order.
	ListJobs(ctx context.Context) ([]domain.Job, error)
}
