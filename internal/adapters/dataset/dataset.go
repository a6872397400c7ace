package dataset

import (
	"context"
	"field-service-scheduler/internal/domain"
	"fmt"
)

// Dataset is an in-memory roster and travel matrix.
// It satisfies ports.RosterRepository and ports.DistanceMatrixProvider.
type Dataset struct {
	Engineers []domain.Engineer
	Jobs      []domain.Job
	Distances domain.DistanceMatrix
}

// Validate checks roster identity invariants and matrix costs.
func (d *Dataset) Validate() error {
	if err := domain.ValidateRoster(d.Engineers, d.Jobs); err != nil {
		return fmt.Errorf("dataset: %w", err)
	}
	if err := d.Distances.Validate(); err != nil {
		return fmt.Errorf("dataset: %w", err)
	}
	return nil
}

// ListEngineers returns a copy of the engineers in dataset order.
func (d *Dataset) ListEngineers(ctx context.Context) ([]domain.Engineer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]domain.Engineer(nil), d.Engineers...), nil
}

// ListJobs returns a copy of the jobs in dataset order.
func (d *Dataset) ListJobs(ctx context.Context) ([]domain.Job, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]domain.Job(nil), d.Jobs...), nil
}

// DistanceMatrix returns a copy of the rows for origins.
func (d *Dataset) DistanceMatrix(ctx context.Context, origins []domain.Location) (domain.DistanceMatrix, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return d.Distances.Restrict(origins), nil
}
