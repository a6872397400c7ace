package ports

import (
	"context"
	"field-service-scheduler/internal/domain"
)

// Contract for retrieving travel costs between locations.
type DistanceMatrixProvider interface {
	// Return the matrix rows for the given origins.
	// Rows for unknown origins are omitted rather than reported as errors;
	// the scheduler decides how a missing pair is treated.
	DistanceMatrix(ctx context.Context, origins []domain.Location) (domain.DistanceMatrix, error)
}

// Optional extension for providers that can be written to (seeding, tests).
type DistanceMatrixStore interface {
	DistanceMatrixProvider
	// Store every pair of m, replacing existing entries.
	PutMatrix(ctx context.Context, m domain.DistanceMatrix) error
}
