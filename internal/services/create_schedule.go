package services

import (
	"context"
	"errors"
	"field-service-scheduler/internal/domain"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

type ScheduleOptions struct {
	// Ceiling on destinations per route; zero means DefaultMaxDestinations.
	MaxRouteDestinations int
	// Maximum concurrent route searches; zero means runtime.NumCPU().
	Concurrency int
}

type routeOutcome struct {
	route  domain.Route
	err    error
	routed bool
}

// CreateSchedule assigns jobs, then computes an exact route per engineer.
//
// Routes are computed for engineers with at least one job, using the
// engineer's location as start and the assigned job locations, in assignment
// order and with duplicates kept, as destinations. Route searches run
// concurrently since they share only read-only inputs.
//
// A routing failure for one engineer is recorded in Schedule.Failures and
// leaves the other routes intact. The returned error is non-nil only when
// ctx is done before the run completes.
func CreateSchedule(
	ctx context.Context,
	engineers []domain.Engineer,
	jobs []domain.Job,
	distances domain.DistanceMatrix,
	opts ScheduleOptions,
) (*domain.Schedule, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("create schedule: %w", err)
	}

	assignments := AssignJobs(engineers, jobs, distances)

	optimizer := RouteOptimizer{MaxDestinations: opts.MaxRouteDestinations}
	limit := opts.Concurrency
	if limit <= 0 {
		limit = runtime.NumCPU()
	}

	// One slot per engineer keeps writes disjoint and collection ordered.
	outcomes := make([]routeOutcome, len(engineers))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, e := range engineers {
		assigned := assignments[e.ID]
		if len(assigned) == 0 {
			continue
		}

		destinations := domain.JobLocations(assigned)
		g.Go(func() error {
			route, err := optimizer.Optimize(gctx, e.Location, destinations, distances)
			if err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return err
				}
				outcomes[i] = routeOutcome{err: fmt.Errorf("engineer %d: %w", e.ID, err)}
				return nil
			}
			outcomes[i] = routeOutcome{route: route, routed: true}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("create schedule: %w", err)
	}

	schedule := &domain.Schedule{
		Assignments: assignments,
		Routes:      make(domain.Routes),
		Failures:    make(map[int]error),
	}
	for i, e := range engineers {
		o := outcomes[i]
		switch {
		case o.routed:
			schedule.Routes[e.ID] = o.route
		case o.err != nil:
			schedule.Failures[e.ID] = o.err
		}
	}

	return schedule, nil
}
