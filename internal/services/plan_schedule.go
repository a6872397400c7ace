package services

import (
	"context"
	"field-service-scheduler/internal/domain"
	"field-service-scheduler/internal/platform/metrics"
	"field-service-scheduler/internal/platform/obs"
	"field-service-scheduler/internal/ports"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
)

type PlanScheduleRequest struct {
	Options ScheduleOptions
}

// PlanScheduleResult carries the inputs alongside the schedule so callers
// (report writers, handlers) can resolve names and detect unassigned jobs.
type PlanScheduleResult struct {
	Engineers []domain.Engineer
	Jobs      []domain.Job
	Schedule  *domain.Schedule
	// Jobs no capable engineer received, in input order.
	Unassigned []domain.Job
}

// PlanSchedule loads engineers, jobs and distances, then runs CreateSchedule.
// Per-engineer and per-job outcomes are logged and counted; a routing failure
// for one engineer does not fail the run.
func PlanSchedule(
	ctx context.Context,
	req PlanScheduleRequest,
	repo ports.RosterRepository,
	provider ports.DistanceMatrixProvider,
) (_ *PlanScheduleResult, err error) {
	defer obs.Time(ctx, "schedule.PlanSchedule")(&err)

	started := time.Now()
	defer func() {
		metrics.ScheduleDuration.Observe(time.Since(started).Seconds())
		if err != nil {
			metrics.ScheduleRuns.WithLabelValues("error").Inc()
			return
		}
		metrics.ScheduleRuns.WithLabelValues("ok").Inc()
	}()

	engineers, err := repo.ListEngineers(ctx)
	if err != nil {
		return nil, fmt.Errorf("plan schedule: list engineers: %w", err)
	}

	jobs, err := repo.ListJobs(ctx)
	if err != nil {
		return nil, fmt.Errorf("plan schedule: list jobs: %w", err)
	}

	if err := domain.ValidateRoster(engineers, jobs); err != nil {
		return nil, fmt.Errorf("plan schedule: %w", err)
	}

	// Routing needs rows for every engineer home and every job location.
	distances, err := provider.DistanceMatrix(ctx, originsFor(engineers, jobs))
	if err != nil {
		return nil, fmt.Errorf("plan schedule: load distance matrix: %w", err)
	}

	schedule, err := CreateSchedule(ctx, engineers, jobs, distances, req.Options)
	if err != nil {
		return nil, fmt.Errorf("plan schedule: %w", err)
	}
	schedule.RunID = uuid.NewString()

	res := &PlanScheduleResult{
		Engineers:  engineers,
		Jobs:       jobs,
		Schedule:   schedule,
		Unassigned: schedule.Unassigned(jobs),
	}
	logOutcomes(ctx, res)

	return res, nil
}

func originsFor(engineers []domain.Engineer, jobs []domain.Job) []domain.Location {
	seen := make(map[domain.Location]struct{}, len(engineers)+len(jobs))
	out := make([]domain.Location, 0, len(engineers)+len(jobs))

	add := func(l domain.Location) {
		if _, ok := seen[l]; ok {
			return
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}

	for _, e := range engineers {
		add(e.Location)
	}
	for _, j := range jobs {
		add(j.Location)
	}
	return out
}

func logOutcomes(ctx context.Context, res *PlanScheduleResult) {
	reqID := obs.RequestID(ctx)
	s := res.Schedule

	for _, e := range res.Engineers {
		assigned := s.Assignments[e.ID]
		if len(assigned) == 0 {
			log.Printf("req_id=%s run_id=%s engineer_id=%d status=no_jobs_assigned", reqID, s.RunID, e.ID)
			continue
		}
		metrics.JobsAssigned.Add(float64(len(assigned)))

		if ferr, ok := s.Failures[e.ID]; ok {
			metrics.RouteFailures.Inc()
			log.Printf("req_id=%s run_id=%s engineer_id=%d jobs=%d status=route_failed err=%v", reqID, s.RunID, e.ID, len(assigned), ferr)
			continue
		}

		log.Printf("req_id=%s run_id=%s engineer_id=%d jobs=%d route_cost=%g", reqID, s.RunID, e.ID, len(assigned), s.Routes[e.ID].Cost)
	}

	for _, j := range res.Unassigned {
		metrics.JobsUnassigned.Inc()
		log.Printf("req_id=%s run_id=%s job_id=%d status=unassigned reason=no_capable_engineer", reqID, s.RunID, j.ID)
	}
}
