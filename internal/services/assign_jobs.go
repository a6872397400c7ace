package services

import (
	"field-service-scheduler/internal/domain"
	"math"
)

// AssignJobs assigns each job to the nearest engineer able to perform it.
//
// Jobs are processed independently in input order. Candidates are the
// engineers whose skills cover the job's requirements, considered in engineer
// order; the one with the smallest home->job distance wins. A missing matrix
// entry counts as +Inf, so an unreachable candidate only wins when every
// candidate is unreachable, in which case the first candidate is chosen.
// Ties go to the first candidate encountered.
//
// There is no load balancing: one engineer may receive every job.
// Jobs without a capable engineer appear in no list.
// Every engineer id is present in the result, possibly with an empty slice.
func AssignJobs(
	engineers []domain.Engineer,
	jobs []domain.Job,
	distances domain.DistanceMatrix,
) domain.Assignments {
	assignments := make(domain.Assignments, len(engineers))
	for _, e := range engineers {
		assignments[e.ID] = []domain.Job{}
	}

	for _, job := range jobs {
		best, ok := nearestCapableEngineer(engineers, job, distances)
		if !ok {
			continue
		}
		assignments[best.ID] = append(assignments[best.ID], job)
	}

	return assignments
}

func nearestCapableEngineer(
	engineers []domain.Engineer,
	job domain.Job,
	distances domain.DistanceMatrix,
) (domain.Engineer, bool) {
	var (
		best    domain.Engineer
		found   bool
		minDist = math.Inf(1)
	)

	for _, e := range engineers {
		if !e.CanPerform(job) {
			continue
		}

		d := distances.DistanceOrInf(e.Location, job.Location)
		// The first candidate is taken unconditionally so that an all-+Inf
		// candidate set still resolves to the first in engineer order.
		if !found || d < minDist {
			best = e
			minDist = d
			found = true
		}
	}

	return best, found
}
