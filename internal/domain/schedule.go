package domain

// Assignments maps an engineer id to the jobs assigned to that engineer,
// in processing order (not route order).
type Assignments map[int][]Job

// Route is a closed tour: Stops starts and ends at the engineer's location.
type Route struct {
	Stops []Location
	Cost  float64
}

// Routes maps an engineer id to its optimized route.
// Only engineers with at least one assigned job have an entry.
type Routes map[int]Route

// Schedule is the output of a scheduling run.
// Failures holds per-engineer routing errors; an engineer listed there has
// assignments but no route.
type Schedule struct {
	RunID       string
	Assignments Assignments
	Routes      Routes
	Failures    map[int]error
}

// AssignedJobIDs returns the set of job ids present in any assignment.
func (s *Schedule) AssignedJobIDs() map[int]struct{} {
	out := make(map[int]struct{})
	for _, jobs := range s.Assignments {
		for _, j := range jobs {
			out[j.ID] = struct{}{}
		}
	}
	return out
}

// Unassigned returns the jobs, in input order, that no engineer received.
func (s *Schedule) Unassigned(jobs []Job) []Job {
	assigned := s.AssignedJobIDs()
	out := make([]Job, 0)
	for _, j := range jobs {
		if _, ok := assigned[j.ID]; !ok {
			out = append(out, j)
		}
	}
	return out
}
