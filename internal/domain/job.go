package domain

// Job is a unit of field work at a single location.
// Time is informational only; no algorithm consumes it.
type Job struct {
	ID             int
	Location       Location
	Time           string
	RequiredSkills Skills
}

func NewJob(id int, location Location, time string, requiredSkills ...string) Job {
	return Job{
		ID:             id,
		Location:       location,
		Time:           time,
		RequiredSkills: NormalizeSkills(requiredSkills),
	}
}

// JobLocations returns the location of every job, in order, keeping duplicates.
func JobLocations(jobs []Job) []Location {
	out := make([]Location, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, j.Location)
	}
	return out
}
