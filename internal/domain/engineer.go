package domain

// Location is an opaque location identifier (e.g. "A", a depot code).
type Location string

// Engineer is a field engineer that can be assigned jobs.
// Engineers are plain values and are not mutated during a scheduling run.
type Engineer struct {
	ID       int
	Name     string
	Location Location
	Skills   Skills
}

func NewEngineer(id int, name string, location Location, skills ...string) Engineer {
	return Engineer{
		ID:       id,
		Name:     name,
		Location: location,
		Skills:   NormalizeSkills(skills),
	}
}

// CanPerform reports whether the engineer holds every skill the job requires.
func (e Engineer) CanPerform(job Job) bool {
	return e.Skills.Covers(job.RequiredSkills)
}
