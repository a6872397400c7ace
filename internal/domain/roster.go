package domain

import (
	"fmt"
	"strings"
)

// ValidateRoster checks the identity invariants of engineers and jobs:
// ids are unique within each collection and every location is non-empty.
func ValidateRoster(engineers []Engineer, jobs []Job) error {
	seenEngineers := make(map[int]struct{}, len(engineers))
	for i, e := range engineers {
		if _, ok := seenEngineers[e.ID]; ok {
			return fmt.Errorf("validate roster: duplicate engineer id %d", e.ID)
		}
		seenEngineers[e.ID] = struct{}{}

		if strings.TrimSpace(string(e.Location)) == "" {
			return fmt.Errorf("validate roster: engineer at index %d (id=%d) has empty location", i, e.ID)
		}
	}

	seenJobs := make(map[int]struct{}, len(jobs))
	for i, j := range jobs {
		if _, ok := seenJobs[j.ID]; ok {
			return fmt.Errorf("validate roster: duplicate job id %d", j.ID)
		}
		seenJobs[j.ID] = struct{}{}

		if strings.TrimSpace(string(j.Location)) == "" {
			return fmt.Errorf("validate roster: job at index %d (id=%d) has empty location", i, j.ID)
		}
	}

	return nil
}
