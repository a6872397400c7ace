package services

import "field-service-scheduler/internal/domain"

// triangle is the A/B/C matrix used across routing tests:
// A<->B=10, A<->C=15, B<->C=35.
func triangle() domain.DistanceMatrix {
	m := domain.DistanceMatrix{}
	for _, l := range []domain.Location{"A", "B", "C"} {
		m.Set(l, l, 0)
	}
	m.SetSymmetric("A", "B", 10)
	m.SetSymmetric("A", "C", 15)
	m.SetSymmetric("B", "C", 35)
	return m
}

// square is the four-location travel matrix of the bundled sample data.
func square() domain.DistanceMatrix {
	m := triangle()
	m.Set("D", "D", 0)
	m.SetSymmetric("A", "D", 20)
	m.SetSymmetric("B", "D", 25)
	m.SetSymmetric("C", "D", 30)
	return m
}

func jobIDs(jobs []domain.Job) []int {
	out := make([]int, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, j.ID)
	}
	return out
}
