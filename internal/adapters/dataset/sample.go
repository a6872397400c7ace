package dataset

import "field-service-scheduler/internal/domain"

// Sample returns the bundled demo data: four engineers at A-D, thirteen jobs
// and a symmetric 4x4 travel matrix. Only Alice holds "upgrade", so she
// receives every upgrade job regardless of location.
func Sample() *Dataset {
	engineers := []domain.Engineer{
		domain.NewEngineer(1, "Alice", "A", "repair", "install", "upgrade"),
		domain.NewEngineer(2, "Bob", "B", "install"),
		domain.NewEngineer(3, "Charlie", "C", "repair", "maintain"),
		domain.NewEngineer(4, "Daisy", "D", "maintain", "repair", "install"),
	}

	jobs := []domain.Job{
		domain.NewJob(1, "D", "09:00", "repair"),
		domain.NewJob(2, "B", "10:00", "install"),
		domain.NewJob(3, "C", "11:00", "maintain"),
		domain.NewJob(4, "A", "12:00", "upgrade"),
		domain.NewJob(5, "B", "13:00", "upgrade"),
		domain.NewJob(6, "C", "14:00", "upgrade"),
		domain.NewJob(7, "D", "15:00", "upgrade"),
		domain.NewJob(8, "A", "16:00", "upgrade"),
		domain.NewJob(9, "B", "17:00", "upgrade"),
		domain.NewJob(10, "C", "18:00", "upgrade"),
		domain.NewJob(11, "D", "19:00", "upgrade"),
		domain.NewJob(12, "A", "20:00", "upgrade"),
		domain.NewJob(13, "B", "21:00", "upgrade"),
	}

	distances := domain.DistanceMatrix{}
	for _, l := range []domain.Location{"A", "B", "C", "D"} {
		distances.Set(l, l, 0)
	}
	distances.SetSymmetric("A", "B", 10)
	distances.SetSymmetric("A", "C", 15)
	distances.SetSymmetric("A", "D", 20)
	distances.SetSymmetric("B", "C", 35)
	distances.SetSymmetric("B", "D", 25)
	distances.SetSymmetric("C", "D", 30)

	return &Dataset{Engineers: engineers, Jobs: jobs, Distances: distances}
}
