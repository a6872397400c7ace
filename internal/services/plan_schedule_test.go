package services

import (
	"context"
	"errors"
	"field-service-scheduler/internal/adapters/dataset"
	"field-service-scheduler/internal/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

type failingRoster struct{ err error }

func (f failingRoster) ListEngineers(context.Context) ([]domain.Engineer, error) { return nil, f.err }
func (f failingRoster) ListJobs(context.Context) ([]domain.Job, error)           { return nil, f.err }

type recordingProvider struct {
	inner   *dataset.Dataset
	origins []domain.Location
}

func (p *recordingProvider) DistanceMatrix(ctx context.Context, origins []domain.Location) (domain.DistanceMatrix, error) {
	p.origins = origins
	return p.inner.DistanceMatrix(ctx, origins)
}

func TestPlanScheduleFromDataset(t *testing.T) {
	sample := dataset.Sample()
	sample.Jobs = append(sample.Jobs, domain.NewJob(14, "C", "22:00", "weld"))

	provider := &recordingProvider{inner: sample}
	res, err := PlanSchedule(context.Background(), PlanScheduleRequest{}, sample, provider)
	require.NoError(t, err)

	require.NotEmpty(t, res.Schedule.RunID)
	require.Len(t, res.Engineers, 4)
	require.Len(t, res.Jobs, 14)
	require.Equal(t, []int{14}, jobIDs(res.Unassigned))
	require.Len(t, res.Schedule.Routes, 4)
	require.ElementsMatch(t, []domain.Location{"A", "B", "C", "D"}, provider.origins)
}

func TestPlanScheduleRosterError(t *testing.T) {
	boom := errors.New("boom")

	_, err := PlanSchedule(context.Background(), PlanScheduleRequest{}, failingRoster{err: boom}, dataset.Sample())
	require.ErrorIs(t, err, boom)
}

func TestPlanScheduleRejectsDuplicateIDs(t *testing.T) {
	sample := dataset.Sample()
	sample.Jobs = append(sample.Jobs, domain.NewJob(1, "A", ""))

	_, err := PlanSchedule(context.Background(), PlanScheduleRequest{}, sample, sample)
	require.Error(t, err)
	require.Contains(t, err.Error(), "duplicate job id 1")
}

func TestOriginsForDeduplicates(t *testing.T) {
	engineers := []domain.Engineer{domain.NewEngineer(1, "a", "A"), domain.NewEngineer(2, "b", "B")}
	jobs := []domain.Job{domain.NewJob(1, "B", ""), domain.NewJob(2, "C", ""), domain.NewJob(3, "A", "")}

	require.Equal(t, []domain.Location{"A", "B", "C"}, originsFor(engineers, jobs))
}
