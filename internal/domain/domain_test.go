package domain

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewEngineerNormalizesSkills(t *testing.T) {
	e := NewEngineer(42, "Test", "X", "Repair", "INSTALL")

	require.Equal(t, 42, e.ID)
	require.Equal(t, "Test", e.Name)
	require.Equal(t, Location("X"), e.Location)
	require.Equal(t, Skills{"repair", "install"}, e.Skills)
}

func TestNewJobNormalizesSkills(t *testing.T) {
	j := NewJob(7, "Y", "14:00", "Maintain", "REPAIR")

	require.Equal(t, 7, j.ID)
	require.Equal(t, Location("Y"), j.Location)
	require.Equal(t, "14:00", j.Time)
	require.Equal(t, Skills{"maintain", "repair"}, j.RequiredSkills)
}

func TestSkillsCovers(t *testing.T) {
	have := NormalizeSkills([]string{"repair", "install", "upgrade"})

	require.True(t, have.Covers(nil), "empty requirement matches everyone")
	require.True(t, have.Covers(Skills{"upgrade", "repair"}), "order must not matter")
	require.True(t, have.Covers(Skills{"install", "install"}), "duplicates are harmless")
	require.False(t, have.Covers(Skills{"maintain"}))
	require.True(t, have.Has("INSTALL"))
}

func TestEngineerCanPerform(t *testing.T) {
	e := NewEngineer(1, "Bob", "B", "install")

	require.True(t, e.CanPerform(NewJob(1, "B", "", "Install")))
	require.False(t, e.CanPerform(NewJob(2, "A", "", "upgrade")))
	require.True(t, e.CanPerform(NewJob(3, "C", "")))
}

func TestSkillsMatchOnlyCase(t *testing.T) {
	e := NewEngineer(1, "Rita", "A", "repair")

	require.Equal(t, Skills{"repair ", ""}, NormalizeSkills([]string{"Repair ", ""}))
	require.False(t, e.CanPerform(NewJob(1, "A", "", "")), "an empty tag is a requirement nobody holds")
	require.False(t, e.CanPerform(NewJob(2, "A", "", "Repair ")), "whitespace is significant")
	require.True(t, e.CanPerform(NewJob(3, "A", "", "REPAIR")))
}

func TestDistanceMatrixLookup(t *testing.T) {
	m := DistanceMatrix{}
	m.SetSymmetric("A", "B", 10)
	m.Set("A", "A", 0)

	d, err := m.Distance("B", "A")
	require.NoError(t, err)
	require.Equal(t, 10.0, d)

	_, err = m.Distance("A", "C")
	require.ErrorIs(t, err, ErrDistanceNotFound)

	var missing *MissingDistanceError
	require.True(t, errors.As(err, &missing))
	require.Equal(t, Location("A"), missing.From)
	require.Equal(t, Location("C"), missing.To)

	require.True(t, math.IsInf(m.DistanceOrInf("Z", "A"), 1))
}

func TestDistanceMatrixValidate(t *testing.T) {
	m := DistanceMatrix{}
	m.SetSymmetric("A", "B", 10)
	m.Set("A", "A", 0)
	require.NoError(t, m.Validate())
	require.True(t, m.Symmetric())

	m.Set("B", "A", 11)
	require.False(t, m.Symmetric())

	m.Set("B", "B", 1)
	require.Error(t, m.Validate())

	neg := DistanceMatrix{}
	neg.Set("A", "B", -1)
	require.Error(t, neg.Validate())
}

func TestDistanceMatrixRestrict(t *testing.T) {
	m := DistanceMatrix{}
	m.SetSymmetric("A", "B", 10)
	m.SetSymmetric("A", "C", 15)

	sub := m.Restrict([]Location{"A", "Z"})
	require.Len(t, sub, 1)
	require.Len(t, sub["A"], 2)

	sub.Set("A", "B", 99)
	d, _ := m.Lookup("A", "B")
	require.Equal(t, 10.0, d, "restrict must copy rows")
}

func TestValidateRoster(t *testing.T) {
	engineers := []Engineer{NewEngineer(1, "A", "A"), NewEngineer(2, "B", "B")}
	jobs := []Job{NewJob(1, "A", ""), NewJob(2, "B", "")}
	require.NoError(t, ValidateRoster(engineers, jobs))

	require.Error(t, ValidateRoster(append(engineers, NewEngineer(1, "C", "C")), jobs))
	require.Error(t, ValidateRoster(engineers, append(jobs, NewJob(2, "C", ""))))
	require.Error(t, ValidateRoster([]Engineer{NewEngineer(3, "D", " ")}, nil))
}

func TestScheduleUnassigned(t *testing.T) {
	j1 := NewJob(1, "A", "")
	j2 := NewJob(2, "B", "")
	j3 := NewJob(3, "C", "")

	s := &Schedule{Assignments: Assignments{10: {j1}, 11: {j3}, 12: {}}}

	require.Equal(t, []Job{j2}, s.Unassigned([]Job{j1, j2, j3}))
	require.Len(t, s.AssignedJobIDs(), 2)
}

func TestJobLocationsKeepsDuplicates(t *testing.T) {
	jobs := []Job{NewJob(1, "A", ""), NewJob(2, "B", ""), NewJob(3, "A", "")}

	require.Equal(t, []Location{"A", "B", "A"}, JobLocations(jobs))
}
