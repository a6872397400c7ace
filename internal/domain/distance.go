package domain

import (
	"errors"
	"fmt"
	"math"
)

// ErrDistanceNotFound is matched by every MissingDistanceError.
var ErrDistanceNotFound = errors.New("distance not found")

// MissingDistanceError reports an (origin, destination) pair absent from a matrix.
type MissingDistanceError struct {
	From Location
	To   Location
}

func (e *MissingDistanceError) Error() string {
	return fmt.Sprintf("distance not found: %q -> %q", e.From, e.To)
}

func (e *MissingDistanceError) Is(target error) bool {
	return target == ErrDistanceNotFound
}

// DistanceMatrix maps origin -> destination -> non-negative travel cost.
// Callers assume symmetry; the matrix itself does not enforce it.
type DistanceMatrix map[Location]map[Location]float64

// Lookup returns the cost from -> to and whether the pair is present.
func (m DistanceMatrix) Lookup(from, to Location) (float64, bool) {
	row, ok := m[from]
	if !ok {
		return 0, false
	}
	d, ok := row[to]
	return d, ok
}

// Distance is Lookup that turns a miss into a *MissingDistanceError.
func (m DistanceMatrix) Distance(from, to Location) (float64, error) {
	d, ok := m.Lookup(from, to)
	if !ok {
		return 0, &MissingDistanceError{From: from, To: to}
	}
	return d, nil
}

// DistanceOrInf is Lookup with a miss reported as +Inf.
func (m DistanceMatrix) DistanceOrInf(from, to Location) float64 {
	d, ok := m.Lookup(from, to)
	if !ok {
		return math.Inf(1)
	}
	return d
}

// Set stores a single directed cost.
func (m DistanceMatrix) Set(from, to Location, cost float64) {
	row, ok := m[from]
	if !ok {
		row = make(map[Location]float64)
		m[from] = row
	}
	row[to] = cost
}

// SetSymmetric stores cost in both directions.
func (m DistanceMatrix) SetSymmetric(a, b Location, cost float64) {
	m.Set(a, b, cost)
	m.Set(b, a, cost)
}

// Validate checks that costs are non-negative numbers and self-distances are zero.
func (m DistanceMatrix) Validate() error {
	for from, row := range m {
		for to, d := range row {
			if math.IsNaN(d) || d < 0 {
				return fmt.Errorf("validate distances: %q -> %q: invalid cost %v", from, to, d)
			}
			if from == to && d != 0 {
				return fmt.Errorf("validate distances: self-distance of %q is %v, want 0", from, d)
			}
		}
	}
	return nil
}

// Symmetric reports whether every present pair has an equal reverse entry.
func (m DistanceMatrix) Symmetric() bool {
	for from, row := range m {
		for to, d := range row {
			back, ok := m.Lookup(to, from)
			if !ok || back != d {
				return false
			}
		}
	}
	return true
}

// Restrict returns a copy holding only rows whose origin is in locations.
// Destination columns are copied in full.
func (m DistanceMatrix) Restrict(locations []Location) DistanceMatrix {
	out := make(DistanceMatrix, len(locations))
	for _, from := range locations {
		row, ok := m[from]
		if !ok {
			continue
		}
		cp := make(map[Location]float64, len(row))
		for to, d := range row {
			cp[to] = d
		}
		out[from] = cp
	}
	return out
}
