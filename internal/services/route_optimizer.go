package services

import (
	"context"
	"errors"
	"field-service-scheduler/internal/domain"
	"fmt"
)

// DefaultMaxDestinations bounds the exhaustive search. 10 destinations is
// 3,628,800 permutations; each additional slot multiplies the work.
const DefaultMaxDestinations = 10

// ErrTooManyDestinations is returned when a route exceeds the optimizer's ceiling.
var ErrTooManyDestinations = errors.New("too many destinations for exact route search")

// How many permutations are evaluated between context checks.
const ctxCheckInterval = 1 << 12

// RouteOptimizer computes exact minimum-cost closed tours by brute force.
// The zero value uses DefaultMaxDestinations.
type RouteOptimizer struct {
	MaxDestinations int
}

// OptimizeRoute runs the zero-value RouteOptimizer.
func OptimizeRoute(
	ctx context.Context,
	start domain.Location,
	destinations []domain.Location,
	distances domain.DistanceMatrix,
) (domain.Route, error) {
	return RouteOptimizer{}.Optimize(ctx, start, destinations, distances)
}

// Optimize returns the cheapest tour start -> every destination once -> start.
//
// Every permutation of the destination slots is evaluated in lexicographic
// order of slot indices; a location listed twice is visited twice. The first
// permutation reaching the minimum cost wins, so results are reproducible.
// A missing matrix entry for any required leg fails with an error matching
// domain.ErrDistanceNotFound.
func (o RouteOptimizer) Optimize(
	ctx context.Context,
	start domain.Location,
	destinations []domain.Location,
	distances domain.DistanceMatrix,
) (domain.Route, error) {
	n := len(destinations)
	if n == 0 {
		return domain.Route{Stops: []domain.Location{start, start}, Cost: 0}, nil
	}

	limit := o.MaxDestinations
	if limit <= 0 {
		limit = DefaultMaxDestinations
	}
	if n > limit {
		return domain.Route{}, fmt.Errorf("optimize route: %d destinations (limit %d): %w", n, limit, ErrTooManyDestinations)
	}

	legs, err := newLegTable(start, destinations, distances)
	if err != nil {
		return domain.Route{}, fmt.Errorf("optimize route from %q: %w", start, err)
	}

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	best := make([]int, n)
	bestCost := 0.0
	found := false

	for count := 0; ; count++ {
		if count%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return domain.Route{}, fmt.Errorf("optimize route from %q: %w", start, err)
			}
		}

		c := legs.tourCost(perm)
		if !found || c < bestCost {
			bestCost = c
			copy(best, perm)
			found = true
		}

		if !nextPermutation(perm) {
			break
		}
	}

	stops := make([]domain.Location, 0, n+2)
	stops = append(stops, start)
	for _, i := range best {
		stops = append(stops, destinations[i])
	}
	stops = append(stops, start)

	return domain.Route{Stops: stops, Cost: bestCost}, nil
}

// legTable holds every leg cost a tour over the destination slots may need.
type legTable struct {
	fromStart []float64
	toStart   []float64
	between   [][]float64
}

func newLegTable(
	start domain.Location,
	destinations []domain.Location,
	distances domain.DistanceMatrix,
) (*legTable, error) {
	n := len(destinations)
	t := &legTable{
		fromStart: make([]float64, n),
		toStart:   make([]float64, n),
		between:   make([][]float64, n),
	}

	for i, d := range destinations {
		var err error
		if t.fromStart[i], err = distances.Distance(start, d); err != nil {
			return nil, err
		}
		if t.toStart[i], err = distances.Distance(d, start); err != nil {
			return nil, err
		}

		t.between[i] = make([]float64, n)
		for j, e := range destinations {
			if i == j {
				continue
			}
			if t.between[i][j], err = distances.Distance(d, e); err != nil {
				return nil, err
			}
		}
	}

	return t, nil
}

// tourCost sums the legs in travel order: start, perm..., start.
func (t *legTable) tourCost(perm []int) float64 {
	cost := t.fromStart[perm[0]]
	for i := 0; i < len(perm)-1; i++ {
		cost += t.between[perm[i]][perm[i+1]]
	}
	cost += t.toStart[perm[len(perm)-1]]
	return cost
}

// nextPermutation rearranges p into its lexicographic successor.
// It returns false, leaving p unchanged, when p is the last permutation.
func nextPermutation(p []int) bool {
	i := len(p) - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		return false
	}

	j := len(p) - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]

	for l, r := i+1, len(p)-1; l < r; l, r = l+1, r-1 {
		p[l], p[r] = p[r], p[l]
	}
	return true
}
