// Package report renders a scheduling run for people (text) and for other
// tools (JSON, CSV).
package report

import (
	"field-service-scheduler/internal/domain"
	"sort"
	"strconv"
	"strings"
)

// EngineerReport is the per-engineer view shared by every output format.
type EngineerReport struct {
	EngineerID   int               `json:"engineer_id"`
	Name         string            `json:"name"`
	Location     domain.Location   `json:"location"`
	JobIDs       []int             `json:"job_ids"`
	Route        []domain.Location `json:"route,omitempty"`
	RouteCost    *float64          `json:"route_cost,omitempty"`
	RouteFailure string            `json:"route_failure,omitempty"`
}

type UnassignedJob struct {
	JobID          int             `json:"job_id"`
	Location       domain.Location `json:"location"`
	RequiredSkills []string        `json:"required_skills"`
}

type Report struct {
	RunID      string           `json:"run_id,omitempty"`
	Engineers  []EngineerReport `json:"engineers"`
	Unassigned []UnassignedJob  `json:"unassigned"`
}

// Build collects the report rows in engineer input order.
// Engineers present in the schedule but not in engineers are appended by id.
func Build(engineers []domain.Engineer, jobs []domain.Job, s *domain.Schedule) Report {
	r := Report{
		RunID:      s.RunID,
		Engineers:  make([]EngineerReport, 0, len(engineers)),
		Unassigned: make([]UnassignedJob, 0),
	}

	known := make(map[int]struct{}, len(engineers))
	for _, e := range engineers {
		known[e.ID] = struct{}{}
		r.Engineers = append(r.Engineers, engineerReport(e, s))
	}

	extra := make([]int, 0)
	for id := range s.Assignments {
		if _, ok := known[id]; !ok {
			extra = append(extra, id)
		}
	}
	sort.Ints(extra)
	for _, id := range extra {
		r.Engineers = append(r.Engineers, engineerReport(domain.Engineer{ID: id}, s))
	}

	for _, j := range s.Unassigned(jobs) {
		r.Unassigned = append(r.Unassigned, UnassignedJob{
			JobID:          j.ID,
			Location:       j.Location,
			RequiredSkills: append([]string{}, j.RequiredSkills...),
		})
	}

	return r
}

func engineerReport(e domain.Engineer, s *domain.Schedule) EngineerReport {
	er := EngineerReport{
		EngineerID: e.ID,
		Name:       e.Name,
		Location:   e.Location,
		JobIDs:     make([]int, 0, len(s.Assignments[e.ID])),
	}
	for _, j := range s.Assignments[e.ID] {
		er.JobIDs = append(er.JobIDs, j.ID)
	}

	if route, ok := s.Routes[e.ID]; ok {
		cost := route.Cost
		er.Route = append([]domain.Location(nil), route.Stops...)
		er.RouteCost = &cost
	}
	if err, ok := s.Failures[e.ID]; ok && err != nil {
		er.RouteFailure = err.Error()
	}
	return er
}

func joinRoute(stops []domain.Location) string {
	parts := make([]string, 0, len(stops))
	for _, s := range stops {
		parts = append(parts, string(s))
	}
	return strings.Join(parts, " -> ")
}

func formatCost(c float64) string {
	return strconv.FormatFloat(c, 'g', -1, 64)
}

func formatIDs(ids []int) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.Itoa(id))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
