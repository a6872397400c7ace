package report

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteJSON encodes the report as indented JSON.
func WriteJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("write json report: %w", err)
	}
	return nil
}

var csvHeader = []string{"engineer_id", "name", "location", "job_ids", "route", "route_cost", "status"}

// WriteCSV writes one row per engineer, then one row per unassigned job
// with an empty engineer_id and status "unassigned".
func WriteCSV(w io.Writer, r Report) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv report: header: %w", err)
	}

	for _, e := range r.Engineers {
		ids := make([]string, 0, len(e.JobIDs))
		for _, id := range e.JobIDs {
			ids = append(ids, strconv.Itoa(id))
		}

		status := "routed"
		cost := ""
		switch {
		case len(e.JobIDs) == 0:
			status = "no_jobs"
		case e.RouteFailure != "":
			status = "route_failed: " + e.RouteFailure
		case e.RouteCost != nil:
			cost = formatCost(*e.RouteCost)
		}

		row := []string{
			strconv.Itoa(e.EngineerID),
			e.Name,
			string(e.Location),
			strings.Join(ids, " "),
			joinRoute(e.Route),
			cost,
			status,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv report: engineer %d: %w", e.EngineerID, err)
		}
	}

	for _, j := range r.Unassigned {
		row := []string{"", "", string(j.Location), strconv.Itoa(j.JobID), "", "", "unassigned"}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv report: job %d: %w", j.JobID, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("write csv report: flush: %w", err)
	}
	return nil
}

var ErrUnknownFormat = errors.New("unknown report format")

// CheckFormat reports whether Write accepts format.
func CheckFormat(format string) error {
	switch strings.ToLower(format) {
	case "", "text", "json", "csv":
		return nil
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
}

// Write dispatches on format: "text", "json" or "csv".
func Write(w io.Writer, format string, r Report) error {
	if err := CheckFormat(format); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	switch strings.ToLower(format) {
	case "", "text":
		return WriteText(w, r)
	case "json":
		return WriteJSON(w, r)
	default:
		return WriteCSV(w, r)
	}
}
