package handlers

import (
	"field-service-scheduler/internal/api/dto"
	"field-service-scheduler/internal/ports"
	"log"
	"net/http"
)

// RosterHandler exposes read-only engineer and job listings.
type RosterHandler struct {
	Repo ports.RosterRepository
}

func (h *RosterHandler) Engineers(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	engineers, err := h.Repo.ListEngineers(r.Context())
	if err != nil {
		log.Printf("list engineers failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListEngineersResponse{
		Engineers: make([]dto.EngineerResponse, 0, len(engineers)),
	}
	for _, e := range engineers {
		res.Engineers = append(res.Engineers, dto.EngineerResponse{
			ID:       e.ID,
			Name:     e.Name,
			Location: string(e.Location),
			Skills:   append([]string{}, e.Skills...),
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *RosterHandler) Jobs(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	jobs, err := h.Repo.ListJobs(r.Context())
	if err != nil {
		log.Printf("list jobs failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListJobsResponse{
		Jobs: make([]dto.JobResponse, 0, len(jobs)),
	}
	for _, j := range jobs {
		res.Jobs = append(res.Jobs, dto.JobResponse{
			ID:             j.ID,
			Location:       string(j.Location),
			Time:           j.Time,
			RequiredSkills: append([]string{}, j.RequiredSkills...),
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
