package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"field-service-scheduler/internal/api/dto"
	"field-service-scheduler/internal/platform/obs"
	"field-service-scheduler/internal/ports"
	"field-service-scheduler/internal/report"
	"field-service-scheduler/internal/services"
	"io"
	"log"
	"net/http"
)

const defaultMaxBodyBytes = 1 << 20

// Non-standard status logged when the client goes away before the run ends.
const statusClientClosedRequest = 499

type ScheduleHandler struct {
	Repo     ports.RosterRepository
	Provider ports.DistanceMatrixProvider
	Options  services.ScheduleOptions
	// Zero means 1 MiB.
	MaxBodyBytes int64
}

// Create runs assignment and routing over the configured sources, or over
// the dataset embedded in the request body when one is given.
func (h *ScheduleHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	limit := h.MaxBodyBytes
	if limit <= 0 {
		limit = defaultMaxBodyBytes
	}

	var req dto.ScheduleRequest

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, limit))
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	// An empty body selects the configured sources.
	if err := dec.Decode(&req); err != nil && err != io.EOF {
		if tooLarge(err) {
			writeError(w, r, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		if tooLarge(err) {
			writeError(w, r, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	repo, provider := h.Repo, h.Provider
	if req.Dataset != nil {
		ds, err := req.Dataset.Dataset()
		if err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		repo, provider = ds, ds
	}

	res, err := services.PlanSchedule(r.Context(), services.PlanScheduleRequest{Options: h.Options}, repo, provider)
	if err != nil {
		reqID := obs.RequestID(r.Context())
		if errors.Is(err, context.Canceled) {
			log.Printf("req_id=%s plan schedule aborted: client closed request", reqID)
			writeError(w, r, statusClientClosedRequest, "client closed request")
			return
		}
		log.Printf("req_id=%s plan schedule failed: %v", reqID, err)
		if errors.Is(err, context.DeadlineExceeded) {
			writeError(w, r, http.StatusGatewayTimeout, "schedule timed out")
			return
		}
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	var out dto.ScheduleResponse = report.Build(res.Engineers, res.Jobs, res.Schedule)
	writeJSON(w, r, http.StatusOK, out)
}

func tooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}
