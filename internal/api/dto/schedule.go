package dto

import (
	"field-service-scheduler/internal/adapters/dataset"
	"field-service-scheduler/internal/report"
)

// ScheduleRequest optionally carries an inline dataset. When Dataset is nil
// the server's configured roster and distance sources are used.
type ScheduleRequest struct {
	Dataset *dataset.File `json:"dataset"`
}

// ScheduleResponse shares its layout with the JSON report.
type ScheduleResponse = report.Report
