package dto

import (
	"github.com/pcaproject/timesheet-server/internal/app/models"
	"github.com/pcaproject/timesheet-server/internal/pkg/helpers"
)

// TimeSheetEntry is one day's hours on the wire, both directions.
type TimeSheetEntry struct {
	DateWorked string  `json:"dateWorked" binding:"required" example:"2026-03-02"`
	WorkHours  float64 `json:"workHours" binding:"min=0"`
	PTOHours   float64 `json:"ptoHours" binding:"min=0"`
	ExtraHours float64 `json:"extraHours" binding:"min=0"`
	Comment    string  `json:"comment,omitempty"`
}

// SubmitTimeSheetRequest represents a bulk timesheet submission;
// existing dates are updated, new dates are created.
type SubmitTimeSheetRequest struct {
	TimeSheets []TimeSheetEntry `json:"timeSheets" binding:"required,min=1,dive"`
}

// UpdateTimeSheetRequest updates the record for a single date.
type UpdateTimeSheetRequest struct {
	TimeSheetEntry
}

// DeleteTimeSheetRequest deletes the records for the listed dates.
type DeleteTimeSheetRequest struct {
	DatesWorked []string `json:"datesWorked" binding:"required,min=1"`
}

// HoursTotals aggregates hours per category over a date range.
type HoursTotals struct {
	WorkHours  float64 `json:"workHours" example:"40"`
	PTOHours   float64 `json:"ptoHours" example:"8"`
	ExtraHours float64 `json:"extraHours" example:"2.5"`
}

// TimeSheetRangeResponse is the aggregation payload for an employee
// over a date range.
type TimeSheetRangeResponse struct {
	EmployeeID string           `json:"employeeId" example:"jsmith300"`
	DateStart  string           `json:"dateStart" example:"2026-03-01"`
	DateEnd    string           `json:"dateEnd" example:"2026-03-31"`
	TotalHours HoursTotals      `json:"totalHours"`
	Records    []TimeSheetEntry `json:"records"`
}

// NewTimeSheetEntry maps a timesheet model to its wire shape.
func NewTimeSheetEntry(t *models.TimeSheet) TimeSheetEntry {
	return TimeSheetEntry{
		DateWorked: helpers.FormatDate(t.DateWorked),
		WorkHours:  t.WorkHours,
		PTOHours:   t.PTOHours,
		ExtraHours: t.ExtraHours,
		Comment:    t.Comment,
	}
}
