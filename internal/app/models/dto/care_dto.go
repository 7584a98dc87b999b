package dto

import (
	"time"

	"github.com/pcaproject/timesheet-server/internal/app/models"
	"github.com/pcaproject/timesheet-server/internal/pkg/helpers"
)

// CheckInRequest records a student's arrival at a care service.
type CheckInRequest struct {
	StudentID   string          `json:"studentId" binding:"required"`
	CareDate    string          `json:"careDate" binding:"required" example:"2026-03-02"`
	CareType    models.CareType `json:"careType" binding:"required" example:"after"`
	CheckInTime string          `json:"checkInTime,omitempty" example:"15:45"` // defaults to the current clock
	Signature   string          `json:"signature,omitempty"`
}

// CheckOutRequest closes a student's open care record.
type CheckOutRequest struct {
	StudentID    string          `json:"studentId" binding:"required"`
	CareDate     string          `json:"careDate" binding:"required" example:"2026-03-02"`
	CareType     models.CareType `json:"careType" binding:"required" example:"after"`
	CheckOutTime string          `json:"checkOutTime,omitempty" example:"17:10"` // defaults to the current clock
	Signature    string          `json:"signature,omitempty"`
}

// DeleteCareRequest removes a day's care record(s) for a student.
// When CareType is empty both services' records for the day go.
type DeleteCareRequest struct {
	StudentID string          `json:"studentId" binding:"required"`
	CareDate  string          `json:"careDate" binding:"required"`
	CareType  models.CareType `json:"careType,omitempty"`
}

// CareRecordResponse represents one care attendance record
type CareRecordResponse struct {
	StudentID         string     `json:"studentId" example:"jjerome3"`
	CareDate          string     `json:"careDate" example:"2026-03-02"`
	CareType          string     `json:"careType" example:"after"`
	CheckInTime       time.Time  `json:"checkInTime"`
	CheckOutTime      *time.Time `json:"checkOutTime,omitempty"`
	CheckInSignature  string     `json:"checkInSignature,omitempty"`
	CheckOutSignature string     `json:"checkOutSignature,omitempty"`
}

// CareTimeSlot describes one configured care service window.
type CareTimeSlot struct {
	CareType string `json:"careType" example:"before"`
	OpensAt  string `json:"opensAt" example:"07:00"`
	ClosesAt string `json:"closesAt" example:"08:30"`
}

// CareDayResponse bundles a student's records for one day with the
// configured service windows.
type CareDayResponse struct {
	StudentID string               `json:"studentId"`
	CareDate  string               `json:"careDate"`
	TimeSlots []CareTimeSlot       `json:"timeSlots"`
	Records   []CareRecordResponse `json:"records"`
}

// NewCareRecordResponse maps a care record model to its wire shape.
func NewCareRecordResponse(r *models.CareRecord) CareRecordResponse {
	return CareRecordResponse{
		StudentID:         r.StudentID,
		CareDate:          helpers.FormatDate(r.CareDate),
		CareType:          string(r.CareType),
		CheckInTime:       r.CheckInTime,
		CheckOutTime:      r.CheckOutTime,
		CheckInSignature:  r.CheckInSignature,
		CheckOutSignature: r.CheckOutSignature,
	}
}

// NewCareRecordListResponse maps a slice of care record models.
func NewCareRecordListResponse(records []*models.CareRecord) []CareRecordResponse {
	out := make([]CareRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, NewCareRecordResponse(r))
	}
	return out
}
