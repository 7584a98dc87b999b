package dto

import (
	"time"

	"github.com/pcaproject/timesheet-server/internal/app/models"
)

// CreateStudentRequest represents a new student registration
type CreateStudentRequest struct {
	FirstName     string `json:"firstName" binding:"required"`
	LastName      string `json:"lastName" binding:"required"`
	CarpoolNumber int    `json:"carpoolNumber" binding:"required,min=1"`
	PrimaryEmail  string `json:"primaryEmail" binding:"omitempty,email"`
}

// UpdateStudentRequest represents a partial student update. The
// generated student identifier itself is immutable.
type UpdateStudentRequest struct {
	FirstName     *string `json:"firstName"`
	LastName      *string `json:"lastName"`
	CarpoolNumber *int    `json:"carpoolNumber"`
	PrimaryEmail  *string `json:"primaryEmail"`
	IsEnabled     *bool   `json:"isEnabled"`
}

// RemoveStudentsRequest represents a bulk student removal
type RemoveStudentsRequest struct {
	StudentIDs []string `json:"studentIds" binding:"required,min=1"`
}

// StudentResponse represents student information returned to clients
type StudentResponse struct {
	StudentID     string    `json:"studentId" example:"jjerome3"`
	FirstName     string    `json:"firstName" example:"Jerry"`
	LastName      string    `json:"lastName" example:"Jerome"`
	CarpoolNumber int       `json:"carpoolNumber" example:"3"`
	PrimaryEmail  string    `json:"primaryEmail,omitempty"`
	IsEnabled     bool      `json:"isEnabled"`
	EntryCreated  time.Time `json:"entryCreated"`
}

// NewStudentResponse maps a student model to its response shape.
func NewStudentResponse(s *models.Student) StudentResponse {
	return StudentResponse{
		StudentID:     s.StudentID,
		FirstName:     s.FirstName,
		LastName:      s.LastName,
		CarpoolNumber: s.CarpoolNumber,
		PrimaryEmail:  s.PrimaryEmail,
		IsEnabled:     s.IsEnabled,
		EntryCreated:  s.EntryCreated,
	}
}

// NewStudentListResponse maps a slice of student models.
func NewStudentListResponse(students []*models.Student) []StudentResponse {
	out := make([]StudentResponse, 0, len(students))
	for _, s := range students {
		out = append(out, NewStudentResponse(s))
	}
	return out
}
