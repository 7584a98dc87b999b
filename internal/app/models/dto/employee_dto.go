package dto

import (
	"time"

	"github.com/pcaproject/timesheet-server/internal/app/models"
)

// CreateEmployeeRequest represents a new employee registration
type CreateEmployeeRequest struct {
	FirstName         string          `json:"firstName" binding:"required"`
	LastName          string          `json:"lastName" binding:"required"`
	Password          string          `json:"password" binding:"required,min=8"`
	Role              models.RoleType `json:"role" binding:"required"`
	PrimaryEmail      string          `json:"primaryEmail" binding:"required,email"`
	PTOHoursEnabled   *bool           `json:"ptoHoursEnabled"`
	ExtraHoursEnabled *bool           `json:"extraHoursEnabled"`
}

// UpdateEmployeeRequest represents a partial employee update. The
// generated employee identifier itself is immutable.
type UpdateEmployeeRequest struct {
	FirstName         *string          `json:"firstName"`
	LastName          *string          `json:"lastName"`
	Role              *models.RoleType `json:"role"`
	PrimaryEmail      *string          `json:"primaryEmail"`
	PTOHoursEnabled   *bool            `json:"ptoHoursEnabled"`
	ExtraHoursEnabled *bool            `json:"extraHoursEnabled"`
	IsEnabled         *bool            `json:"isEnabled"`
}

// RemoveEmployeesRequest represents a bulk employee removal
type RemoveEmployeesRequest struct {
	EmployeeIDs []string `json:"employeeIds" binding:"required,min=1"`
}

// EmployeeResponse represents employee information returned to clients
type EmployeeResponse struct {
	EmployeeID        string    `json:"employeeId" example:"jsmith300"`
	FirstName         string    `json:"firstName" example:"John"`
	LastName          string    `json:"lastName" example:"Smith"`
	Role              string    `json:"role" example:"employee"`
	PrimaryEmail      string    `json:"primaryEmail" example:"jsmith@pca.edu"`
	PTOHoursEnabled   bool      `json:"ptoHoursEnabled"`
	ExtraHoursEnabled bool      `json:"extraHoursEnabled"`
	IsEnabled         bool      `json:"isEnabled"`
	EntryCreated      time.Time `json:"entryCreated"`
}

// NewEmployeeResponse maps an employee model to its response shape.
func NewEmployeeResponse(e *models.Employee) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID:        e.EmployeeID,
		FirstName:         e.FirstName,
		LastName:          e.LastName,
		Role:              string(e.Role),
		PrimaryEmail:      e.PrimaryEmail,
		PTOHoursEnabled:   e.PTOHoursEnabled,
		ExtraHoursEnabled: e.ExtraHoursEnabled,
		IsEnabled:         e.IsEnabled,
		EntryCreated:      e.EntryCreated,
	}
}

// NewEmployeeListResponse maps a slice of employee models.
func NewEmployeeListResponse(employees []*models.Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, NewEmployeeResponse(e))
	}
	return out
}
