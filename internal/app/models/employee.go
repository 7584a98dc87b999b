package models

import (
	"time"
)

// Employee defines the employee model based on the 'employees' table
type Employee struct {
	ID                int64     `json:"id" db:"id" example:"1"`                                   // Row identifier
	EmployeeID        string    `json:"employeeId" db:"employee_id" example:"jsmith300"`          // Generated public identifier, immutable
	FirstName         string    `json:"firstName" db:"first_name" example:"John"`                 // Employee's first name
	LastName          string    `json:"lastName" db:"last_name" example:"Smith"`                  // Employee's last name
	Password          string    `json:"-" db:"password_hash"`                                     // Hashed password (excluded from JSON)
	Role              RoleType  `json:"role" db:"role" example:"employee"`                        // administrator or employee
	PrimaryEmail      string    `json:"primaryEmail" db:"primary_email" example:"jsmith@pca.edu"` // Contact email, unique
	PTOHoursEnabled   bool      `json:"ptoHoursEnabled" db:"pto_hours_enabled" example:"true"`    // Whether PTO hours can be recorded
	ExtraHoursEnabled bool      `json:"extraHoursEnabled" db:"extra_hours_enabled" example:"true"`
	IsEnabled         bool      `json:"isEnabled" db:"is_enabled" example:"true"` // Disabled accounts cannot log in
	EntryCreated      time.Time `json:"entryCreated" db:"entry_created" example:"2024-01-01T10:00:00Z"`
	LastUpdated       time.Time `json:"lastUpdated" db:"last_updated" example:"2024-01-02T15:30:00Z"`
}
