package models

import (
	"time"
)

// Student defines the student model based on the 'students' table
type Student struct {
	ID            int64     `json:"id" db:"id" example:"1"`                         // Row identifier
	StudentID     string    `json:"studentId" db:"student_id" example:"jjerome3"`   // Generated public identifier, immutable
	FirstName     string    `json:"firstName" db:"first_name" example:"Jerry"`      // Student's first name
	LastName      string    `json:"lastName" db:"last_name" example:"Jerome"`       // Student's last name
	CarpoolNumber int       `json:"carpoolNumber" db:"carpool_number" example:"3"`  // Family carpool number
	PrimaryEmail  string    `json:"primaryEmail,omitempty" db:"primary_email"`      // Guardian contact email
	IsEnabled     bool      `json:"isEnabled" db:"is_enabled" example:"true"`       // Disabled students cannot be checked in
	EntryCreated  time.Time `json:"entryCreated" db:"entry_created"`
	LastUpdated   time.Time `json:"lastUpdated" db:"last_updated"`
}
