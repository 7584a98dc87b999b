package models

import (
	"time"
)

// CareRecord defines one student's attendance in a care service on one
// day, based on the 'care_records' table. One row per
// (student, date, care type); an open record has no check-out time.
type CareRecord struct {
	ID                int64      `json:"id" db:"id"`
	StudentID         string     `json:"studentId" db:"student_id" example:"jjerome3"`
	CareDate          time.Time  `json:"-" db:"care_date"`
	CareType          CareType   `json:"careType" db:"care_type" example:"after"`
	CheckInTime       time.Time  `json:"checkInTime" db:"check_in_time"`
	CheckOutTime      *time.Time `json:"checkOutTime,omitempty" db:"check_out_time"` // Nil while the student is still checked in
	CheckInSignature  string     `json:"checkInSignature,omitempty" db:"check_in_signature"`
	CheckOutSignature string     `json:"checkOutSignature,omitempty" db:"check_out_signature"`
	EntryCreated      time.Time  `json:"entryCreated" db:"entry_created"`
}

// CheckedOut reports whether the record has been closed.
func (r *CareRecord) CheckedOut() bool {
	return r.CheckOutTime != nil
}
