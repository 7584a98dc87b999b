package models

import (
	"time"
)

// TimeSheet defines one day's recorded hours for an employee, based on
// the 'timesheet_records' table. One row per (employee, date).
type TimeSheet struct {
	ID           int64     `json:"id" db:"id"`
	EmployeeID   string    `json:"employeeId" db:"employee_id" example:"jsmith300"`
	DateWorked   time.Time `json:"-" db:"date_worked"`
	WorkHours    float64   `json:"workHours" db:"work_hours" example:"8"`   // Regular hours, half-hour increments
	PTOHours     float64   `json:"ptoHours" db:"pto_hours" example:"0"`     // Paid time off hours
	ExtraHours   float64   `json:"extraHours" db:"extra_hours" example:"1"` // Overtime hours
	Comment      string    `json:"comment,omitempty" db:"comment"`
	EntryCreated time.Time `json:"entryCreated" db:"entry_created"`
}

// TotalHours sums every hour category on the record.
func (t *TimeSheet) TotalHours() float64 {
	return t.WorkHours + t.PTOHours + t.ExtraHours
}

// IsEmpty reports whether the record carries no hours at all.
func (t *TimeSheet) IsEmpty() bool {
	return t.WorkHours == 0 && t.PTOHours == 0 && t.ExtraHours == 0
}
