package helpers

import "math"

// HoursIncrement is the granularity timesheet hours are recorded in.
const HoursIncrement = 0.5

// RoundHoursUp rounds a positive hours value up to the next half-hour
// increment. Values at or below zero collapse to zero.
func RoundHoursUp(hours float64) float64 {
	if hours <= 0 {
		return 0
	}
	whole, fraction := math.Modf(hours)
	if fraction == 0 {
		return whole
	}
	if fraction <= HoursIncrement {
		return whole + HoursIncrement
	}
	return whole + 1
}
