package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,4}$`

	// Generated identifier pattern: initial + lowercase last name + number,
	// e.g. jsmith300 or jjerome3
	IdentifierPattern = `^[a-z][a-z]+\d+$`

	// Calendar date pattern, YYYY-MM-DD
	DatePattern = `^\d{4}-\d{2}-\d{2}$`

	// Time of day pattern, HH:MM
	ClockPattern = `^\d{2}:\d{2}$`

	// Password min length
	PasswordMinLength = 8

	// Name validation min/max length
	NameMinLength = 1
	NameMaxLength = 100
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	Email      *regexp.Regexp
	Identifier *regexp.Regexp
	Date       *regexp.Regexp
	Clock      *regexp.Regexp
}{
	Email:      regexp.MustCompile(EmailPattern),
	Identifier: regexp.MustCompile(IdentifierPattern),
	Date:       regexp.MustCompile(DatePattern),
	Clock:      regexp.MustCompile(ClockPattern),
}

// String validation
type StringValidation struct {
	Value    string
	MinLen   int
	MaxLen   int
	Required bool
	Pattern  *regexp.Regexp
}

// NewStringValidation creates a new string validation
func NewStringValidation(value string) *StringValidation {
	return &StringValidation{
		Value:    value,
		Required: true,
	}
}

// WithMinLength sets minimum length
func (v *StringValidation) WithMinLength(min int) *StringValidation {
	v.MinLen = min
	return v
}

// WithMaxLength sets maximum length
func (v *StringValidation) WithMaxLength(max int) *StringValidation {
	v.MaxLen = max
	return v
}

// WithPattern sets regex pattern
func (v *StringValidation) WithPattern(pattern *regexp.Regexp) *StringValidation {
	v.Pattern = pattern
	return v
}

// WithRequired sets if field is required
func (v *StringValidation) WithRequired(required bool) *StringValidation {
	v.Required = required
	return v
}

// Validate performs validation
func (v *StringValidation) Validate() bool {
	if v.Required && v.Value == "" {
		return false
	}

	// Empty optional values skip the remaining checks.
	if !v.Required && v.Value == "" {
		return true
	}

	if v.MinLen > 0 && len(v.Value) < v.MinLen {
		return false
	}

	if v.MaxLen > 0 && len(v.Value) > v.MaxLen {
		return false
	}

	if v.Pattern != nil && !v.Pattern.MatchString(v.Value) {
		return false
	}

	return true
}

// HoursValidation checks a recorded hours value: non-negative and inside
// a sane single-day ceiling.
type HoursValidation struct {
	Value float64
	Max   float64
}

// NewHoursValidation creates a new hours validation with the default
// 24 hour ceiling.
func NewHoursValidation(value float64) *HoursValidation {
	return &HoursValidation{
		Value: value,
		Max:   24,
	}
}

// WithMax sets maximum value
func (v *HoursValidation) WithMax(max float64) *HoursValidation {
	v.Max = max
	return v
}

// Validate performs validation
func (v *HoursValidation) Validate() bool {
	if v.Value < 0 {
		return false
	}
	if v.Max > 0 && v.Value > v.Max {
		return false
	}
	return true
}
