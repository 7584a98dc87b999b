package models

// RoleType defines the employee role type
type RoleType string

const (
	RoleAdministrator RoleType = "administrator"
	RoleEmployee      RoleType = "employee"
)

// ValidRole reports whether the value is a known role.
func ValidRole(r RoleType) bool {
	return r == RoleAdministrator || r == RoleEmployee
}

// CareType identifies which childcare service a record belongs to.
type CareType string

const (
	CareBefore CareType = "before"
	CareAfter  CareType = "after"
)

// ValidCareType reports whether the value is a known care type.
func ValidCareType(c CareType) bool {
	return c == CareBefore || c == CareAfter
}
