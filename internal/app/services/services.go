package services

// Services defined in this package:
// - AuthService: authentication, token refresh and password changes
// - EmployeeService: employee accounts and identifier generation
// - StudentService: student roster and identifier generation
// - TimeSheetService: daily hours records and range aggregation
// - CareService: before/after care check-in and check-out
