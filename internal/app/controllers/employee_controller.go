package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/pcaproject/timesheet-server/internal/app/models/dto"
	"github.com/pcaproject/timesheet-server/internal/app/services"
	"github.com/pcaproject/timesheet-server/internal/middleware"
)

// EmployeeController handles employee management operations
type EmployeeController struct {
	employeeService services.EmployeeService
	logger          zerolog.Logger
}

// NewEmployeeController creates a new EmployeeController
func NewEmployeeController(employeeService services.EmployeeService, logger zerolog.Logger) *EmployeeController {
	return &EmployeeController{
		employeeService: employeeService,
		logger:          logger,
	}
}

// CreateEmployee registers a new employee
// @Summary Create employee
// @Description Creates a new employee. The employee identifier is generated from the name and a database sequence, e.g. "jsmith300".
// @Tags employees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateEmployeeRequest true "Employee information"
// @Success 201 {object} dto.APIResponse{data=dto.EmployeeResponse} "Employee created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or validation error"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Administrator role required"
// @Failure 409 {object} dto.ErrorResponse "Employee or email already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /employees [post]
func (c *EmployeeController) CreateEmployee(ctx *gin.Context) {
	var req dto.CreateEmployeeRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	employee, err := c.employeeService.CreateEmployee(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("lastName", req.LastName).Msg("Failed to create employee")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("employeeId", employee.EmployeeID).Msg("Employee created")
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.NewEmployeeResponse(employee), "Employee created"))
}

// GetEmployee returns a single employee by identifier
// @Summary Get employee
// @Description Returns the employee record for the given identifier
// @Tags employees
// @Produce json
// @Security BearerAuth
// @Param employee_id path string true "Employee identifier"
// @Success 200 {object} dto.APIResponse{data=dto.EmployeeResponse} "Employee retrieved"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 404 {object} dto.ErrorResponse "Employee not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /employees/{employee_id} [get]
func (c *EmployeeController) GetEmployee(ctx *gin.Context) {
	employeeID := ctx.Param("employee_id")

	employee, err := c.employeeService.GetEmployee(ctx.Request.Context(), employeeID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewEmployeeResponse(employee), "Employee retrieved"))
}

// GetAllEmployees returns every employee
// @Summary List employees
// @Description Returns all employees ordered by identifier
// @Tags employees
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.EmployeeResponse} "Employees retrieved"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /employees [get]
func (c *EmployeeController) GetAllEmployees(ctx *gin.Context) {
	employees, err := c.employeeService.GetAllEmployees(ctx.Request.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to list employees")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewEmployeeListResponse(employees), "Employees retrieved"))
}

// CountEmployees returns the number of employees
// @Summary Count employees
// @Tags employees
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.CountData} "Employee count"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /employees/count [get]
func (c *EmployeeController) CountEmployees(ctx *gin.Context) {
	count, err := c.employeeService.CountEmployees(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.CountData{Count: count}, "Employee count"))
}

// UpdateEmployee applies a partial update to an employee
// @Summary Update employee
// @Description Updates the provided fields of an employee. The generated identifier is immutable.
// @Tags employees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param employee_id path string true "Employee identifier"
// @Param request body dto.UpdateEmployeeRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.EmployeeResponse} "Employee updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or validation error"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Administrator role required"
// @Failure 404 {object} dto.ErrorResponse "Employee not found"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /employees/{employee_id} [put]
func (c *EmployeeController) UpdateEmployee(ctx *gin.Context) {
	employeeID := ctx.Param("employee_id")

	var req dto.UpdateEmployeeRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	employee, err := c.employeeService.UpdateEmployee(ctx.Request.Context(), employeeID, &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("employeeId", employeeID).Msg("Failed to update employee")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("employeeId", employeeID).Msg("Employee updated")
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewEmployeeResponse(employee), "Employee updated"))
}

// RemoveEmployee deletes a single employee
// @Summary Remove employee
// @Description Deletes an employee together with their timesheet records
// @Tags employees
// @Produce json
// @Security BearerAuth
// @Param employee_id path string true "Employee identifier"
// @Success 200 {object} dto.APIResponse "Employee removed"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Administrator role required"
// @Failure 404 {object} dto.ErrorResponse "Employee not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /employees/{employee_id} [delete]
func (c *EmployeeController) RemoveEmployee(ctx *gin.Context) {
	employeeID := ctx.Param("employee_id")

	if err := c.employeeService.RemoveEmployee(ctx.Request.Context(), employeeID); err != nil {
		c.logger.Warn().Err(err).Str("employeeId", employeeID).Msg("Failed to remove employee")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("employeeId", employeeID).Msg("Employee removed")
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Employee removed"))
}

// RemoveEmployees deletes several employees in one call
// @Summary Remove employees
// @Description Deletes every listed employee together with their timesheet records
// @Tags employees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RemoveEmployeesRequest true "Employee identifiers to remove"
// @Success 200 {object} dto.APIResponse{data=dto.CountData} "Employees removed"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Administrator role required"
// @Failure 404 {object} dto.ErrorResponse "No listed employee exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /employees [delete]
func (c *EmployeeController) RemoveEmployees(ctx *gin.Context) {
	var req dto.RemoveEmployeesRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	removed, err := c.employeeService.RemoveEmployees(ctx.Request.Context(), req.EmployeeIDs)
	if err != nil {
		c.logger.Warn().Err(err).Int("requested", len(req.EmployeeIDs)).Msg("Failed to remove employees")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("removed", removed).Msg("Employees removed")
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.CountData{Count: removed}, "Employees removed"))
}
