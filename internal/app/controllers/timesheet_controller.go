package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/pcaproject/timesheet-server/internal/app/models/dto"
	"github.com/pcaproject/timesheet-server/internal/app/services"
	"github.com/pcaproject/timesheet-server/internal/middleware"
	"github.com/pcaproject/timesheet-server/internal/pkg/apperrors"
)

// TimeSheetController handles timesheet submission and retrieval
type TimeSheetController struct {
	timeSheetService services.TimeSheetService
	logger           zerolog.Logger
}

// NewTimeSheetController creates a new TimeSheetController
func NewTimeSheetController(timeSheetService services.TimeSheetService, logger zerolog.Logger) *TimeSheetController {
	return &TimeSheetController{
		timeSheetService: timeSheetService,
		logger:           logger,
	}
}

// authorizeEmployee rejects requests that address another employee's
// records unless the caller is an administrator.
func (c *TimeSheetController) authorizeEmployee(ctx *gin.Context, employeeID string) bool {
	if employeeID == middleware.CurrentEmployeeID(ctx) || middleware.IsAdministrator(ctx) {
		return true
	}
	c.logger.Warn().
		Str("employeeId", middleware.CurrentEmployeeID(ctx)).
		Str("targetId", employeeID).
		Msg("Timesheet access denied")
	middleware.HandleAPIError(ctx, apperrors.ErrPermissionDenied)
	return false
}

// GetRange returns an employee's records and hour totals over a range
// @Summary Get timesheet range
// @Description Returns an employee's timesheet records between date_start and date_end inclusive, with per-category hour totals. An employee with no records in the range yields zeroed totals and an empty record list.
// @Tags timesheet
// @Produce json
// @Security BearerAuth
// @Param employee_id path string true "Employee identifier"
// @Param date_start query string true "Range start (YYYY-MM-DD)"
// @Param date_end query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} dto.APIResponse{data=dto.TimeSheetRangeResponse} "Timesheet retrieved"
// @Failure 400 {object} dto.ErrorResponse "Missing or malformed dates, or start after end"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Not allowed to read another employee's timesheet"
// @Failure 404 {object} dto.ErrorResponse "Employee not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /timesheet/{employee_id} [get]
func (c *TimeSheetController) GetRange(ctx *gin.Context) {
	employeeID := ctx.Param("employee_id")
	if !c.authorizeEmployee(ctx, employeeID) {
		return
	}

	dateStart, dateEnd := dateRangeParams(ctx)
	if dateStart == "" || dateEnd == "" {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Missing date range").
			WithDetails("Both date_start and date_end query parameters are required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	rangeResponse, err := c.timeSheetService.GetRange(ctx.Request.Context(), employeeID, dateStart, dateEnd)
	if err != nil {
		c.logger.Warn().Err(err).
			Str("employeeId", employeeID).
			Str("dateStart", dateStart).
			Str("dateEnd", dateEnd).
			Msg("Failed to load timesheet range")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(rangeResponse, "Timesheet retrieved"))
}

// Submit records one or more days of hours for an employee
// @Summary Submit timesheet entries
// @Description Submits hour entries for an employee. A single-entry submission is a strict create and conflicts when the date already has a record; a multi-entry submission updates existing dates in place. Hours are rounded up to half-hour increments and entries with no hours at all are skipped.
// @Tags timesheet
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param employee_id path string true "Employee identifier"
// @Param request body dto.SubmitTimeSheetRequest true "Entries to submit"
// @Success 201 {object} dto.APIResponse{data=[]dto.TimeSheetEntry} "Entries recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format, malformed date or hours out of range"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Not allowed to submit for another employee"
// @Failure 404 {object} dto.ErrorResponse "Employee not found"
// @Failure 409 {object} dto.ErrorResponse "Date already has a record"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /timesheet/{employee_id} [post]
func (c *TimeSheetController) Submit(ctx *gin.Context) {
	employeeID := ctx.Param("employee_id")
	if !c.authorizeEmployee(ctx, employeeID) {
		return
	}

	var req dto.SubmitTimeSheetRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	entries, err := c.timeSheetService.Submit(ctx.Request.Context(), employeeID, &req)
	if err != nil {
		c.logger.Warn().Err(err).
			Str("employeeId", employeeID).
			Int("entries", len(req.TimeSheets)).
			Msg("Timesheet submission failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Str("employeeId", employeeID).
		Int("recorded", len(entries)).
		Msg("Timesheet entries recorded")
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(entries, "Timesheet entries recorded"))
}

// UpdateRecord replaces the record for a single date
// @Summary Update timesheet record
// @Description Replaces the hours and comment of the record for the given date
// @Tags timesheet
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param employee_id path string true "Employee identifier"
// @Param request body dto.UpdateTimeSheetRequest true "Replacement entry"
// @Success 200 {object} dto.APIResponse{data=dto.TimeSheetEntry} "Record updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format, malformed date or hours out of range"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Not allowed to update another employee's record"
// @Failure 404 {object} dto.ErrorResponse "Employee or record not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /timesheet/{employee_id} [put]
func (c *TimeSheetController) UpdateRecord(ctx *gin.Context) {
	employeeID := ctx.Param("employee_id")
	if !c.authorizeEmployee(ctx, employeeID) {
		return
	}

	var req dto.UpdateTimeSheetRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	record, err := c.timeSheetService.UpdateRecord(ctx.Request.Context(), employeeID, &req)
	if err != nil {
		c.logger.Warn().Err(err).
			Str("employeeId", employeeID).
			Str("dateWorked", req.DateWorked).
			Msg("Timesheet update failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewTimeSheetEntry(record), "Timesheet record updated"))
}

// DeleteRecords removes the records for the listed dates
// @Summary Delete timesheet records
// @Description Deletes an employee's records for every listed date
// @Tags timesheet
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param employee_id path string true "Employee identifier"
// @Param request body dto.DeleteTimeSheetRequest true "Dates to delete"
// @Success 200 {object} dto.APIResponse{data=dto.CountData} "Records deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or malformed date"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Not allowed to delete another employee's records"
// @Failure 404 {object} dto.ErrorResponse "No record existed for any listed date"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /timesheet/{employee_id} [delete]
func (c *TimeSheetController) DeleteRecords(ctx *gin.Context) {
	employeeID := ctx.Param("employee_id")
	if !c.authorizeEmployee(ctx, employeeID) {
		return
	}

	var req dto.DeleteTimeSheetRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	deleted, err := c.timeSheetService.DeleteRecords(ctx.Request.Context(), employeeID, req.DatesWorked)
	if err != nil {
		c.logger.Warn().Err(err).
			Str("employeeId", employeeID).
			Int("dates", len(req.DatesWorked)).
			Msg("Timesheet deletion failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Str("employeeId", employeeID).
		Int64("deleted", deleted).
		Msg("Timesheet records deleted")
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.CountData{Count: deleted}, "Timesheet records deleted"))
}

// CountRecords returns the total number of timesheet records
// @Summary Count timesheet records
// @Tags timesheet
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.CountData} "Record count"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /timesheet/count [get]
func (c *TimeSheetController) CountRecords(ctx *gin.Context) {
	count, err := c.timeSheetService.CountRecords(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.CountData{Count: count}, "Timesheet record count"))
}
