package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/pcaproject/timesheet-server/internal/app/models/dto"
	"github.com/pcaproject/timesheet-server/internal/app/services"
	"github.com/pcaproject/timesheet-server/internal/middleware"
)

// CareController handles before/after care check-in and check-out
type CareController struct {
	careService services.CareService
	logger      zerolog.Logger
}

// NewCareController creates a new CareController
func NewCareController(careService services.CareService, logger zerolog.Logger) *CareController {
	return &CareController{
		careService: careService,
		logger:      logger,
	}
}

// CheckIn records a student's arrival at a care service
// @Summary Check a student in
// @Description Records a student's arrival for the given date and care service. The check-in time defaults to the current clock and must fall inside the service's configured window. A student already checked in (or already checked out) for the same date and service conflicts.
// @Tags care
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CheckInRequest true "Check-in payload"
// @Success 201 {object} dto.APIResponse{data=dto.CareRecordResponse} "Student checked in"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format, unknown care type, malformed date or time outside the care window"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 409 {object} dto.ErrorResponse "Student already checked in"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /care/checkin [post]
func (c *CareController) CheckIn(ctx *gin.Context) {
	var req dto.CheckInRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	record, err := c.careService.CheckIn(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).
			Str("studentId", req.StudentID).
			Str("careDate", req.CareDate).
			Str("careType", string(req.CareType)).
			Msg("Check-in failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Str("studentId", record.StudentID).
		Str("careType", string(record.CareType)).
		Msg("Student checked in")
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.NewCareRecordResponse(record), "Student checked in"))
}

// CheckOut closes a student's open care record
// @Summary Check a student out
// @Description Records a student's departure for the given date and care service. The check-out time defaults to the current clock, is clamped to the window close, and must fall after the check-in time. Checking out without an open check-in, or twice, conflicts.
// @Tags care
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CheckOutRequest true "Check-out payload"
// @Success 200 {object} dto.APIResponse{data=dto.CareRecordResponse} "Student checked out"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format, unknown care type, malformed date or check-out not after check-in"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 409 {object} dto.ErrorResponse "Student not checked in or already checked out"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /care/checkout [post]
func (c *CareController) CheckOut(ctx *gin.Context) {
	var req dto.CheckOutRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	record, err := c.careService.CheckOut(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).
			Str("studentId", req.StudentID).
			Str("careDate", req.CareDate).
			Str("careType", string(req.CareType)).
			Msg("Check-out failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Str("studentId", record.StudentID).
		Str("careType", string(record.CareType)).
		Msg("Student checked out")
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewCareRecordResponse(record), "Student checked out"))
}

// GetDay returns a student's care records for one day
// @Summary Get a student's care day
// @Description Returns a student's care records for one date together with the configured service windows
// @Tags care
// @Produce json
// @Security BearerAuth
// @Param student_id path string true "Student identifier"
// @Param care_date path string true "Care date (YYYY-MM-DD)"
// @Success 200 {object} dto.APIResponse{data=dto.CareDayResponse} "Care day retrieved"
// @Failure 400 {object} dto.ErrorResponse "Malformed date"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /care/{student_id}/{care_date} [get]
func (c *CareController) GetDay(ctx *gin.Context) {
	studentID := ctx.Param("student_id")
	careDate := ctx.Param("care_date")

	day, err := c.careService.GetDay(ctx.Request.Context(), studentID, careDate)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(day, "Care day retrieved"))
}

// GetRange returns a student's care records over a date range
// @Summary Get a student's care records
// @Description Returns a student's care records between date_start and date_end inclusive
// @Tags care
// @Produce json
// @Security BearerAuth
// @Param student_id path string true "Student identifier"
// @Param date_start query string true "Range start (YYYY-MM-DD)"
// @Param date_end query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} dto.APIResponse{data=[]dto.CareRecordResponse} "Care records retrieved"
// @Failure 400 {object} dto.ErrorResponse "Missing or malformed dates, or start after end"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /care/{student_id} [get]
func (c *CareController) GetRange(ctx *gin.Context) {
	studentID := ctx.Param("student_id")

	dateStart, dateEnd := dateRangeParams(ctx)
	if dateStart == "" || dateEnd == "" {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Missing date range").
			WithDetails("Both date_start and date_end query parameters are required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	records, err := c.careService.GetRange(ctx.Request.Context(), studentID, dateStart, dateEnd)
	if err != nil {
		c.logger.Warn().Err(err).
			Str("studentId", studentID).
			Str("dateStart", dateStart).
			Str("dateEnd", dateEnd).
			Msg("Failed to load care range")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewCareRecordListResponse(records), "Care records retrieved"))
}

// GetTimeSlots returns the configured care service windows
// @Summary List care time slots
// @Tags care
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.CareTimeSlot} "Time slots retrieved"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Router /care/timeslots [get]
func (c *CareController) GetTimeSlots(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.careService.TimeSlots(), "Care time slots"))
}

// DeleteRecords removes a day's care record(s) for a student
// @Summary Delete care records
// @Description Deletes a student's care record for the given date and service, or both services' records when careType is omitted
// @Tags care
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.DeleteCareRequest true "Record selector"
// @Success 200 {object} dto.APIResponse{data=dto.CountData} "Care records deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or malformed date"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Administrator role required"
// @Failure 404 {object} dto.ErrorResponse "No matching care record"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /care [delete]
func (c *CareController) DeleteRecords(ctx *gin.Context) {
	var req dto.DeleteCareRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	deleted, err := c.careService.DeleteRecords(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).
			Str("studentId", req.StudentID).
			Str("careDate", req.CareDate).
			Msg("Care record deletion failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Str("studentId", req.StudentID).
		Int64("deleted", deleted).
		Msg("Care records deleted")
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.CountData{Count: deleted}, "Care records deleted"))
}

// CountRecords returns the total number of care records
// @Summary Count care records
// @Tags care
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.CountData} "Record count"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /care/count [get]
func (c *CareController) CountRecords(ctx *gin.Context) {
	count, err := c.careService.CountRecords(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.CountData{Count: count}, "Care record count"))
}
