package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/pcaproject/timesheet-server/internal/app/models/dto"
	"github.com/pcaproject/timesheet-server/internal/app/services"
	"github.com/pcaproject/timesheet-server/internal/middleware"
)

// StudentController handles student management operations
type StudentController struct {
	studentService services.StudentService
	logger         zerolog.Logger
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService, logger zerolog.Logger) *StudentController {
	return &StudentController{
		studentService: studentService,
		logger:         logger,
	}
}

// CreateStudent registers a new student
// @Summary Create student
// @Description Creates a new student. The student identifier is generated from the name and carpool number, e.g. "jjerome3"; collisions get a numeric suffix.
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateStudentRequest true "Student information"
// @Success 201 {object} dto.APIResponse{data=dto.StudentResponse} "Student created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or validation error"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Administrator role required"
// @Failure 409 {object} dto.ErrorResponse "Student identifier already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	student, err := c.studentService.CreateStudent(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("lastName", req.LastName).Msg("Failed to create student")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("studentId", student.StudentID).Msg("Student created")
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.NewStudentResponse(student), "Student created"))
}

// GetStudent returns a single student by identifier
// @Summary Get student
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param student_id path string true "Student identifier"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse} "Student retrieved"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{student_id} [get]
func (c *StudentController) GetStudent(ctx *gin.Context) {
	studentID := ctx.Param("student_id")

	student, err := c.studentService.GetStudent(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewStudentResponse(student), "Student retrieved"))
}

// GetAllStudents returns every student
// @Summary List students
// @Description Returns all students ordered by identifier
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.StudentResponse} "Students retrieved"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [get]
func (c *StudentController) GetAllStudents(ctx *gin.Context) {
	students, err := c.studentService.GetAllStudents(ctx.Request.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to list students")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewStudentListResponse(students), "Students retrieved"))
}

// CountStudents returns the number of students
// @Summary Count students
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.CountData} "Student count"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/count [get]
func (c *StudentController) CountStudents(ctx *gin.Context) {
	count, err := c.studentService.CountStudents(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.CountData{Count: count}, "Student count"))
}

// UpdateStudent applies a partial update to a student
// @Summary Update student
// @Description Updates the provided fields of a student. The generated identifier is immutable.
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param student_id path string true "Student identifier"
// @Param request body dto.UpdateStudentRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse} "Student updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or validation error"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Administrator role required"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{student_id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	studentID := ctx.Param("student_id")

	var req dto.UpdateStudentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	student, err := c.studentService.UpdateStudent(ctx.Request.Context(), studentID, &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("studentId", studentID).Msg("Failed to update student")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("studentId", studentID).Msg("Student updated")
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewStudentResponse(student), "Student updated"))
}

// RemoveStudent deletes a single student
// @Summary Remove student
// @Description Deletes a student together with their care records
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param student_id path string true "Student identifier"
// @Success 200 {object} dto.APIResponse "Student removed"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Administrator role required"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{student_id} [delete]
func (c *StudentController) RemoveStudent(ctx *gin.Context) {
	studentID := ctx.Param("student_id")

	if err := c.studentService.RemoveStudent(ctx.Request.Context(), studentID); err != nil {
		c.logger.Warn().Err(err).Str("studentId", studentID).Msg("Failed to remove student")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("studentId", studentID).Msg("Student removed")
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Student removed"))
}

// RemoveStudents deletes several students in one call
// @Summary Remove students
// @Description Deletes every listed student together with their care records
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RemoveStudentsRequest true "Student identifiers to remove"
// @Success 200 {object} dto.APIResponse{data=dto.CountData} "Students removed"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Administrator role required"
// @Failure 404 {object} dto.ErrorResponse "No listed student exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [delete]
func (c *StudentController) RemoveStudents(ctx *gin.Context) {
	var req dto.RemoveStudentsRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	removed, err := c.studentService.RemoveStudents(ctx.Request.Context(), req.StudentIDs)
	if err != nil {
		c.logger.Warn().Err(err).Int("requested", len(req.StudentIDs)).Msg("Failed to remove students")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("removed", removed).Msg("Students removed")
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.CountData{Count: removed}, "Students removed"))
}
