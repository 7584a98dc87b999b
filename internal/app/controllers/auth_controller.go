// Package controllers handles HTTP request handling
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

// AuthController handles authentication related operations
type AuthController struct {
	authService services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// Login handles employee login
// @Summary Employee login
// @Description Authenticates an employee by identifier and password and returns a token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.AuthResponse} "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials or account disabled"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	authResponse, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("employeeId", req.EmployeeID).Msg("Login failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("employeeId", req.EmployeeID).Msg("Employee logged in successfully")
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(authResponse, "Login successful"))
}

// RefreshToken handles refresh token request
// @Summary Refresh access token
// @Description Exchanges a valid refresh token for a new token pair; the old refresh token is revoked
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} dto.APIResponse{data=dto.AuthResponse} "Token refreshed successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Invalid, expired or revoked refresh token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/refresh [post]
func (c *AuthController) RefreshToken(ctx *gin.Context) {
	var req dto.RefreshTokenRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	authResponse, err := c.authService.RefreshToken(ctx.Request.Context(), req.RefreshToken)
	if err != nil {
		c.logger.Warn().Err(err).Msg("Refresh token failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Msg("Token refreshed successfully")
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(authResponse, "Token refreshed"))
}

// Logout revokes the presented refresh token
// @Summary Employee logout
// @Description Revokes the presented refresh token so it can no longer be exchanged
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.LogoutRequest true "Refresh token to revoke"
// @Success 200 {object} dto.APIResponse "Logged out successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 404 {object} dto.ErrorResponse "Token not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	var req dto.LogoutRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	if err := c.authService.Logout(ctx.Request.Context(), req.RefreshToken); err != nil {
		c.logger.Warn().Err(err).Msg("Logout failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Logged out"))
}

// GetProfile returns the authenticated employee's own record
// @Summary Get own profile
// @Description Returns the employee record belonging to the presented access token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.EmployeeResponse} "Profile retrieved"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 404 {object} dto.ErrorResponse "Employee not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /me [get]
func (c *AuthController) GetProfile(ctx *gin.Context) {
	employeeID := middleware.CurrentEmployeeID(ctx)

	employee, err := c.authService.GetProfile(ctx.Request.Context(), employeeID)
	if err != nil {
		c.logger.Warn().Err(err).Str("employeeId", employeeID).Msg("Failed to load profile")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewEmployeeResponse(employee), "Profile retrieved"))
}

// ChangePassword updates an employee's password
// @Summary Change employee password
// @Description Changes the password for the addressed employee. Employees change their own password by supplying the current one; administrators may reset any employee's password without it. All refresh tokens of the employee are revoked.
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param employee_id path string true "Employee identifier"
// @Param request body dto.ChangePasswordRequest true "Password change payload"
// @Success 200 {object} dto.APIResponse "Password changed"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or weak password"
// @Failure 401 {object} dto.ErrorResponse "Authentication required or wrong current password"
// @Failure 403 {object} dto.ErrorResponse "Not allowed to change another employee's password"
// @Failure 404 {object} dto.ErrorResponse "Employee not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /employees/{employee_id}/password [put]
func (c *AuthController) ChangePassword(ctx *gin.Context) {
	targetID := ctx.Param("employee_id")
	currentID := middleware.CurrentEmployeeID(ctx)

	// Only administrators may touch someone else's password, and
	// self-changes always require the current password.
	requireCurrent := targetID == currentID
	if !requireCurrent && !middleware.IsAdministrator(ctx) {
		c.logger.Warn().
			Str("employeeId", currentID).
			Str("targetId", targetID).
			Msg("Password change denied")
		middleware.HandleAPIError(ctx, apperrors.ErrPermissionDenied)
		return
	}

	var req dto.ChangePasswordRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	if err := c.authService.ChangePassword(ctx.Request.Context(), targetID, &req, requireCurrent); err != nil {
		c.logger.Warn().Err(err).Str("targetId", targetID).Msg("Password change failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("targetId", targetID).Msg("Password changed")
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Password changed"))
}
