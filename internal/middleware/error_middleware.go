package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pcaproject/timesheet-server/internal/app/models/dto"
	"github.com/pcaproject/timesheet-server/internal/pkg/apperrors"
	"github.com/pcaproject/timesheet-server/internal/pkg/logger"
)

// HandleAPIError maps domain errors onto HTTP statuses and renders the
// standard error envelope. Unrecognized errors become an opaque 500;
// their detail only reaches the log.
func HandleAPIError(c *gin.Context, err error) {
	status, detail := classifyError(err)

	// Surface the specific message when the service wrapped the sentinel
	// with context.
	var custom *apperrors.CustomError
	if errors.As(err, &custom) && custom.Message != "" && status != http.StatusInternalServerError {
		detail.Message = custom.Message
	} else if status != http.StatusInternalServerError && err.Error() != "" {
		detail.Message = err.Error()
	}

	if status == http.StatusInternalServerError {
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
	}

	c.JSON(status, dto.NewErrorResponse(detail))
}

// classifyError picks the status and base error detail for a domain
// error.
func classifyError(err error) (int, *dto.ErrorDetail) {
	switch {
	// 401: authentication failures
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials")
	case errors.Is(err, apperrors.ErrTokenExpired):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired")
	case errors.Is(err, apperrors.ErrTokenInvalid):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token")
	case errors.Is(err, apperrors.ErrTokenNotFound):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeTokenNotFound, "Token not found")
	case errors.Is(err, apperrors.ErrTokenRevoked):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Token revoked")
	case errors.Is(err, apperrors.ErrAccountDisabled):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeAccountDisabled, "Account is disabled")

	// 403: authorization failures
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return http.StatusForbidden, dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied")

	// 404: missing resources
	case apperrors.Is(err, apperrors.ErrEmployeeNotFound,
		apperrors.ErrStudentNotFound,
		apperrors.ErrTimeSheetNotFound,
		apperrors.ErrCareRecordNotFound,
		apperrors.ErrResourceNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Resource not found")

	// 409: state conflicts
	case errors.Is(err, apperrors.ErrAlreadyCheckedIn):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeConflict, "Student is already checked in")
	case errors.Is(err, apperrors.ErrAlreadyCheckedOut):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeConflict, "Student is already checked out")
	case errors.Is(err, apperrors.ErrNotCheckedIn):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeConflict, "Student is not checked in")
	case apperrors.Is(err, apperrors.ErrTimeSheetAlreadyExists,
		apperrors.ErrEmployeeAlreadyExists,
		apperrors.ErrStudentIDAlreadyExists,
		apperrors.ErrEmailAlreadyExists,
		apperrors.ErrResourceAlreadyExists,
		apperrors.ErrConflict):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Resource already exists")

	// 400: validation failures
	case errors.Is(err, apperrors.ErrInvalidDateRange):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeInvalidDateRange, "Invalid date range")
	case errors.Is(err, apperrors.ErrInvalidDate):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeInvalidDate, "Invalid date format")
	case apperrors.Is(err, apperrors.ErrValidationFailed,
		apperrors.ErrOutsideCareWindow,
		apperrors.ErrInvalidCareType,
		apperrors.ErrNegativeHours,
		apperrors.ErrInvalidPassword,
		apperrors.ErrBadRequest):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed")

	default:
		return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
	}
}
