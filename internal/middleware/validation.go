package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/pcaproject/timesheet-server/internal/app/models/dto"
)

// BindJSON binds and validates the JSON body into obj, writing a 400
// response and aborting the request on failure. Returns true when the
// body is valid.
func BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
		if fieldErrors, ok := err.(validator.ValidationErrors); ok {
			errorDetail = errorDetail.WithDetails(formatValidationErrors(fieldErrors))
		} else {
			errorDetail = errorDetail.WithDetails(err.Error())
		}
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return false
	}
	return true
}

func formatValidationErrors(errs validator.ValidationErrors) []string {
	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		messages = append(messages, formatValidationError(e))
	}
	return messages
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "email":
		return e.Field() + " must be a valid email address"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	case "dive":
		return e.Field() + " contains invalid entries"
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
