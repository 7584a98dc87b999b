package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/pcaproject/timesheet-server/internal/app/models/dto"
	"github.com/pcaproject/timesheet-server/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decodeErrorResponse(t *testing.T, recorder *httptest.ResponseRecorder) *dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response body did not parse: %v", err)
	}
	if resp.Error == nil {
		t.Fatal("error envelope missing the error detail")
	}
	return &resp
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials},
		{"expired token", apperrors.ErrTokenExpired, http.StatusUnauthorized, dto.ErrorCodeExpiredToken},
		{"revoked token", apperrors.ErrTokenRevoked, http.StatusUnauthorized, dto.ErrorCodeInvalidToken},
		{"disabled account", apperrors.ErrAccountDisabled, http.StatusUnauthorized, dto.ErrorCodeAccountDisabled},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden, dto.ErrorCodeForbidden},
		{"employee not found", apperrors.ErrEmployeeNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"student not found", apperrors.ErrStudentNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"care record not found", apperrors.ErrCareRecordNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"already checked in", apperrors.ErrAlreadyCheckedIn, http.StatusConflict, dto.ErrorCodeConflict},
		{"already checked out", apperrors.ErrAlreadyCheckedOut, http.StatusConflict, dto.ErrorCodeConflict},
		{"not checked in", apperrors.ErrNotCheckedIn, http.StatusConflict, dto.ErrorCodeConflict},
		{"timesheet exists", apperrors.ErrTimeSheetAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"email exists", apperrors.ErrEmailAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"invalid date range", apperrors.ErrInvalidDateRange, http.StatusBadRequest, dto.ErrorCodeInvalidDateRange},
		{"invalid date", apperrors.ErrInvalidDate, http.StatusBadRequest, dto.ErrorCodeInvalidDate},
		{"validation failed", apperrors.ErrValidationFailed, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"outside care window", apperrors.ErrOutsideCareWindow, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"invalid care type", apperrors.ErrInvalidCareType, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"unrecognized error", errors.New("pool exhausted"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(recorder)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			HandleAPIError(c, tt.err)

			if recorder.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", recorder.Code, tt.wantStatus)
			}

			resp := decodeErrorResponse(t, recorder)
			if resp.Status != "error" {
				t.Errorf("envelope status = %q, want error", resp.Status)
			}
			if resp.Error.Code != tt.wantCode {
				t.Errorf("error code = %q, want %q", resp.Error.Code, tt.wantCode)
			}
		})
	}
}

func TestHandleAPIErrorSurfacesWrappedDetail(t *testing.T) {
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)

	HandleAPIError(c, fmt.Errorf("%w: after care runs 15:30 to 18:00", apperrors.ErrOutsideCareWindow))

	resp := decodeErrorResponse(t, recorder)
	if resp.Error.Message == "Validation failed" {
		t.Error("wrapped context was dropped from the error message")
	}
}

func TestHandleAPIErrorHidesInternalDetail(t *testing.T) {
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleAPIError(c, errors.New("dial tcp 127.0.0.1:5432: connection refused"))

	resp := decodeErrorResponse(t, recorder)
	if resp.Error.Message != "Internal server error" {
		t.Errorf("internal detail leaked: %q", resp.Error.Message)
	}
}
