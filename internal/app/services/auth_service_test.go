package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/pcaproject/timesheet-server/internal/app/models"
	"github.com/pcaproject/timesheet-server/internal/app/models/dto"
	"github.com/pcaproject/timesheet-server/internal/pkg/apperrors"
	"github.com/pcaproject/timesheet-server/internal/pkg/auth"
)

func testAuthEmployee(t *testing.T, password string) *models.Employee {
	t.Helper()
	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	return &models.Employee{
		ID:           1,
		EmployeeID:   "jsmith300",
		FirstName:    "John",
		LastName:     "Smith",
		PrimaryEmail: "jsmith@pca.edu",
		Password:     hash,
		Role:         models.RoleEmployee,
		IsEnabled:    true,
	}
}

func newTestAuthService(employees *fakeEmployeeStore, tokens *fakeTokenStore) AuthService {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "timesheet-server",
	})
	return NewAuthService(employees, tokens, jwtService, zerolog.Nop())
}

func TestLoginIssuesTokenPair(t *testing.T) {
	employees := newFakeEmployeeStore(testAuthEmployee(t, "Secret123!"))
	tokens := newFakeTokenStore()
	svc := newTestAuthService(employees, tokens)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		EmployeeID: "jsmith300",
		Password:   "Secret123!",
	})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	if resp.Token.AccessToken == "" || resp.Token.RefreshToken == "" {
		t.Error("token pair has empty tokens")
	}
	if resp.Token.TokenType != "Bearer" {
		t.Errorf("TokenType = %q", resp.Token.TokenType)
	}
	if resp.Employee.EmployeeID != "jsmith300" {
		t.Errorf("Employee.EmployeeID = %q", resp.Employee.EmployeeID)
	}
	if _, ok := tokens.tokens[resp.Token.RefreshToken]; !ok {
		t.Error("refresh token was not persisted")
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	employees := newFakeEmployeeStore(testAuthEmployee(t, "Secret123!"))
	svc := newTestAuthService(employees, newFakeTokenStore())
	ctx := context.Background()

	_, err := svc.Login(ctx, &dto.LoginRequest{EmployeeID: "jsmith300", Password: "wrong"})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("wrong password error = %v, want ErrInvalidCredentials", err)
	}

	// An unknown account is indistinguishable from a wrong password.
	_, err = svc.Login(ctx, &dto.LoginRequest{EmployeeID: "nobody1", Password: "Secret123!"})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("unknown account error = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginRejectsDisabledAccount(t *testing.T) {
	employee := testAuthEmployee(t, "Secret123!")
	employee.IsEnabled = false
	svc := newTestAuthService(newFakeEmployeeStore(employee), newFakeTokenStore())

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		EmployeeID: "jsmith300",
		Password:   "Secret123!",
	})
	if !errors.Is(err, apperrors.ErrAccountDisabled) {
		t.Errorf("disabled account error = %v, want ErrAccountDisabled", err)
	}
}

func TestRefreshTokenRotates(t *testing.T) {
	employees := newFakeEmployeeStore(testAuthEmployee(t, "Secret123!"))
	tokens := newFakeTokenStore()
	svc := newTestAuthService(employees, tokens)
	ctx := context.Background()

	login, err := svc.Login(ctx, &dto.LoginRequest{EmployeeID: "jsmith300", Password: "Secret123!"})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	old := login.Token.RefreshToken

	refreshed, err := svc.RefreshToken(ctx, old)
	if err != nil {
		t.Fatalf("RefreshToken returned error: %v", err)
	}
	if refreshed.Token.RefreshToken == old {
		t.Error("refresh did not rotate the refresh token")
	}

	// The spent token cannot be replayed.
	if _, err := svc.RefreshToken(ctx, old); !errors.Is(err, apperrors.ErrTokenRevoked) {
		t.Errorf("replayed token error = %v, want ErrTokenRevoked", err)
	}
}

func TestRefreshTokenRejectsUnknownToken(t *testing.T) {
	svc := newTestAuthService(newFakeEmployeeStore(testAuthEmployee(t, "Secret123!")), newFakeTokenStore())

	_, err := svc.RefreshToken(context.Background(), "not-a-token")
	if !errors.Is(err, apperrors.ErrTokenNotFound) {
		t.Errorf("unknown token error = %v, want ErrTokenNotFound", err)
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	employees := newFakeEmployeeStore(testAuthEmployee(t, "Secret123!"))
	tokens := newFakeTokenStore()
	svc := newTestAuthService(employees, tokens)
	ctx := context.Background()

	login, err := svc.Login(ctx, &dto.LoginRequest{EmployeeID: "jsmith300", Password: "Secret123!"})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	if err := svc.Logout(ctx, login.Token.RefreshToken); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if _, err := svc.RefreshToken(ctx, login.Token.RefreshToken); !errors.Is(err, apperrors.ErrTokenRevoked) {
		t.Errorf("post-logout refresh error = %v, want ErrTokenRevoked", err)
	}
}

func TestChangePasswordRequiresCurrent(t *testing.T) {
	employees := newFakeEmployeeStore(testAuthEmployee(t, "Secret123!"))
	svc := newTestAuthService(employees, newFakeTokenStore())
	ctx := context.Background()

	err := svc.ChangePassword(ctx, "jsmith300", &dto.ChangePasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "NewSecret456!",
	}, true)
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("wrong current password error = %v, want ErrInvalidCredentials", err)
	}

	err = svc.ChangePassword(ctx, "jsmith300", &dto.ChangePasswordRequest{
		CurrentPassword: "Secret123!",
		NewPassword:     "NewSecret456!",
	}, true)
	if err != nil {
		t.Fatalf("ChangePassword returned error: %v", err)
	}

	if _, err := svc.Login(ctx, &dto.LoginRequest{EmployeeID: "jsmith300", Password: "NewSecret456!"}); err != nil {
		t.Errorf("login with new password returned error: %v", err)
	}
}

func TestChangePasswordAdminResetSkipsCurrent(t *testing.T) {
	employees := newFakeEmployeeStore(testAuthEmployee(t, "Secret123!"))
	svc := newTestAuthService(employees, newFakeTokenStore())

	err := svc.ChangePassword(context.Background(), "jsmith300", &dto.ChangePasswordRequest{
		NewPassword: "ResetByAdmin7!",
	}, false)
	if err != nil {
		t.Fatalf("admin reset returned error: %v", err)
	}
}

func TestChangePasswordRejectsShortPassword(t *testing.T) {
	employees := newFakeEmployeeStore(testAuthEmployee(t, "Secret123!"))
	svc := newTestAuthService(employees, newFakeTokenStore())

	err := svc.ChangePassword(context.Background(), "jsmith300", &dto.ChangePasswordRequest{
		CurrentPassword: "Secret123!",
		NewPassword:     "short",
	}, true)
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("short password error = %v, want ErrValidationFailed", err)
	}
}

func TestChangePasswordRevokesSessions(t *testing.T) {
	employees := newFakeEmployeeStore(testAuthEmployee(t, "Secret123!"))
	tokens := newFakeTokenStore()
	svc := newTestAuthService(employees, tokens)
	ctx := context.Background()

	login, err := svc.Login(ctx, &dto.LoginRequest{EmployeeID: "jsmith300", Password: "Secret123!"})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	err = svc.ChangePassword(ctx, "jsmith300", &dto.ChangePasswordRequest{
		CurrentPassword: "Secret123!",
		NewPassword:     "NewSecret456!",
	}, true)
	if err != nil {
		t.Fatalf("ChangePassword returned error: %v", err)
	}

	if _, err := svc.RefreshToken(ctx, login.Token.RefreshToken); !errors.Is(err, apperrors.ErrTokenRevoked) {
		t.Errorf("post-change refresh error = %v, want ErrTokenRevoked", err)
	}
}

func TestGetProfile(t *testing.T) {
	employees := newFakeEmployeeStore(testAuthEmployee(t, "Secret123!"))
	svc := newTestAuthService(employees, newFakeTokenStore())

	employee, err := svc.GetProfile(context.Background(), "jsmith300")
	if err != nil {
		t.Fatalf("GetProfile returned error: %v", err)
	}
	if employee.PrimaryEmail != "jsmith@pca.edu" {
		t.Errorf("PrimaryEmail = %q", employee.PrimaryEmail)
	}

	if _, err := svc.GetProfile(context.Background(), "nobody1"); !errors.Is(err, apperrors.ErrEmployeeNotFound) {
		t.Errorf("unknown profile error = %v, want ErrEmployeeNotFound", err)
	}
}
