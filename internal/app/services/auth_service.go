package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/pcaproject/timesheet-server/internal/app/models"
	"github.com/pcaproject/timesheet-server/internal/app/models/dto"
	"github.com/pcaproject/timesheet-server/internal/pkg/apperrors"
	"github.com/pcaproject/timesheet-server/internal/pkg/auth"
	"github.com/pcaproject/timesheet-server/internal/pkg/validation"
)

// AuthService defines the interface for authentication operations
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*dto.AuthResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	GetProfile(ctx context.Context, employeeID string) (*models.Employee, error)
	ChangePassword(ctx context.Context, employeeID string, req *dto.ChangePasswordRequest, requireCurrent bool) error
}

// authEmployeeStore is the employee surface the auth service needs.
type authEmployeeStore interface {
	GetByEmployeeID(ctx context.Context, employeeID string) (*models.Employee, error)
	GetByID(ctx context.Context, id int64) (*models.Employee, error)
	UpdatePassword(ctx context.Context, employeeID, passwordHash string) error
}

// refreshTokenStore is the token surface the auth service needs.
type refreshTokenStore interface {
	CreateToken(ctx context.Context, token string, employeeID int64, expiryDate time.Time) error
	GetTokenByValue(ctx context.Context, token string) (int64, time.Time, error)
	RevokeToken(ctx context.Context, token string) error
	RevokeAllEmployeeTokens(ctx context.Context, employeeID int64) error
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	employeeRepo authEmployeeStore
	tokenRepo    refreshTokenStore
	jwtService   *auth.JWTService
	logger       zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	employeeRepo authEmployeeStore,
	tokenRepo refreshTokenStore,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) AuthService {
	return &authServiceImpl{
		employeeRepo: employeeRepo,
		tokenRepo:    tokenRepo,
		jwtService:   jwtService,
		logger:       logger,
	}
}

// issueTokens builds the token pair response and persists the refresh
// token.
func (s *authServiceImpl) issueTokens(ctx context.Context, employee *models.Employee) (*dto.AuthResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(employee)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token pair: %w", err)
	}

	expiry := s.jwtService.GetRefreshTokenExpiry()
	if err := s.tokenRepo.CreateToken(ctx, refreshToken, employee.ID, expiry); err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken:           accessToken,
			TokenType:             "Bearer",
			ExpiresIn:             int64(expiresIn),
			RefreshToken:          refreshToken,
			RefreshTokenExpiresIn: int64(refreshExpiresIn),
		},
		Employee: dto.NewEmployeeResponse(employee),
	}, nil
}

// Login authenticates an employee by identifier and password. A missing
// employee and a wrong password look identical to the caller.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	employee, err := s.employeeRepo.GetByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmployeeNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(employee.Password, req.Password) {
		s.logger.Warn().Str("employeeID", req.EmployeeID).Msg("Failed login attempt")
		return nil, apperrors.ErrInvalidCredentials
	}

	if !employee.IsEnabled {
		return nil, apperrors.ErrAccountDisabled
	}

	resp, err := s.issueTokens(ctx, employee)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("employeeID", employee.EmployeeID).Msg("Employee logged in")
	return resp, nil
}

// RefreshToken exchanges a live refresh token for a new pair; the old
// token is revoked so it cannot be replayed.
func (s *authServiceImpl) RefreshToken(ctx context.Context, refreshToken string) (*dto.AuthResponse, error) {
	employeeDBID, _, err := s.tokenRepo.GetTokenByValue(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	employee, err := s.employeeRepo.GetByID(ctx, employeeDBID)
	if err != nil {
		return nil, err
	}
	if !employee.IsEnabled {
		return nil, apperrors.ErrAccountDisabled
	}

	if err := s.tokenRepo.RevokeToken(ctx, refreshToken); err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, employee)
}

// Logout revokes the presented refresh token.
func (s *authServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	return s.tokenRepo.RevokeToken(ctx, refreshToken)
}

// GetProfile returns the employee behind an identifier.
func (s *authServiceImpl) GetProfile(ctx context.Context, employeeID string) (*models.Employee, error) {
	return s.employeeRepo.GetByEmployeeID(ctx, employeeID)
}

// ChangePassword replaces an employee's password. Self-service changes
// must present the current password; administrators resetting another
// account skip that check. Every refresh token the account holds is
// revoked afterwards.
func (s *authServiceImpl) ChangePassword(ctx context.Context, employeeID string, req *dto.ChangePasswordRequest, requireCurrent bool) error {
	employee, err := s.employeeRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return err
	}

	if requireCurrent && !auth.CheckPassword(employee.Password, req.CurrentPassword) {
		return apperrors.ErrInvalidCredentials
	}

	if len(req.NewPassword) < validation.PasswordMinLength {
		return fmt.Errorf("%w: password must be at least %d characters",
			apperrors.ErrValidationFailed, validation.PasswordMinLength)
	}

	passwordHash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.employeeRepo.UpdatePassword(ctx, employeeID, passwordHash); err != nil {
		return err
	}

	if err := s.tokenRepo.RevokeAllEmployeeTokens(ctx, employee.ID); err != nil {
		s.logger.Error().Err(err).Str("employeeID", employeeID).Msg("Failed to revoke tokens after password change")
	}

	s.logger.Info().Str("employeeID", employeeID).Msg("Password changed")
	return nil
}
