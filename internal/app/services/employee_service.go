package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pcaproject/timesheet-server/internal/app/models"
	"github.com/pcaproject/timesheet-server/internal/app/models/dto"
	"github.com/pcaproject/timesheet-server/internal/pkg/apperrors"
	"github.com/pcaproject/timesheet-server/internal/pkg/auth"
	"github.com/pcaproject/timesheet-server/internal/pkg/helpers"
	"github.com/pcaproject/timesheet-server/internal/pkg/validation"
)

// EmployeeService defines the interface for employee-related operations
type EmployeeService interface {
	CreateEmployee(ctx context.Context, req *dto.CreateEmployeeRequest) (*models.Employee, error)
	GetEmployee(ctx context.Context, employeeID string) (*models.Employee, error)
	GetAllEmployees(ctx context.Context) ([]*models.Employee, error)
	CountEmployees(ctx context.Context) (int64, error)
	UpdateEmployee(ctx context.Context, employeeID string, req *dto.UpdateEmployeeRequest) (*models.Employee, error)
	RemoveEmployee(ctx context.Context, employeeID string) error
	RemoveEmployees(ctx context.Context, employeeIDs []string) (int64, error)
}

// employeeStore is the persistence surface the service needs.
type employeeStore interface {
	NextSequence(ctx context.Context) (int64, error)
	Create(ctx context.Context, employee *models.Employee) error
	GetByEmployeeID(ctx context.Context, employeeID string) (*models.Employee, error)
	GetAll(ctx context.Context) ([]*models.Employee, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, employee *models.Employee) error
	Delete(ctx context.Context, employeeID string) error
	DeleteMany(ctx context.Context, employeeIDs []string) (int64, error)
}

// employeeServiceImpl implements the EmployeeService interface
type employeeServiceImpl struct {
	employeeRepo employeeStore
	logger       zerolog.Logger
}

// NewEmployeeService creates a new employee service instance
func NewEmployeeService(employeeRepo employeeStore, logger zerolog.Logger) EmployeeService {
	return &employeeServiceImpl{
		employeeRepo: employeeRepo,
		logger:       logger,
	}
}

// validateName checks a first or last name field.
func validateName(field, value string) error {
	ok := validation.NewStringValidation(strings.TrimSpace(value)).
		WithMinLength(validation.NameMinLength).
		WithMaxLength(validation.NameMaxLength).
		Validate()
	if !ok {
		return fmt.Errorf("%w: %s cannot be empty", apperrors.ErrValidationFailed, field)
	}
	return nil
}

// validateEmail checks an email address against the shared pattern.
func validateEmail(email string) error {
	if !validation.CompiledPatterns.Email.MatchString(strings.ToLower(strings.TrimSpace(email))) {
		return fmt.Errorf("%w: invalid email format", apperrors.ErrValidationFailed)
	}
	return nil
}

// CreateEmployee registers a new employee with a generated identifier.
func (s *employeeServiceImpl) CreateEmployee(ctx context.Context, req *dto.CreateEmployeeRequest) (*models.Employee, error) {
	if err := validateName("first name", req.FirstName); err != nil {
		return nil, err
	}
	if err := validateName("last name", req.LastName); err != nil {
		return nil, err
	}
	if err := validateEmail(req.PrimaryEmail); err != nil {
		return nil, err
	}
	if !models.ValidRole(req.Role) {
		return nil, fmt.Errorf("%w: role must be administrator or employee", apperrors.ErrValidationFailed)
	}
	if len(req.Password) < validation.PasswordMinLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters",
			apperrors.ErrValidationFailed, validation.PasswordMinLength)
	}

	sequence, err := s.employeeRepo.NextSequence(ctx)
	if err != nil {
		return nil, err
	}

	employeeID := helpers.FormatEmployeeID(req.FirstName, req.LastName, sequence)
	if employeeID == "" {
		return nil, fmt.Errorf("%w: name must contain letters", apperrors.ErrValidationFailed)
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	employee := &models.Employee{
		EmployeeID:        employeeID,
		FirstName:         strings.TrimSpace(req.FirstName),
		LastName:          strings.TrimSpace(req.LastName),
		Password:          passwordHash,
		Role:              req.Role,
		PrimaryEmail:      strings.ToLower(strings.TrimSpace(req.PrimaryEmail)),
		PTOHoursEnabled:   true,
		ExtraHoursEnabled: true,
		IsEnabled:         true,
	}
	if req.PTOHoursEnabled != nil {
		employee.PTOHoursEnabled = *req.PTOHoursEnabled
	}
	if req.ExtraHoursEnabled != nil {
		employee.ExtraHoursEnabled = *req.ExtraHoursEnabled
	}

	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		return nil, err
	}

	s.logger.Info().Str("employeeID", employee.EmployeeID).Msg("Employee created")
	return employee, nil
}

// GetEmployee retrieves one employee by identifier
func (s *employeeServiceImpl) GetEmployee(ctx context.Context, employeeID string) (*models.Employee, error) {
	return s.employeeRepo.GetByEmployeeID(ctx, employeeID)
}

// GetAllEmployees lists every employee
func (s *employeeServiceImpl) GetAllEmployees(ctx context.Context) ([]*models.Employee, error) {
	return s.employeeRepo.GetAll(ctx)
}

// CountEmployees returns the employee count
func (s *employeeServiceImpl) CountEmployees(ctx context.Context) (int64, error) {
	return s.employeeRepo.Count(ctx)
}

// UpdateEmployee applies a partial update; absent fields keep their
// current values and the identifier never changes.
func (s *employeeServiceImpl) UpdateEmployee(ctx context.Context, employeeID string, req *dto.UpdateEmployeeRequest) (*models.Employee, error) {
	employee, err := s.employeeRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		if err := validateName("first name", *req.FirstName); err != nil {
			return nil, err
		}
		employee.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		if err := validateName("last name", *req.LastName); err != nil {
			return nil, err
		}
		employee.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.PrimaryEmail != nil {
		if err := validateEmail(*req.PrimaryEmail); err != nil {
			return nil, err
		}
		employee.PrimaryEmail = strings.ToLower(strings.TrimSpace(*req.PrimaryEmail))
	}
	if req.Role != nil {
		if !models.ValidRole(*req.Role) {
			return nil, fmt.Errorf("%w: role must be administrator or employee", apperrors.ErrValidationFailed)
		}
		employee.Role = *req.Role
	}
	if req.PTOHoursEnabled != nil {
		employee.PTOHoursEnabled = *req.PTOHoursEnabled
	}
	if req.ExtraHoursEnabled != nil {
		employee.ExtraHoursEnabled = *req.ExtraHoursEnabled
	}
	if req.IsEnabled != nil {
		employee.IsEnabled = *req.IsEnabled
	}

	if err := s.employeeRepo.Update(ctx, employee); err != nil {
		return nil, err
	}

	return employee, nil
}

// RemoveEmployee deletes one employee; their timesheet rows go with them.
func (s *employeeServiceImpl) RemoveEmployee(ctx context.Context, employeeID string) error {
	if err := s.employeeRepo.Delete(ctx, employeeID); err != nil {
		return err
	}
	s.logger.Info().Str("employeeID", employeeID).Msg("Employee removed")
	return nil
}

// RemoveEmployees deletes every listed employee and returns how many
// were found and removed.
func (s *employeeServiceImpl) RemoveEmployees(ctx context.Context, employeeIDs []string) (int64, error) {
	if len(employeeIDs) == 0 {
		return 0, fmt.Errorf("%w: employee ID list cannot be empty", apperrors.ErrValidationFailed)
	}

	removed, err := s.employeeRepo.DeleteMany(ctx, employeeIDs)
	if err != nil {
		return 0, err
	}
	if removed == 0 {
		return 0, apperrors.ErrEmployeeNotFound
	}

	s.logger.Info().Int64("removed", removed).Msg("Employees removed")
	return removed, nil
}
