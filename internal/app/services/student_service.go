package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pcaproject/timesheet-server/internal/app/models"
	"github.com/pcaproject/timesheet-server/internal/app/models/dto"
	"github.com/pcaproject/timesheet-server/internal/pkg/apperrors"
	"github.com/pcaproject/timesheet-server/internal/pkg/helpers"
)

// StudentService defines the interface for student roster operations
type StudentService interface {
	CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error)
	GetStudent(ctx context.Context, studentID string) (*models.Student, error)
	GetAllStudents(ctx context.Context) ([]*models.Student, error)
	CountStudents(ctx context.Context) (int64, error)
	UpdateStudent(ctx context.Context, studentID string, req *dto.UpdateStudentRequest) (*models.Student, error)
	RemoveStudent(ctx context.Context, studentID string) error
	RemoveStudents(ctx context.Context, studentIDs []string) (int64, error)
}

// studentStore is the persistence surface the service needs.
type studentStore interface {
	Create(ctx context.Context, student *models.Student) error
	GetByStudentID(ctx context.Context, studentID string) (*models.Student, error)
	GetAll(ctx context.Context) ([]*models.Student, error)
	Count(ctx context.Context) (int64, error)
	Exists(ctx context.Context, studentID string) (bool, error)
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, studentID string) error
	DeleteMany(ctx context.Context, studentIDs []string) (int64, error)
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	studentRepo studentStore
	logger      zerolog.Logger
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo studentStore, logger zerolog.Logger) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
		logger:      logger,
	}
}

// generateStudentID builds the identifier from name and carpool number,
// appending a counter while the candidate is taken: jjerome3, jjerome31,
// jjerome32, ...
func (s *studentServiceImpl) generateStudentID(ctx context.Context, firstName, lastName string, carpoolNumber int) (string, error) {
	base := helpers.FormatStudentID(firstName, lastName, carpoolNumber)
	if base == "" {
		return "", fmt.Errorf("%w: name must contain letters", apperrors.ErrValidationFailed)
	}

	candidate := base
	for counter := 1; ; counter++ {
		taken, err := s.studentRepo.Exists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = base + strconv.Itoa(counter)
	}
}

// CreateStudent registers a new student with a generated identifier.
func (s *studentServiceImpl) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	if err := validateName("first name", req.FirstName); err != nil {
		return nil, err
	}
	if err := validateName("last name", req.LastName); err != nil {
		return nil, err
	}
	if req.CarpoolNumber <= 0 {
		return nil, fmt.Errorf("%w: carpool number must be positive", apperrors.ErrValidationFailed)
	}
	if req.PrimaryEmail != "" {
		if err := validateEmail(req.PrimaryEmail); err != nil {
			return nil, err
		}
	}

	studentID, err := s.generateStudentID(ctx, req.FirstName, req.LastName, req.CarpoolNumber)
	if err != nil {
		return nil, err
	}

	student := &models.Student{
		StudentID:     studentID,
		FirstName:     strings.TrimSpace(req.FirstName),
		LastName:      strings.TrimSpace(req.LastName),
		CarpoolNumber: req.CarpoolNumber,
		PrimaryEmail:  strings.ToLower(strings.TrimSpace(req.PrimaryEmail)),
		IsEnabled:     true,
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	s.logger.Info().Str("studentID", student.StudentID).Msg("Student created")
	return student, nil
}

// GetStudent retrieves one student by identifier
func (s *studentServiceImpl) GetStudent(ctx context.Context, studentID string) (*models.Student, error) {
	return s.studentRepo.GetByStudentID(ctx, studentID)
}

// GetAllStudents lists every student
func (s *studentServiceImpl) GetAllStudents(ctx context.Context) ([]*models.Student, error) {
	return s.studentRepo.GetAll(ctx)
}

// CountStudents returns the student count
func (s *studentServiceImpl) CountStudents(ctx context.Context) (int64, error) {
	return s.studentRepo.Count(ctx)
}

// UpdateStudent applies a partial update; absent fields keep their
// current values and the identifier never changes.
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, studentID string, req *dto.UpdateStudentRequest) (*models.Student, error) {
	student, err := s.studentRepo.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		if err := validateName("first name", *req.FirstName); err != nil {
			return nil, err
		}
		student.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		if err := validateName("last name", *req.LastName); err != nil {
			return nil, err
		}
		student.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.CarpoolNumber != nil {
		if *req.CarpoolNumber <= 0 {
			return nil, fmt.Errorf("%w: carpool number must be positive", apperrors.ErrValidationFailed)
		}
		student.CarpoolNumber = *req.CarpoolNumber
	}
	if req.PrimaryEmail != nil {
		if *req.PrimaryEmail != "" {
			if err := validateEmail(*req.PrimaryEmail); err != nil {
				return nil, err
			}
		}
		student.PrimaryEmail = strings.ToLower(strings.TrimSpace(*req.PrimaryEmail))
	}
	if req.IsEnabled != nil {
		student.IsEnabled = *req.IsEnabled
	}

	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// RemoveStudent deletes one student; their care records go with them.
func (s *studentServiceImpl) RemoveStudent(ctx context.Context, studentID string) error {
	if err := s.studentRepo.Delete(ctx, studentID); err != nil {
		return err
	}
	s.logger.Info().Str("studentID", studentID).Msg("Student removed")
	return nil
}

// RemoveStudents deletes every listed student and returns how many were
// found and removed.
func (s *studentServiceImpl) RemoveStudents(ctx context.Context, studentIDs []string) (int64, error) {
	if len(studentIDs) == 0 {
		return 0, fmt.Errorf("%w: student ID list cannot be empty", apperrors.ErrValidationFailed)
	}

	removed, err := s.studentRepo.DeleteMany(ctx, studentIDs)
	if err != nil {
		return 0, err
	}
	if removed == 0 {
		return 0, apperrors.ErrStudentNotFound
	}

	s.logger.Info().Int64("removed", removed).Msg("Students removed")
	return removed, nil
}
