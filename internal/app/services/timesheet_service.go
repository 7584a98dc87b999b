package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/pcaproject/timesheet-server/internal/app/models"
	"github.com/pcaproject/timesheet-server/internal/app/models/dto"
	"github.com/pcaproject/timesheet-server/internal/pkg/apperrors"
	"github.com/pcaproject/timesheet-server/internal/pkg/helpers"
	"github.com/pcaproject/timesheet-server/internal/pkg/validation"
)

// TimeSheetService defines the interface for timesheet operations
type TimeSheetService interface {
	GetRange(ctx context.Context, employeeID, dateStart, dateEnd string) (*dto.TimeSheetRangeResponse, error)
	Submit(ctx context.Context, employeeID string, req *dto.SubmitTimeSheetRequest) ([]dto.TimeSheetEntry, error)
	UpdateRecord(ctx context.Context, employeeID string, req *dto.UpdateTimeSheetRequest) (*models.TimeSheet, error)
	DeleteRecords(ctx context.Context, employeeID string, datesWorked []string) (int64, error)
	CountRecords(ctx context.Context) (int64, error)
}

// timeSheetStore is the persistence surface the service needs.
type timeSheetStore interface {
	Create(ctx context.Context, record *models.TimeSheet) error
	Upsert(ctx context.Context, record *models.TimeSheet) error
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*models.TimeSheet, error)
	GetByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]*models.TimeSheet, error)
	Update(ctx context.Context, record *models.TimeSheet) error
	DeleteByDates(ctx context.Context, employeeID string, dates []time.Time) (int64, error)
	Count(ctx context.Context) (int64, error)
}

// employeeLookup is how the timesheet service resolves employees and
// their hour-category flags.
type employeeLookup interface {
	GetByEmployeeID(ctx context.Context, employeeID string) (*models.Employee, error)
}

// timeSheetServiceImpl implements the TimeSheetService interface
type timeSheetServiceImpl struct {
	timeSheetRepo timeSheetStore
	employeeRepo  employeeLookup
	logger        zerolog.Logger
}

// NewTimeSheetService creates a new timesheet service instance
func NewTimeSheetService(timeSheetRepo timeSheetStore, employeeRepo employeeLookup, logger zerolog.Logger) TimeSheetService {
	return &timeSheetServiceImpl{
		timeSheetRepo: timeSheetRepo,
		employeeRepo:  employeeRepo,
		logger:        logger,
	}
}

// GetRange aggregates an employee's hours over an inclusive date range.
// An empty range yields zeroed totals and an empty record list.
func (s *timeSheetServiceImpl) GetRange(ctx context.Context, employeeID, dateStart, dateEnd string) (*dto.TimeSheetRangeResponse, error) {
	if _, err := s.employeeRepo.GetByEmployeeID(ctx, employeeID); err != nil {
		return nil, err
	}

	start, end, err := helpers.ValidateDateRange(dateStart, dateEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidDateRange, err)
	}

	records, err := s.timeSheetRepo.GetByEmployeeAndRange(ctx, employeeID, start, end)
	if err != nil {
		return nil, err
	}

	resp := &dto.TimeSheetRangeResponse{
		EmployeeID: employeeID,
		DateStart:  dateStart,
		DateEnd:    dateEnd,
		Records:    make([]dto.TimeSheetEntry, 0, len(records)),
	}
	for _, record := range records {
		resp.TotalHours.WorkHours += record.WorkHours
		resp.TotalHours.PTOHours += record.PTOHours
		resp.TotalHours.ExtraHours += record.ExtraHours
		resp.Records = append(resp.Records, dto.NewTimeSheetEntry(record))
	}

	return resp, nil
}

// normalizeEntry parses and rounds one submitted entry, zeroing hour
// categories the employee has disabled.
func (s *timeSheetServiceImpl) normalizeEntry(employee *models.Employee, entry dto.TimeSheetEntry) (*models.TimeSheet, error) {
	date, err := helpers.ParseDate(entry.DateWorked)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidDate, err)
	}

	for _, hours := range []float64{entry.WorkHours, entry.PTOHours, entry.ExtraHours} {
		if !validation.NewHoursValidation(hours).Validate() {
			return nil, fmt.Errorf("%w: hours must be between 0 and 24", apperrors.ErrValidationFailed)
		}
	}

	record := &models.TimeSheet{
		EmployeeID: employee.EmployeeID,
		DateWorked: date,
		WorkHours:  helpers.RoundHoursUp(entry.WorkHours),
		PTOHours:   helpers.RoundHoursUp(entry.PTOHours),
		ExtraHours: helpers.RoundHoursUp(entry.ExtraHours),
		Comment:    entry.Comment,
	}
	if !employee.PTOHoursEnabled {
		record.PTOHours = 0
	}
	if !employee.ExtraHoursEnabled {
		record.ExtraHours = 0
	}

	return record, nil
}

// Submit records a batch of daily entries. A single-entry submission is
// a strict create and conflicts when the date already has a record; a
// multi-entry submission updates existing dates in place. Entries with
// no hours at all are skipped rather than created.
func (s *timeSheetServiceImpl) Submit(ctx context.Context, employeeID string, req *dto.SubmitTimeSheetRequest) ([]dto.TimeSheetEntry, error) {
	employee, err := s.employeeRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	strict := len(req.TimeSheets) == 1

	saved := make([]dto.TimeSheetEntry, 0, len(req.TimeSheets))
	for _, entry := range req.TimeSheets {
		record, err := s.normalizeEntry(employee, entry)
		if err != nil {
			return nil, err
		}

		if record.IsEmpty() {
			continue
		}

		if strict {
			err = s.timeSheetRepo.Create(ctx, record)
		} else {
			err = s.timeSheetRepo.Upsert(ctx, record)
		}
		if err != nil {
			return nil, err
		}

		saved = append(saved, dto.NewTimeSheetEntry(record))
	}

	s.logger.Info().Str("employeeID", employeeID).Int("records", len(saved)).Msg("Timesheet entries saved")
	return saved, nil
}

// UpdateRecord replaces the hours for one existing date.
func (s *timeSheetServiceImpl) UpdateRecord(ctx context.Context, employeeID string, req *dto.UpdateTimeSheetRequest) (*models.TimeSheet, error) {
	employee, err := s.employeeRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	record, err := s.normalizeEntry(employee, req.TimeSheetEntry)
	if err != nil {
		return nil, err
	}

	if err := s.timeSheetRepo.Update(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

// DeleteRecords removes an employee's records for the listed dates.
func (s *timeSheetServiceImpl) DeleteRecords(ctx context.Context, employeeID string, datesWorked []string) (int64, error) {
	if _, err := s.employeeRepo.GetByEmployeeID(ctx, employeeID); err != nil {
		return 0, err
	}

	dates := make([]time.Time, 0, len(datesWorked))
	for _, raw := range datesWorked {
		date, err := helpers.ParseDate(raw)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", apperrors.ErrInvalidDate, err)
		}
		dates = append(dates, date)
	}

	removed, err := s.timeSheetRepo.DeleteByDates(ctx, employeeID, dates)
	if err != nil {
		return 0, err
	}
	if removed == 0 {
		return 0, apperrors.ErrTimeSheetNotFound
	}

	return removed, nil
}

// CountRecords returns the total number of timesheet records
func (s *timeSheetServiceImpl) CountRecords(ctx context.Context) (int64, error) {
	return s.timeSheetRepo.Count(ctx)
}
