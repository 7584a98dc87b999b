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
	"github.com/pcaproject/timesheet-server/internal/pkg/helpers"
)

// CareWindow is one care service's configured daily window.
type CareWindow struct {
	OpensAt  string
	ClosesAt string

	opens  int // minutes since midnight
	closes int
}

// CareWindows holds the configured window per care type.
type CareWindows map[models.CareType]CareWindow

// NewCareWindows parses the configured HH:MM bounds for both services.
func NewCareWindows(beforeOpens, beforeCloses, afterOpens, afterCloses string) (CareWindows, error) {
	windows := CareWindows{}
	for _, w := range []struct {
		careType models.CareType
		opens    string
		closes   string
	}{
		{models.CareBefore, beforeOpens, beforeCloses},
		{models.CareAfter, afterOpens, afterCloses},
	} {
		opens, err := helpers.ParseClockMinutes(w.opens)
		if err != nil {
			return nil, err
		}
		closes, err := helpers.ParseClockMinutes(w.closes)
		if err != nil {
			return nil, err
		}
		if opens >= closes {
			return nil, fmt.Errorf("%s care window opens at or after it closes", w.careType)
		}
		windows[w.careType] = CareWindow{
			OpensAt:  w.opens,
			ClosesAt: w.closes,
			opens:    opens,
			closes:   closes,
		}
	}
	return windows, nil
}

// CareService defines the interface for care attendance operations
type CareService interface {
	CheckIn(ctx context.Context, req *dto.CheckInRequest) (*models.CareRecord, error)
	CheckOut(ctx context.Context, req *dto.CheckOutRequest) (*models.CareRecord, error)
	GetDay(ctx context.Context, studentID, careDate string) (*dto.CareDayResponse, error)
	GetRange(ctx context.Context, studentID, dateStart, dateEnd string) ([]*models.CareRecord, error)
	TimeSlots() []dto.CareTimeSlot
	DeleteRecords(ctx context.Context, req *dto.DeleteCareRequest) (int64, error)
	CountRecords(ctx context.Context) (int64, error)
}

// careStore is the persistence surface the service needs.
type careStore interface {
	Create(ctx context.Context, record *models.CareRecord) error
	GetByKey(ctx context.Context, studentID string, date time.Time, careType models.CareType) (*models.CareRecord, error)
	SetCheckOut(ctx context.Context, id int64, checkOutTime time.Time, signature string) error
	GetByStudentAndDate(ctx context.Context, studentID string, date time.Time) ([]*models.CareRecord, error)
	GetByStudentAndRange(ctx context.Context, studentID string, start, end time.Time) ([]*models.CareRecord, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, studentID string, date time.Time, careType *models.CareType) (int64, error)
}

// studentLookup is how the care service resolves students.
type studentLookup interface {
	GetByStudentID(ctx context.Context, studentID string) (*models.Student, error)
}

// careServiceImpl implements the CareService interface
type careServiceImpl struct {
	careRepo    careStore
	studentRepo studentLookup
	windows     CareWindows
	now         func() time.Time
	logger      zerolog.Logger
}

// NewCareService creates a new care service instance
func NewCareService(careRepo careStore, studentRepo studentLookup, windows CareWindows, logger zerolog.Logger) CareService {
	return &careServiceImpl{
		careRepo:    careRepo,
		studentRepo: studentRepo,
		windows:     windows,
		now:         time.Now,
		logger:      logger,
	}
}

// resolveClock turns an optional HH:MM value into a timestamp on the
// given date; empty means the current clock.
func (s *careServiceImpl) resolveClock(date time.Time, clock string) (time.Time, error) {
	if clock == "" {
		now := s.now()
		return time.Date(date.Year(), date.Month(), date.Day(),
			now.Hour(), now.Minute(), 0, 0, time.Local), nil
	}

	minutes, err := helpers.ParseClockMinutes(clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", apperrors.ErrValidationFailed, err)
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		minutes/60, minutes%60, 0, 0, time.Local), nil
}

// validateKey checks the student exists and parses the record key.
func (s *careServiceImpl) validateKey(ctx context.Context, studentID, careDate string, careType models.CareType) (time.Time, error) {
	if !models.ValidCareType(careType) {
		return time.Time{}, fmt.Errorf("%w: care type must be before or after", apperrors.ErrInvalidCareType)
	}

	student, err := s.studentRepo.GetByStudentID(ctx, studentID)
	if err != nil {
		return time.Time{}, err
	}
	if !student.IsEnabled {
		return time.Time{}, fmt.Errorf("%w: student account is disabled", apperrors.ErrValidationFailed)
	}

	date, err := helpers.ParseDate(careDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidDate, err)
	}

	return date, nil
}

// CheckIn opens a care record for the student. A student with any
// record for the (date, care type) key cannot check in again, including
// after checkout.
func (s *careServiceImpl) CheckIn(ctx context.Context, req *dto.CheckInRequest) (*models.CareRecord, error) {
	date, err := s.validateKey(ctx, req.StudentID, req.CareDate, req.CareType)
	if err != nil {
		return nil, err
	}

	checkInTime, err := s.resolveClock(date, req.CheckInTime)
	if err != nil {
		return nil, err
	}

	// A check-in at the window close would leave no care time at all,
	// so the close itself is excluded.
	window := s.windows[req.CareType]
	minutes := helpers.ClockMinutesOf(checkInTime)
	if minutes < window.opens || minutes >= window.closes {
		return nil, fmt.Errorf("%w: %s care runs %s to %s",
			apperrors.ErrOutsideCareWindow, req.CareType, window.OpensAt, window.ClosesAt)
	}

	if _, err := s.careRepo.GetByKey(ctx, req.StudentID, date, req.CareType); err == nil {
		return nil, apperrors.ErrAlreadyCheckedIn
	} else if !errors.Is(err, apperrors.ErrCareRecordNotFound) {
		return nil, err
	}

	record := &models.CareRecord{
		StudentID:        req.StudentID,
		CareDate:         date,
		CareType:         req.CareType,
		CheckInTime:      checkInTime,
		CheckInSignature: req.Signature,
	}

	// A concurrent check-in loses on the unique key and surfaces the
	// same conflict.
	if err := s.careRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	s.logger.Info().Str("studentID", req.StudentID).Str("careType", string(req.CareType)).
		Msg("Student checked in")
	return record, nil
}

// CheckOut closes the student's open record for the key. The check-out
// time is clamped to the service window's close and cannot precede the
// check-in time.
func (s *careServiceImpl) CheckOut(ctx context.Context, req *dto.CheckOutRequest) (*models.CareRecord, error) {
	date, err := s.validateKey(ctx, req.StudentID, req.CareDate, req.CareType)
	if err != nil {
		return nil, err
	}

	record, err := s.careRepo.GetByKey(ctx, req.StudentID, date, req.CareType)
	if err != nil {
		if errors.Is(err, apperrors.ErrCareRecordNotFound) {
			return nil, apperrors.ErrNotCheckedIn
		}
		return nil, err
	}
	if record.CheckedOut() {
		return nil, apperrors.ErrAlreadyCheckedOut
	}

	checkOutTime, err := s.resolveClock(date, req.CheckOutTime)
	if err != nil {
		return nil, err
	}

	window := s.windows[req.CareType]
	if helpers.ClockMinutesOf(checkOutTime) > window.closes {
		checkOutTime = time.Date(date.Year(), date.Month(), date.Day(),
			window.closes/60, window.closes%60, 0, 0, time.Local)
	}

	if checkOutTime.Before(record.CheckInTime) {
		return nil, fmt.Errorf("%w: check-out time cannot be before check-in time", apperrors.ErrValidationFailed)
	}

	if err := s.careRepo.SetCheckOut(ctx, record.ID, checkOutTime, req.Signature); err != nil {
		return nil, err
	}

	record.CheckOutTime = &checkOutTime
	record.CheckOutSignature = req.Signature

	s.logger.Info().Str("studentID", req.StudentID).Str("careType", string(req.CareType)).
		Msg("Student checked out")
	return record, nil
}

// GetDay returns a student's records for one day alongside the
// configured service windows.
func (s *careServiceImpl) GetDay(ctx context.Context, studentID, careDate string) (*dto.CareDayResponse, error) {
	if _, err := s.studentRepo.GetByStudentID(ctx, studentID); err != nil {
		return nil, err
	}

	date, err := helpers.ParseDate(careDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidDate, err)
	}

	records, err := s.careRepo.GetByStudentAndDate(ctx, studentID, date)
	if err != nil {
		return nil, err
	}

	return &dto.CareDayResponse{
		StudentID: studentID,
		CareDate:  careDate,
		TimeSlots: s.TimeSlots(),
		Records:   dto.NewCareRecordListResponse(records),
	}, nil
}

// GetRange returns a student's records inside an inclusive date range.
func (s *careServiceImpl) GetRange(ctx context.Context, studentID, dateStart, dateEnd string) ([]*models.CareRecord, error) {
	if _, err := s.studentRepo.GetByStudentID(ctx, studentID); err != nil {
		return nil, err
	}

	start, end, err := helpers.ValidateDateRange(dateStart, dateEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidDateRange, err)
	}

	return s.careRepo.GetByStudentAndRange(ctx, studentID, start, end)
}

// TimeSlots describes the configured care windows.
func (s *careServiceImpl) TimeSlots() []dto.CareTimeSlot {
	slots := make([]dto.CareTimeSlot, 0, len(s.windows))
	for _, careType := range []models.CareType{models.CareBefore, models.CareAfter} {
		window := s.windows[careType]
		slots = append(slots, dto.CareTimeSlot{
			CareType: string(careType),
			OpensAt:  window.OpensAt,
			ClosesAt: window.ClosesAt,
		})
	}
	return slots
}

// DeleteRecords removes a student's record(s) for one day.
func (s *careServiceImpl) DeleteRecords(ctx context.Context, req *dto.DeleteCareRequest) (int64, error) {
	if _, err := s.studentRepo.GetByStudentID(ctx, req.StudentID); err != nil {
		return 0, err
	}

	date, err := helpers.ParseDate(req.CareDate)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", apperrors.ErrInvalidDate, err)
	}

	var careType *models.CareType
	if req.CareType != "" {
		if !models.ValidCareType(req.CareType) {
			return 0, fmt.Errorf("%w: care type must be before or after", apperrors.ErrInvalidCareType)
		}
		careType = &req.CareType
	}

	removed, err := s.careRepo.Delete(ctx, req.StudentID, date, careType)
	if err != nil {
		return 0, err
	}
	if removed == 0 {
		return 0, apperrors.ErrCareRecordNotFound
	}

	return removed, nil
}

// CountRecords returns the total number of care records
func (s *careServiceImpl) CountRecords(ctx context.Context) (int64, error) {
	return s.careRepo.Count(ctx)
}
