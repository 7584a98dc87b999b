package services

import (
	"context"
	"time"

	"github.com/pcaproject/timesheet-server/internal/app/models"
	"github.com/pcaproject/timesheet-server/internal/pkg/apperrors"
)

// In-memory stores backing the service tests. They mirror the
// constraint behavior of the real repositories: duplicate keys conflict
// and missing rows surface the not-found sentinels.

type fakeEmployeeStore struct {
	employees map[string]*models.Employee
	sequence  int64
}

func newFakeEmployeeStore(employees ...*models.Employee) *fakeEmployeeStore {
	s := &fakeEmployeeStore{employees: make(map[string]*models.Employee)}
	for _, e := range employees {
		s.employees[e.EmployeeID] = e
		if e.ID > s.sequence {
			s.sequence = e.ID
		}
	}
	return s
}

func (s *fakeEmployeeStore) NextSequence(ctx context.Context) (int64, error) {
	return s.sequence + 1, nil
}

func (s *fakeEmployeeStore) Create(ctx context.Context, employee *models.Employee) error {
	if _, ok := s.employees[employee.EmployeeID]; ok {
		return apperrors.ErrEmployeeAlreadyExists
	}
	for _, e := range s.employees {
		if e.PrimaryEmail == employee.PrimaryEmail {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	s.sequence++
	employee.ID = s.sequence
	employee.EntryCreated = time.Now()
	s.employees[employee.EmployeeID] = employee
	return nil
}

func (s *fakeEmployeeStore) GetByEmployeeID(ctx context.Context, employeeID string) (*models.Employee, error) {
	if e, ok := s.employees[employeeID]; ok {
		copied := *e
		return &copied, nil
	}
	return nil, apperrors.ErrEmployeeNotFound
}

func (s *fakeEmployeeStore) GetByID(ctx context.Context, id int64) (*models.Employee, error) {
	for _, e := range s.employees {
		if e.ID == id {
			copied := *e
			return &copied, nil
		}
	}
	return nil, apperrors.ErrEmployeeNotFound
}

func (s *fakeEmployeeStore) GetAll(ctx context.Context) ([]*models.Employee, error) {
	out := make([]*models.Employee, 0, len(s.employees))
	for _, e := range s.employees {
		copied := *e
		out = append(out, &copied)
	}
	return out, nil
}

func (s *fakeEmployeeStore) Count(ctx context.Context) (int64, error) {
	return int64(len(s.employees)), nil
}

func (s *fakeEmployeeStore) Update(ctx context.Context, employee *models.Employee) error {
	if _, ok := s.employees[employee.EmployeeID]; !ok {
		return apperrors.ErrEmployeeNotFound
	}
	copied := *employee
	s.employees[employee.EmployeeID] = &copied
	return nil
}

func (s *fakeEmployeeStore) UpdatePassword(ctx context.Context, employeeID, passwordHash string) error {
	e, ok := s.employees[employeeID]
	if !ok {
		return apperrors.ErrEmployeeNotFound
	}
	e.Password = passwordHash
	return nil
}

func (s *fakeEmployeeStore) Delete(ctx context.Context, employeeID string) error {
	if _, ok := s.employees[employeeID]; !ok {
		return apperrors.ErrEmployeeNotFound
	}
	delete(s.employees, employeeID)
	return nil
}

func (s *fakeEmployeeStore) DeleteMany(ctx context.Context, employeeIDs []string) (int64, error) {
	var removed int64
	for _, id := range employeeIDs {
		if _, ok := s.employees[id]; ok {
			delete(s.employees, id)
			removed++
		}
	}
	return removed, nil
}

type fakeStudentStore struct {
	students map[string]*models.Student
	nextID   int64
}

func newFakeStudentStore(students ...*models.Student) *fakeStudentStore {
	s := &fakeStudentStore{students: make(map[string]*models.Student)}
	for _, st := range students {
		s.students[st.StudentID] = st
		if st.ID > s.nextID {
			s.nextID = st.ID
		}
	}
	return s
}

func (s *fakeStudentStore) Create(ctx context.Context, student *models.Student) error {
	if _, ok := s.students[student.StudentID]; ok {
		return apperrors.ErrStudentIDAlreadyExists
	}
	s.nextID++
	student.ID = s.nextID
	student.EntryCreated = time.Now()
	s.students[student.StudentID] = student
	return nil
}

func (s *fakeStudentStore) GetByStudentID(ctx context.Context, studentID string) (*models.Student, error) {
	if st, ok := s.students[studentID]; ok {
		copied := *st
		return &copied, nil
	}
	return nil, apperrors.ErrStudentNotFound
}

func (s *fakeStudentStore) GetAll(ctx context.Context) ([]*models.Student, error) {
	out := make([]*models.Student, 0, len(s.students))
	for _, st := range s.students {
		copied := *st
		out = append(out, &copied)
	}
	return out, nil
}

func (s *fakeStudentStore) Count(ctx context.Context) (int64, error) {
	return int64(len(s.students)), nil
}

func (s *fakeStudentStore) Exists(ctx context.Context, studentID string) (bool, error) {
	_, ok := s.students[studentID]
	return ok, nil
}

func (s *fakeStudentStore) Update(ctx context.Context, student *models.Student) error {
	if _, ok := s.students[student.StudentID]; !ok {
		return apperrors.ErrStudentNotFound
	}
	copied := *student
	s.students[student.StudentID] = &copied
	return nil
}

func (s *fakeStudentStore) Delete(ctx context.Context, studentID string) error {
	if _, ok := s.students[studentID]; !ok {
		return apperrors.ErrStudentNotFound
	}
	delete(s.students, studentID)
	return nil
}

func (s *fakeStudentStore) DeleteMany(ctx context.Context, studentIDs []string) (int64, error) {
	var removed int64
	for _, id := range studentIDs {
		if _, ok := s.students[id]; ok {
			delete(s.students, id)
			removed++
		}
	}
	return removed, nil
}

type timeSheetKey struct {
	employeeID string
	date       string
}

type fakeTimeSheetStore struct {
	records map[timeSheetKey]*models.TimeSheet
	nextID  int64
}

func newFakeTimeSheetStore() *fakeTimeSheetStore {
	return &fakeTimeSheetStore{records: make(map[timeSheetKey]*models.TimeSheet)}
}

func tsKey(employeeID string, date time.Time) timeSheetKey {
	return timeSheetKey{employeeID: employeeID, date: date.Format("2006-01-02")}
}

func (s *fakeTimeSheetStore) Create(ctx context.Context, record *models.TimeSheet) error {
	key := tsKey(record.EmployeeID, record.DateWorked)
	if _, ok := s.records[key]; ok {
		return apperrors.ErrTimeSheetAlreadyExists
	}
	s.nextID++
	record.ID = s.nextID
	copied := *record
	s.records[key] = &copied
	return nil
}

func (s *fakeTimeSheetStore) Upsert(ctx context.Context, record *models.TimeSheet) error {
	key := tsKey(record.EmployeeID, record.DateWorked)
	if existing, ok := s.records[key]; ok {
		record.ID = existing.ID
	} else {
		s.nextID++
		record.ID = s.nextID
	}
	copied := *record
	s.records[key] = &copied
	return nil
}

func (s *fakeTimeSheetStore) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*models.TimeSheet, error) {
	if r, ok := s.records[tsKey(employeeID, date)]; ok {
		copied := *r
		return &copied, nil
	}
	return nil, apperrors.ErrTimeSheetNotFound
}

func (s *fakeTimeSheetStore) GetByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]*models.TimeSheet, error) {
	out := make([]*models.TimeSheet, 0)
	for _, r := range s.records {
		if r.EmployeeID != employeeID {
			continue
		}
		if r.DateWorked.Before(start) || r.DateWorked.After(end) {
			continue
		}
		copied := *r
		out = append(out, &copied)
	}
	return out, nil
}

func (s *fakeTimeSheetStore) Update(ctx context.Context, record *models.TimeSheet) error {
	key := tsKey(record.EmployeeID, record.DateWorked)
	existing, ok := s.records[key]
	if !ok {
		return apperrors.ErrTimeSheetNotFound
	}
	record.ID = existing.ID
	copied := *record
	s.records[key] = &copied
	return nil
}

func (s *fakeTimeSheetStore) DeleteByDates(ctx context.Context, employeeID string, dates []time.Time) (int64, error) {
	var removed int64
	for _, date := range dates {
		key := tsKey(employeeID, date)
		if _, ok := s.records[key]; ok {
			delete(s.records, key)
			removed++
		}
	}
	return removed, nil
}

func (s *fakeTimeSheetStore) Count(ctx context.Context) (int64, error) {
	return int64(len(s.records)), nil
}

type careKey struct {
	studentID string
	date      string
	careType  models.CareType
}

type fakeCareStore struct {
	records map[careKey]*models.CareRecord
	nextID  int64
}

func newFakeCareStore() *fakeCareStore {
	return &fakeCareStore{records: make(map[careKey]*models.CareRecord)}
}

func crKey(studentID string, date time.Time, careType models.CareType) careKey {
	return careKey{studentID: studentID, date: date.Format("2006-01-02"), careType: careType}
}

func (s *fakeCareStore) Create(ctx context.Context, record *models.CareRecord) error {
	key := crKey(record.StudentID, record.CareDate, record.CareType)
	if _, ok := s.records[key]; ok {
		return apperrors.ErrAlreadyCheckedIn
	}
	s.nextID++
	record.ID = s.nextID
	copied := *record
	s.records[key] = &copied
	return nil
}

func (s *fakeCareStore) GetByKey(ctx context.Context, studentID string, date time.Time, careType models.CareType) (*models.CareRecord, error) {
	if r, ok := s.records[crKey(studentID, date, careType)]; ok {
		copied := *r
		return &copied, nil
	}
	return nil, apperrors.ErrCareRecordNotFound
}

func (s *fakeCareStore) SetCheckOut(ctx context.Context, id int64, checkOutTime time.Time, signature string) error {
	for _, r := range s.records {
		if r.ID == id {
			if r.CheckOutTime != nil {
				return apperrors.ErrAlreadyCheckedOut
			}
			t := checkOutTime
			r.CheckOutTime = &t
			r.CheckOutSignature = signature
			return nil
		}
	}
	return apperrors.ErrCareRecordNotFound
}

func (s *fakeCareStore) GetByStudentAndDate(ctx context.Context, studentID string, date time.Time) ([]*models.CareRecord, error) {
	out := make([]*models.CareRecord, 0)
	for _, r := range s.records {
		if r.StudentID == studentID && r.CareDate.Equal(date) {
			copied := *r
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (s *fakeCareStore) GetByStudentAndRange(ctx context.Context, studentID string, start, end time.Time) ([]*models.CareRecord, error) {
	out := make([]*models.CareRecord, 0)
	for _, r := range s.records {
		if r.StudentID != studentID {
			continue
		}
		if r.CareDate.Before(start) || r.CareDate.After(end) {
			continue
		}
		copied := *r
		out = append(out, &copied)
	}
	return out, nil
}

func (s *fakeCareStore) Count(ctx context.Context) (int64, error) {
	return int64(len(s.records)), nil
}

func (s *fakeCareStore) Delete(ctx context.Context, studentID string, date time.Time, careType *models.CareType) (int64, error) {
	var removed int64
	for key, r := range s.records {
		if r.StudentID != studentID || !r.CareDate.Equal(date) {
			continue
		}
		if careType != nil && r.CareType != *careType {
			continue
		}
		delete(s.records, key)
		removed++
	}
	return removed, nil
}

type fakeTokenStore struct {
	tokens  map[string]fakeToken
	revoked map[string]bool
}

type fakeToken struct {
	employeeID int64
	expiry     time.Time
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{
		tokens:  make(map[string]fakeToken),
		revoked: make(map[string]bool),
	}
}

func (s *fakeTokenStore) CreateToken(ctx context.Context, token string, employeeID int64, expiryDate time.Time) error {
	s.tokens[token] = fakeToken{employeeID: employeeID, expiry: expiryDate}
	return nil
}

func (s *fakeTokenStore) GetTokenByValue(ctx context.Context, token string) (int64, time.Time, error) {
	t, ok := s.tokens[token]
	if !ok {
		return 0, time.Time{}, apperrors.ErrTokenNotFound
	}
	if s.revoked[token] {
		return 0, time.Time{}, apperrors.ErrTokenRevoked
	}
	if time.Now().After(t.expiry) {
		return 0, time.Time{}, apperrors.ErrTokenExpired
	}
	return t.employeeID, t.expiry, nil
}

func (s *fakeTokenStore) RevokeToken(ctx context.Context, token string) error {
	if _, ok := s.tokens[token]; !ok {
		return apperrors.ErrTokenNotFound
	}
	s.revoked[token] = true
	return nil
}

func (s *fakeTokenStore) RevokeAllEmployeeTokens(ctx context.Context, employeeID int64) error {
	for token, t := range s.tokens {
		if t.employeeID == employeeID {
			s.revoked[token] = true
		}
	}
	return nil
}
