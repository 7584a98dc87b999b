package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pcaproject/timesheet-server/internal/app/models"
	"github.com/pcaproject/timesheet-server/internal/pkg/apperrors"
	"github.com/pcaproject/timesheet-server/internal/pkg/dberrors"
)

const careColumns = `id, student_id, care_date, care_type, check_in_time, check_out_time,
	check_in_signature, check_out_signature, entry_created`

// CareRepository handles database operations for care attendance records
type CareRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCareRepository creates a new care repository
func NewCareRepository(db *pgxpool.Pool) *CareRepository {
	return &CareRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanCareRecord(row pgx.Row) (*models.CareRecord, error) {
	var r models.CareRecord
	err := row.Scan(
		&r.ID,
		&r.StudentID,
		&r.CareDate,
		&r.CareType,
		&r.CheckInTime,
		&r.CheckOutTime,
		&r.CheckInSignature,
		&r.CheckOutSignature,
		&r.EntryCreated,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// Create opens a care record. The unique constraint on
// (student, date, care type) turns a concurrent double check-in into a
// conflict here rather than a duplicate row.
func (r *CareRepository) Create(ctx context.Context, record *models.CareRecord) error {
	query := `
		INSERT INTO care_records (student_id, care_date, care_type, check_in_time, check_in_signature)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, entry_created
	`

	err := r.db.QueryRow(ctx, query,
		record.StudentID,
		record.CareDate,
		record.CareType,
		record.CheckInTime,
		record.CheckInSignature,
	).Scan(&record.ID, &record.EntryCreated)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "care_student_date_type_key") {
			return apperrors.ErrAlreadyCheckedIn
		}
		return fmt.Errorf("error creating care record: %w", err)
	}

	return nil
}

// GetByKey retrieves the record for one (student, date, care type)
func (r *CareRepository) GetByKey(ctx context.Context, studentID string, date time.Time, careType models.CareType) (*models.CareRecord, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM care_records
		WHERE student_id = $1 AND care_date = $2 AND care_type = $3
	`, careColumns)

	record, err := scanCareRecord(r.db.QueryRow(ctx, query, studentID, date, careType))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCareRecordNotFound
		}
		return nil, fmt.Errorf("error retrieving care record: %w", err)
	}

	return record, nil
}

// SetCheckOut closes an open record. Affecting zero rows means the
// record is gone or was already closed.
func (r *CareRepository) SetCheckOut(ctx context.Context, id int64, checkOutTime time.Time, signature string) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE care_records
		SET check_out_time = $1, check_out_signature = $2
		WHERE id = $3 AND check_out_time IS NULL
	`, checkOutTime, signature, id)
	if err != nil {
		return fmt.Errorf("error closing care record: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAlreadyCheckedOut
	}

	return nil
}

// GetByStudentAndDate retrieves a student's records for one day
func (r *CareRepository) GetByStudentAndDate(ctx context.Context, studentID string, date time.Time) ([]*models.CareRecord, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM care_records
		WHERE student_id = $1 AND care_date = $2
		ORDER BY care_type
	`, careColumns)

	return r.queryRecords(ctx, query, studentID, date)
}

// GetByStudentAndRange retrieves a student's records inside an
// inclusive date range, oldest first.
func (r *CareRepository) GetByStudentAndRange(ctx context.Context, studentID string, start, end time.Time) ([]*models.CareRecord, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM care_records
		WHERE student_id = $1 AND care_date BETWEEN $2 AND $3
		ORDER BY care_date, care_type
	`, careColumns)

	return r.queryRecords(ctx, query, studentID, start, end)
}

func (r *CareRepository) queryRecords(ctx context.Context, query string, args ...interface{}) ([]*models.CareRecord, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing care records: %w", err)
	}
	defer rows.Close()

	var records []*models.CareRecord
	for rows.Next() {
		record, err := scanCareRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning care record row: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating care record rows: %w", err)
	}

	return records, nil
}

// Count returns the total number of care records
func (r *CareRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM care_records`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting care records: %w", err)
	}
	return count, nil
}

// Delete removes a student's record(s) for one day. A nil care type
// removes both services' records.
func (r *CareRepository) Delete(ctx context.Context, studentID string, date time.Time, careType *models.CareType) (int64, error) {
	where := squirrel.Eq{"student_id": studentID, "care_date": date}
	if careType != nil {
		where["care_type"] = *careType
	}

	sql, args, err := r.sb.Delete("care_records").Where(where).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build delete care records query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("error deleting care records: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}
