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

// TimeSheetRepository handles database operations for timesheet records
type TimeSheetRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewTimeSheetRepository creates a new timesheet repository
func NewTimeSheetRepository(db *pgxpool.Pool) *TimeSheetRepository {
	return &TimeSheetRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanTimeSheet(row pgx.Row) (*models.TimeSheet, error) {
	var t models.TimeSheet
	err := row.Scan(
		&t.ID,
		&t.EmployeeID,
		&t.DateWorked,
		&t.WorkHours,
		&t.PTOHours,
		&t.ExtraHours,
		&t.Comment,
		&t.EntryCreated,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create inserts a single day's record; a second record for the same
// (employee, date) is a conflict.
func (r *TimeSheetRepository) Create(ctx context.Context, record *models.TimeSheet) error {
	query := `
		INSERT INTO timesheet_records (employee_id, date_worked, work_hours, pto_hours, extra_hours, comment)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, entry_created
	`

	err := r.db.QueryRow(ctx, query,
		record.EmployeeID,
		record.DateWorked,
		record.WorkHours,
		record.PTOHours,
		record.ExtraHours,
		record.Comment,
	).Scan(&record.ID, &record.EntryCreated)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "timesheet_employee_date_key") {
			return apperrors.ErrTimeSheetAlreadyExists
		}
		return fmt.Errorf("error creating timesheet record: %w", err)
	}

	return nil
}

// Upsert inserts a day's record or, when the (employee, date) pair
// already has one, replaces its hours and comment. Used by bulk
// submissions.
func (r *TimeSheetRepository) Upsert(ctx context.Context, record *models.TimeSheet) error {
	query := `
		INSERT INTO timesheet_records (employee_id, date_worked, work_hours, pto_hours, extra_hours, comment)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (employee_id, date_worked)
		DO UPDATE SET work_hours = EXCLUDED.work_hours,
			pto_hours = EXCLUDED.pto_hours,
			extra_hours = EXCLUDED.extra_hours,
			comment = EXCLUDED.comment
		RETURNING id, entry_created
	`

	err := r.db.QueryRow(ctx, query,
		record.EmployeeID,
		record.DateWorked,
		record.WorkHours,
		record.PTOHours,
		record.ExtraHours,
		record.Comment,
	).Scan(&record.ID, &record.EntryCreated)

	if err != nil {
		return fmt.Errorf("error upserting timesheet record: %w", err)
	}

	return nil
}

// GetByEmployeeAndDate retrieves an employee's record for one date
func (r *TimeSheetRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*models.TimeSheet, error) {
	query := `
		SELECT id, employee_id, date_worked, work_hours, pto_hours, extra_hours, comment, entry_created
		FROM timesheet_records
		WHERE employee_id = $1 AND date_worked = $2
	`

	record, err := scanTimeSheet(r.db.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTimeSheetNotFound
		}
		return nil, fmt.Errorf("error retrieving timesheet record: %w", err)
	}

	return record, nil
}

// GetByEmployeeAndRange retrieves an employee's records inside an
// inclusive date range, oldest first.
func (r *TimeSheetRepository) GetByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]*models.TimeSheet, error) {
	query := `
		SELECT id, employee_id, date_worked, work_hours, pto_hours, extra_hours, comment, entry_created
		FROM timesheet_records
		WHERE employee_id = $1 AND date_worked BETWEEN $2 AND $3
		ORDER BY date_worked
	`

	rows, err := r.db.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("error listing timesheet records: %w", err)
	}
	defer rows.Close()

	var records []*models.TimeSheet
	for rows.Next() {
		record, err := scanTimeSheet(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning timesheet row: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating timesheet rows: %w", err)
	}

	return records, nil
}

// Update replaces the hours and comment for one (employee, date) record
func (r *TimeSheetRepository) Update(ctx context.Context, record *models.TimeSheet) error {
	sql, args, err := r.sb.Update("timesheet_records").
		Set("work_hours", record.WorkHours).
		Set("pto_hours", record.PTOHours).
		Set("extra_hours", record.ExtraHours).
		Set("comment", record.Comment).
		Where(squirrel.Eq{"employee_id": record.EmployeeID, "date_worked": record.DateWorked}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update timesheet query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating timesheet record: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTimeSheetNotFound
	}

	return nil
}

// DeleteByDates removes an employee's records for the listed dates and
// returns how many rows went.
func (r *TimeSheetRepository) DeleteByDates(ctx context.Context, employeeID string, dates []time.Time) (int64, error) {
	sql, args, err := r.sb.Delete("timesheet_records").
		Where(squirrel.Eq{"employee_id": employeeID, "date_worked": dates}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build delete timesheet query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("error deleting timesheet records: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}

// Count returns the total number of timesheet records
func (r *TimeSheetRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM timesheet_records`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting timesheet records: %w", err)
	}
	return count, nil
}
