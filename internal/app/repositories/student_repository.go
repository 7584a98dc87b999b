package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pcaproject/timesheet-server/internal/app/models"
	"github.com/pcaproject/timesheet-server/internal/pkg/apperrors"
	"github.com/pcaproject/timesheet-server/internal/pkg/dberrors"
)

const studentColumns = `id, student_id, first_name, last_name, carpool_number,
	COALESCE(primary_email, ''), is_enabled, entry_created, last_updated`

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	var s models.Student
	err := row.Scan(
		&s.ID,
		&s.StudentID,
		&s.FirstName,
		&s.LastName,
		&s.CarpoolNumber,
		&s.PrimaryEmail,
		&s.IsEnabled,
		&s.EntryCreated,
		&s.LastUpdated,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create inserts a new student and fills in the row identifier and
// timestamps.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (student_id, first_name, last_name, carpool_number, primary_email, is_enabled)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6)
		RETURNING id, entry_created, last_updated
	`

	err := r.db.QueryRow(ctx, query,
		student.StudentID,
		student.FirstName,
		student.LastName,
		student.CarpoolNumber,
		student.PrimaryEmail,
		student.IsEnabled,
	).Scan(&student.ID, &student.EntryCreated, &student.LastUpdated)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_student_id_key") {
			return apperrors.ErrStudentIDAlreadyExists
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByStudentID retrieves a student by their public identifier
func (r *StudentRepository) GetByStudentID(ctx context.Context, studentID string) (*models.Student, error) {
	query := fmt.Sprintf(`SELECT %s FROM students WHERE student_id = $1`, studentColumns)

	student, err := scanStudent(r.db.QueryRow(ctx, query, studentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// GetAll retrieves all students ordered by last name
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	query := fmt.Sprintf(`SELECT %s FROM students ORDER BY last_name, first_name`, studentColumns)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}

// Count returns the number of students
func (r *StudentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM students`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting students: %w", err)
	}
	return count, nil
}

// Exists reports whether a student with the identifier exists
func (r *StudentRepository) Exists(ctx context.Context, studentID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM students WHERE student_id = $1)`, studentID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking student existence: %w", err)
	}
	return exists, nil
}

// Update persists the mutable fields of a student row
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	sql, args, err := r.sb.Update("students").
		Set("first_name", student.FirstName).
		Set("last_name", student.LastName).
		Set("carpool_number", student.CarpoolNumber).
		Set("primary_email", squirrel.Expr("NULLIF(?, '')", student.PrimaryEmail)).
		Set("is_enabled", student.IsEnabled).
		Set("last_updated", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"student_id": student.StudentID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Delete removes one student; care records cascade at the schema level.
func (r *StudentRepository) Delete(ctx context.Context, studentID string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM students WHERE student_id = $1`, studentID)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// DeleteMany removes every student in the identifier list and returns
// how many rows went.
func (r *StudentRepository) DeleteMany(ctx context.Context, studentIDs []string) (int64, error) {
	sql, args, err := r.sb.Delete("students").
		Where(squirrel.Eq{"student_id": studentIDs}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build delete students query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("error deleting students: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}
