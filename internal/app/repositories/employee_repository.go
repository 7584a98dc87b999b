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

const employeeColumns = `id, employee_id, first_name, last_name, password_hash, role,
	primary_email, pto_hours_enabled, extra_hours_enabled, is_enabled, entry_created, last_updated`

// EmployeeRepository handles database operations for employees
type EmployeeRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *pgxpool.Pool) *EmployeeRepository {
	return &EmployeeRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanEmployee(row pgx.Row) (*models.Employee, error) {
	var e models.Employee
	err := row.Scan(
		&e.ID,
		&e.EmployeeID,
		&e.FirstName,
		&e.LastName,
		&e.Password,
		&e.Role,
		&e.PrimaryEmail,
		&e.PTOHoursEnabled,
		&e.ExtraHoursEnabled,
		&e.IsEnabled,
		&e.EntryCreated,
		&e.LastUpdated,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// NextSequence returns the sequence number the next generated employee
// identifier should carry.
func (r *EmployeeRepository) NextSequence(ctx context.Context) (int64, error) {
	var maxID int64
	err := r.db.QueryRow(ctx, `SELECT COALESCE(MAX(id), 0) FROM employees`).Scan(&maxID)
	if err != nil {
		return 0, fmt.Errorf("error determining next employee sequence: %w", err)
	}
	return maxID + 1, nil
}

// Create inserts a new employee and fills in the row identifier and
// timestamps.
func (r *EmployeeRepository) Create(ctx context.Context, employee *models.Employee) error {
	query := `
		INSERT INTO employees (employee_id, first_name, last_name, password_hash, role,
			primary_email, pto_hours_enabled, extra_hours_enabled, is_enabled)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, entry_created, last_updated
	`

	err := r.db.QueryRow(ctx, query,
		employee.EmployeeID,
		employee.FirstName,
		employee.LastName,
		employee.Password,
		employee.Role,
		employee.PrimaryEmail,
		employee.PTOHoursEnabled,
		employee.ExtraHoursEnabled,
		employee.IsEnabled,
	).Scan(&employee.ID, &employee.EntryCreated, &employee.LastUpdated)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "employees_employee_id_key") {
			return apperrors.ErrEmployeeAlreadyExists
		}
		if dberrors.IsDuplicateConstraintError(err, "employees_primary_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error creating employee: %w", err)
	}

	return nil
}

// GetByEmployeeID retrieves an employee by their public identifier
func (r *EmployeeRepository) GetByEmployeeID(ctx context.Context, employeeID string) (*models.Employee, error) {
	query := fmt.Sprintf(`SELECT %s FROM employees WHERE employee_id = $1`, employeeColumns)

	employee, err := scanEmployee(r.db.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("error retrieving employee: %w", err)
	}

	return employee, nil
}

// GetByID retrieves an employee by database row identifier
func (r *EmployeeRepository) GetByID(ctx context.Context, id int64) (*models.Employee, error) {
	query := fmt.Sprintf(`SELECT %s FROM employees WHERE id = $1`, employeeColumns)

	employee, err := scanEmployee(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("error retrieving employee: %w", err)
	}

	return employee, nil
}

// GetAll retrieves all employees ordered by last name
func (r *EmployeeRepository) GetAll(ctx context.Context) ([]*models.Employee, error) {
	query := fmt.Sprintf(`SELECT %s FROM employees ORDER BY last_name, first_name`, employeeColumns)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing employees: %w", err)
	}
	defer rows.Close()

	var employees []*models.Employee
	for rows.Next() {
		employee, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning employee row: %w", err)
		}
		employees = append(employees, employee)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating employee rows: %w", err)
	}

	return employees, nil
}

// Count returns the number of employees
func (r *EmployeeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting employees: %w", err)
	}
	return count, nil
}

// Exists reports whether an employee with the identifier exists
func (r *EmployeeRepository) Exists(ctx context.Context, employeeID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM employees WHERE employee_id = $1)`, employeeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking employee existence: %w", err)
	}
	return exists, nil
}

// Update persists the mutable fields of an employee row
func (r *EmployeeRepository) Update(ctx context.Context, employee *models.Employee) error {
	sql, args, err := r.sb.Update("employees").
		Set("first_name", employee.FirstName).
		Set("last_name", employee.LastName).
		Set("role", employee.Role).
		Set("primary_email", employee.PrimaryEmail).
		Set("pto_hours_enabled", employee.PTOHoursEnabled).
		Set("extra_hours_enabled", employee.ExtraHoursEnabled).
		Set("is_enabled", employee.IsEnabled).
		Set("last_updated", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"employee_id": employee.EmployeeID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update employee query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "employees_primary_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error updating employee: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEmployeeNotFound
	}

	return nil
}

// UpdatePassword replaces an employee's password hash
func (r *EmployeeRepository) UpdatePassword(ctx context.Context, employeeID, passwordHash string) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE employees SET password_hash = $1, last_updated = CURRENT_TIMESTAMP WHERE employee_id = $2`,
		passwordHash, employeeID)
	if err != nil {
		return fmt.Errorf("error updating employee password: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEmployeeNotFound
	}

	return nil
}

// Delete removes one employee; timesheet rows cascade at the schema level.
func (r *EmployeeRepository) Delete(ctx context.Context, employeeID string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM employees WHERE employee_id = $1`, employeeID)
	if err != nil {
		return fmt.Errorf("error deleting employee: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEmployeeNotFound
	}

	return nil
}

// DeleteMany removes every employee in the identifier list and returns
// how many rows went.
func (r *EmployeeRepository) DeleteMany(ctx context.Context, employeeIDs []string) (int64, error) {
	sql, args, err := r.sb.Delete("employees").
		Where(squirrel.Eq{"employee_id": employeeIDs}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build delete employees query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("error deleting employees: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}
