package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sixrdiamond/recruitment-portal/internal/app/models"
	"github.com/sixrdiamond/recruitment-portal/internal/db"
	"github.com/sixrdiamond/recruitment-portal/internal/pkg/dberrors"
)

// Employee error types
var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmployeeIDExists = errors.New("employee ID already exists")
)

const employeeColumns = `id, employee_id, password, first_name, last_name, role, is_active`

// EmployeeRepository handles database operations for HR employees
type EmployeeRepository struct {
	db db.Queryer
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db db.Queryer) *EmployeeRepository {
	return &EmployeeRepository{
		db: db,
	}
}

func scanEmployee(row pgx.Row) (*models.Employee, error) {
	var e models.Employee
	err := row.Scan(
		&e.ID,
		&e.EmployeeID,
		&e.Password,
		&e.FirstName,
		&e.LastName,
		&e.Role,
		&e.IsActive,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Create inserts a new employee record
func (r *EmployeeRepository) Create(ctx context.Context, employee *models.Employee) error {
	query := `
		INSERT INTO employees (employee_id, password, first_name, last_name, role, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	err := r.db.QueryRow(ctx, query,
		employee.EmployeeID,
		employee.Password,
		employee.FirstName,
		employee.LastName,
		employee.Role,
		employee.IsActive,
	).Scan(&employee.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return ErrEmployeeIDExists
		}
		return fmt.Errorf("failed to create employee: %w", err)
	}
	return nil
}

// GetByEmployeeID retrieves an employee by the business identifier used to
// log in (e.g. EMP-001)
func (r *EmployeeRepository) GetByEmployeeID(ctx context.Context, employeeID string) (*models.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE employee_id = $1`

	employee, err := scanEmployee(r.db.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	return employee, nil
}

// GetByID retrieves an employee by primary key
func (r *EmployeeRepository) GetByID(ctx context.Context, id int64) (*models.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	employee, err := scanEmployee(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	return employee, nil
}
