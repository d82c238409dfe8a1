package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/elia-nu/geo-sub002/internal/domain/employee"
	"github.com/elia-nu/geo-sub002/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.Repository {
	return &employeeRepository{db: db}
}

const employeeColumns = `id, full_name, department, gross_salary, transport_allowance,
	   employment_status, hire_date, created_at, updated_at`

// Find implements employee.Repository. The stored record is normalized
// into the canonical shape here; nullable name and department columns
// become empty strings so downstream code never branches on shape.
func (r *employeeRepository) Find(ctx context.Context, filter employee.Filter) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	var (
		conditions []string
		args       []interface{}
	)

	if len(filter.IDs) > 0 {
		args = append(args, filter.IDs)
		conditions = append(conditions, fmt.Sprintf("id = ANY($%d)", len(args)))
	}
	if filter.Department != nil {
		args = append(args, *filter.Department)
		conditions = append(conditions, fmt.Sprintf("department = $%d", len(args)))
	}
	if filter.ActiveOnly {
		conditions = append(conditions, "employment_status = 'active'")
	}

	query := `SELECT ` + employeeColumns + ` FROM employees`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY full_name"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to find employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

// GetByID implements employee.Repository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	row := q.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id)
	emp, err := scanEmployee(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return emp, nil
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var (
		emp        employee.Employee
		fullName   *string
		department *string
	)
	err := row.Scan(
		&emp.ID, &fullName, &department, &emp.GrossSalary, &emp.TransportAllowance,
		&emp.EmploymentStatus, &emp.HireDate, &emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, err
		}
		return employee.Employee{}, fmt.Errorf("failed to scan employee: %w", err)
	}
	if fullName != nil {
		emp.FullName = *fullName
	}
	if department != nil {
		emp.Department = *department
	}
	return emp, nil
}
