package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/provipay/commission-backend-go/internal/domain/employee"
	"github.com/provipay/commission-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (id, name, agent_company, hire_date, salary_model_id, apply_five_percent_deduction)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, agent_company, hire_date, salary_model_id, apply_five_percent_deduction, created_at, updated_at
	`

	var created employee.Employee
	err := q.QueryRow(ctx, query,
		uuid.NewString(), emp.Name, emp.AgentCompany, emp.HireDate,
		emp.SalaryModelID, emp.ApplyFivePercentDeduction,
	).Scan(
		&created.ID, &created.Name, &created.AgentCompany, &created.HireDate,
		&created.SalaryModelID, &created.ApplyFivePercentDeduction, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.Employee{}, employee.ErrEmployeeNameExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return created, nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return r.getBy(ctx, "id", id)
}

func (r *employeeRepository) GetByName(ctx context.Context, name string) (employee.Employee, error) {
	return r.getBy(ctx, "name", name)
}

func (r *employeeRepository) getBy(ctx context.Context, column, value string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT id, name, agent_company, hire_date, salary_model_id, apply_five_percent_deduction, created_at, updated_at
		FROM employees
		WHERE %s = $1
	`, column)

	var emp employee.Employee
	err := q.QueryRow(ctx, query, value).Scan(
		&emp.ID, &emp.Name, &emp.AgentCompany, &emp.HireDate,
		&emp.SalaryModelID, &emp.ApplyFivePercentDeduction, &emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

func (r *employeeRepository) GetAll(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, agent_company, hire_date, salary_model_id, apply_five_percent_deduction, created_at, updated_at
		FROM employees
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(
			&emp.ID, &emp.Name, &emp.AgentCompany, &emp.HireDate,
			&emp.SalaryModelID, &emp.ApplyFivePercentDeduction, &emp.CreatedAt, &emp.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	return employees, nil
}

func (r *employeeRepository) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, r.db)

	setClauses := []string{}
	args := []interface{}{}
	argIdx := 1

	if req.Name != nil {
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", argIdx))
		args = append(args, *req.Name)
		argIdx++
	}
	if req.AgentCompany != nil {
		setClauses = append(setClauses, fmt.Sprintf("agent_company = $%d", argIdx))
		args = append(args, *req.AgentCompany)
		argIdx++
	}
	if req.HireDate != nil {
		hireDate, err := time.Parse("2006-01-02", *req.HireDate)
		if err != nil {
			return fmt.Errorf("failed to parse hire date: %w", err)
		}
		setClauses = append(setClauses, fmt.Sprintf("hire_date = $%d", argIdx))
		args = append(args, hireDate)
		argIdx++
	}
	if req.SalaryModelID != nil {
		setClauses = append(setClauses, fmt.Sprintf("salary_model_id = $%d", argIdx))
		args = append(args, *req.SalaryModelID)
		argIdx++
	}
	if req.ApplyFivePercentDeduction != nil {
		// Inner nil clears the override back to the tenure rule.
		setClauses = append(setClauses, fmt.Sprintf("apply_five_percent_deduction = $%d", argIdx))
		args = append(args, *req.ApplyFivePercentDeduction)
		argIdx++
	}

	if len(setClauses) == 0 {
		return nil
	}

	setClauses = append(setClauses, "updated_at = NOW()")

	query := fmt.Sprintf("UPDATE employees SET %s WHERE id = $%d RETURNING id", strings.Join(setClauses, ", "), argIdx)
	args = append(args, req.ID)

	var updatedID string
	if err := q.QueryRow(ctx, query, args...).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to update employee: %w", err)
	}

	return nil
}

func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, "DELETE FROM employees WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}
