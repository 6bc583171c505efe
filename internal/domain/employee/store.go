package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"hrportal/internal/platform/db"
	"hrportal/internal/shared/apperror"
)

type Store struct {
	DB db.Querier
}

func NewStore(q db.Querier) *Store {
	return &Store{DB: q}
}

const employeeColumns = "id, name, email, phone, department, title, start_date, status, employment_type, created_at"

func (s *Store) List(ctx context.Context) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+employeeColumns+`
    FROM employees
    ORDER BY created_at
  `)
	if err != nil {
		return nil, apperror.Unavailable(err)
	}
	defer rows.Close()

	var employees []Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, apperror.Unavailable(err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Unavailable(err)
	}
	return employees, nil
}

func (s *Store) Get(ctx context.Context, id string) (Employee, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT `+employeeColumns+`
    FROM employees
    WHERE id = $1
  `, id)
	emp, err := scanEmployee(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Employee{}, apperror.NotFound("employee")
		}
		return Employee{}, apperror.Unavailable(err)
	}
	return emp, nil
}

// FindByEmail is an exact-match lookup, first result or none.
func (s *Store) FindByEmail(ctx context.Context, email string) (Employee, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT `+employeeColumns+`
    FROM employees
    WHERE email = $1
    ORDER BY created_at
    LIMIT 1
  `, email)
	emp, err := scanEmployee(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Employee{}, apperror.NotFound("employee")
		}
		return Employee{}, apperror.Unavailable(err)
	}
	return emp, nil
}

func (s *Store) Create(ctx context.Context, input NewInput) (Employee, error) {
	row := s.DB.QueryRow(ctx, `
    INSERT INTO employees (name, email, phone, department, title, start_date, status, employment_type)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
    RETURNING `+employeeColumns+`
  `, input.Name, input.Email, input.Phone, input.Department, input.Title, input.StartDate, input.Status, input.EmploymentType)
	emp, err := scanEmployee(row)
	if err != nil {
		return Employee{}, apperror.Unavailable(err)
	}
	return emp, nil
}

func (s *Store) Update(ctx context.Context, id string, input UpdateInput) (Employee, error) {
	sets := []string{}
	args := []any{}

	add := func(column string, value *string) {
		if value == nil {
			return
		}
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)+1))
		args = append(args, *value)
	}
	add("name", input.Name)
	add("email", input.Email)
	add("phone", input.Phone)
	add("department", input.Department)
	add("title", input.Title)
	add("start_date", input.StartDate)
	add("status", input.Status)
	add("employment_type", input.EmploymentType)

	if len(sets) == 0 {
		return s.Get(ctx, id)
	}

	query := "UPDATE employees SET "
	for i, set := range sets {
		if i > 0 {
			query += ", "
		}
		query += set
	}
	query += fmt.Sprintf(" WHERE id = $%d RETURNING ", len(args)+1) + employeeColumns
	args = append(args, id)

	row := s.DB.QueryRow(ctx, query, args...)
	emp, err := scanEmployee(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Employee{}, apperror.NotFound("employee")
		}
		return Employee{}, apperror.Unavailable(err)
	}
	return emp, nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM employees WHERE id = $1", id)
	if err != nil {
		return apperror.Unavailable(err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("employee")
	}
	return nil
}

func scanEmployee(row pgx.Row) (Employee, error) {
	var emp Employee
	err := row.Scan(
		&emp.ID,
		&emp.Name,
		&emp.Email,
		&emp.Phone,
		&emp.Department,
		&emp.Title,
		&emp.StartDate,
		&emp.Status,
		&emp.EmploymentType,
		&emp.CreatedAt,
	)
	return emp, err
}
