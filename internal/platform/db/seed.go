package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"hrportal/internal/platform/config"
)

type seedEmployee struct {
	name           string
	email          string
	phone          string
	department     string
	title          string
	startDate      string
	status         string
	employmentType string
}

var demoEmployees = []seedEmployee{
	{"John Smith", "john.smith@company.com", "555-0101", "Engineering", "Software Engineer", "2022-03-14", "Active", "Full-Time"},
	{"Sarah Chen", "sarah.chen@company.com", "555-0102", "Finance", "Accountant", "2021-07-01", "Active", "Full-Time"},
	{"Miguel Alvarez", "miguel.alvarez@company.com", "555-0103", "Support", "Support Specialist", "2023-01-09", "Probationary", "Contractor"},
	{"Priya Nair", "priya.nair@company.com", "555-0104", "Engineering", "QA Engineer", "2024-05-20", "", ""},
}

// Seed inserts demo records so the portal is usable out of the box. It is
// idempotent: nothing is written once any employee rows exist.
func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	if !cfg.SeedDemoData {
		return nil
	}

	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(1) FROM employees").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, emp := range demoEmployees {
		if _, err := pool.Exec(ctx, `
      INSERT INTO employees (name, email, phone, department, title, start_date, status, employment_type)
      VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
    `, emp.name, emp.email, emp.phone, emp.department, emp.title, emp.startDate, emp.status, emp.employmentType); err != nil {
			return err
		}
	}

	var johnID string
	if err := pool.QueryRow(ctx, "SELECT id FROM employees WHERE email = $1", "john.smith@company.com").Scan(&johnID); err != nil {
		return err
	}

	if _, err := pool.Exec(ctx, `
    INSERT INTO leave_requests (employee_id, start_date, end_date, reason, status)
    VALUES ($1, CURRENT_DATE + 7, CURRENT_DATE + 9, 'Family trip', 'pending')
  `, johnID); err != nil {
		return err
	}

	if _, err := pool.Exec(ctx, `
    INSERT INTO service_requests (employee_id, employee_name, request_type, description, status)
    VALUES ($1, 'John Smith', 'IT Support', 'Laptop battery drains quickly', 'pending')
  `, johnID); err != nil {
		return err
	}

	return nil
}
