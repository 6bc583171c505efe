package support

import (
	"context"
	"errors"

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

const serviceColumns = "id, employee_id, employee_name, request_type, description, status, created_at"

func (s *Store) List(ctx context.Context, employeeID string) ([]ServiceRequest, error) {
	query := "SELECT " + serviceColumns + " FROM service_requests"
	args := []any{}
	if employeeID != "" {
		query += " WHERE employee_id = $1"
		args = append(args, employeeID)
	}
	query += " ORDER BY created_at"

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, apperror.Unavailable(err)
	}
	defer rows.Close()

	var requests []ServiceRequest
	for rows.Next() {
		req, err := scanServiceRequest(rows)
		if err != nil {
			return nil, apperror.Unavailable(err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Unavailable(err)
	}
	return requests, nil
}

func (s *Store) Get(ctx context.Context, id string) (ServiceRequest, error) {
	row := s.DB.QueryRow(ctx, "SELECT "+serviceColumns+" FROM service_requests WHERE id = $1", id)
	req, err := scanServiceRequest(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ServiceRequest{}, apperror.NotFound("service request")
		}
		return ServiceRequest{}, apperror.Unavailable(err)
	}
	return req, nil
}

func (s *Store) Create(ctx context.Context, employeeID, employeeName, requestType, description string) (ServiceRequest, error) {
	row := s.DB.QueryRow(ctx, `
    INSERT INTO service_requests (employee_id, employee_name, request_type, description, status)
    VALUES ($1,$2,$3,$4,$5)
    RETURNING `+serviceColumns+`
  `, employeeID, employeeName, requestType, description, StatusPending)
	req, err := scanServiceRequest(row)
	if err != nil {
		return ServiceRequest{}, apperror.Unavailable(err)
	}
	return req, nil
}

func (s *Store) UpdateStatus(ctx context.Context, id, from, to string) (bool, error) {
	tag, err := s.DB.Exec(ctx, `
    UPDATE service_requests SET status = $1 WHERE id = $2 AND status = $3
  `, to, id, from)
	if err != nil {
		return false, apperror.Unavailable(err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanServiceRequest(row pgx.Row) (ServiceRequest, error) {
	var req ServiceRequest
	err := row.Scan(
		&req.ID,
		&req.EmployeeID,
		&req.EmployeeName,
		&req.RequestType,
		&req.Description,
		&req.Status,
		&req.CreatedAt,
	)
	return req, err
}
