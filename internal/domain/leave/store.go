package leave

import (
	"context"
	"errors"
	"time"

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

const leaveColumns = "id, employee_id, start_date, end_date, reason, status, created_at"

func (s *Store) List(ctx context.Context, employeeID string) ([]LeaveRequest, error) {
	query := "SELECT " + leaveColumns + " FROM leave_requests"
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

	var requests []LeaveRequest
	for rows.Next() {
		req, err := scanLeaveRequest(rows)
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

func (s *Store) Get(ctx context.Context, id string) (LeaveRequest, error) {
	row := s.DB.QueryRow(ctx, "SELECT "+leaveColumns+" FROM leave_requests WHERE id = $1", id)
	req, err := scanLeaveRequest(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return LeaveRequest{}, apperror.NotFound("leave request")
		}
		return LeaveRequest{}, apperror.Unavailable(err)
	}
	return req, nil
}

// Create inserts a pending request; the store assigns id and createdAt.
func (s *Store) Create(ctx context.Context, employeeID string, start, end time.Time, reason string) (LeaveRequest, error) {
	row := s.DB.QueryRow(ctx, `
    INSERT INTO leave_requests (employee_id, start_date, end_date, reason, status)
    VALUES ($1,$2,$3,$4,$5)
    RETURNING `+leaveColumns+`
  `, employeeID, start, end, reason, StatusPending)
	req, err := scanLeaveRequest(row)
	if err != nil {
		return LeaveRequest{}, apperror.Unavailable(err)
	}
	return req, nil
}

// UpdateStatus moves a request from one status to another. The guard on the
// source status makes a late transition against a terminal state a no-op,
// reported to the caller as zero rows.
func (s *Store) UpdateStatus(ctx context.Context, id, from, to string) (bool, error) {
	tag, err := s.DB.Exec(ctx, `
    UPDATE leave_requests SET status = $1 WHERE id = $2 AND status = $3
  `, to, id, from)
	if err != nil {
		return false, apperror.Unavailable(err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanLeaveRequest(row pgx.Row) (LeaveRequest, error) {
	var req LeaveRequest
	err := row.Scan(
		&req.ID,
		&req.EmployeeID,
		&req.StartDate,
		&req.EndDate,
		&req.Reason,
		&req.Status,
		&req.CreatedAt,
	)
	return req, err
}
