package activity

import (
	"context"
	"time"

	"hrportal/internal/domain/authz"
	"hrportal/internal/platform/db"
	"hrportal/internal/shared/apperror"
)

const (
	ActionLogin  = "Login"
	ActionLogout = "Logout"
)

// Entry is an append-only audit record of portal activity. Entries are never
// mutated or deleted.
type Entry struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
	Timestamp time.Time `json:"timestamp"`
}

type Service struct {
	DB db.Querier
}

func New(q db.Querier) *Service {
	return &Service{DB: q}
}

// Record appends an entry under the given identity. The store assigns id and
// timestamp.
func (s *Service) Record(ctx context.Context, session authz.Session, action, details string) (Entry, error) {
	row := s.DB.QueryRow(ctx, `
    INSERT INTO activity_logs (username, email, role, action, details)
    VALUES ($1,$2,$3,$4,$5)
    RETURNING id, username, email, role, action, details, created_at
  `, session.Name, session.Email, string(session.Role), action, details)

	var entry Entry
	if err := row.Scan(&entry.ID, &entry.Username, &entry.Email, &entry.Role, &entry.Action, &entry.Details, &entry.Timestamp); err != nil {
		return Entry{}, apperror.Unavailable(err)
	}
	return entry, nil
}

// List returns entries newest first, optionally narrowed to an exact
// username. Admin only.
func (s *Service) List(ctx context.Context, session authz.Session, username string) ([]Entry, error) {
	if !authz.Authorize(authz.OpActivityRead, session.Role) {
		return nil, apperror.Forbidden("admin role required")
	}

	query := "SELECT id, username, email, role, action, details, created_at FROM activity_logs"
	args := []any{}
	if username != "" {
		query += " WHERE username = $1"
		args = append(args, username)
	}
	query += " ORDER BY created_at DESC"

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, apperror.Unavailable(err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var entry Entry
		if err := rows.Scan(&entry.ID, &entry.Username, &entry.Email, &entry.Role, &entry.Action, &entry.Details, &entry.Timestamp); err != nil {
			return nil, apperror.Unavailable(err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Unavailable(err)
	}
	return entries, nil
}
