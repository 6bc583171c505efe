package leave

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"hrportal/internal/shared/apperror"
)

// brokenRows mimics a result stream cut off mid-transfer: iteration ends
// cleanly but Err reports the underlying failure.
type brokenRows struct {
	err error
}

func (r brokenRows) Close()                                       {}
func (r brokenRows) Err() error                                   { return r.err }
func (r brokenRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r brokenRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r brokenRows) Next() bool                                   { return false }
func (r brokenRows) Scan(dest ...any) error                       { return nil }
func (r brokenRows) Values() ([]any, error)                       { return nil, nil }
func (r brokenRows) RawValues() [][]byte                          { return nil }
func (r brokenRows) Conn() *pgx.Conn                              { return nil }

type brokenQuerier struct {
	rows pgx.Rows
}

func (q brokenQuerier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return q.rows, nil
}

func (q brokenQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return q.rows
}

func (q brokenQuerier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func TestListSurfacesRowStreamFailure(t *testing.T) {
	store := NewStore(brokenQuerier{rows: brokenRows{err: errors.New("connection reset")}})

	_, err := store.List(context.Background(), "")
	if err == nil {
		t.Fatal("expected an error for a failed row stream")
	}
	if !apperror.Is(err, apperror.CodeUnavailable) {
		t.Fatalf("expected UNAVAILABLE, got %v", err)
	}
}
