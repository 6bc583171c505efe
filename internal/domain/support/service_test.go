package support

import (
	"context"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"

	"hrportal/internal/domain/authz"
	"hrportal/internal/domain/employee"
	"hrportal/internal/shared/apperror"
)

func newMockService(t *testing.T) (*Service, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	t.Cleanup(mock.Close)
	return NewService(NewStore(mock), employee.NewStore(mock)), mock
}

func employeeRow(id, name string) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "name", "email", "phone", "department", "title", "start_date", "status", "employment_type", "created_at"}).
		AddRow(id, name, "dana@company.com", "", "", "", "2024-01-01", "Active", "Full-Time", time.Now())
}

func serviceRow(id, employeeID, name, status string) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "employee_id", "employee_name", "request_type", "description", "status", "created_at"}).
		AddRow(id, employeeID, name, "IT Support", "laptop will not boot", status, time.Now())
}

func TestSubmitSnapshotsEmployeeName(t *testing.T) {
	svc, mock := newMockService(t)
	session := authz.Session{EmployeeID: "e-1", Role: authz.RoleEmployee}

	mock.ExpectQuery("FROM employees").
		WithArgs("e-1").
		WillReturnRows(employeeRow("e-1", "Dana Cruz"))
	mock.ExpectQuery("INSERT INTO service_requests").
		WithArgs("e-1", "Dana Cruz", "IT Support", "laptop will not boot", StatusPending).
		WillReturnRows(serviceRow("sr-1", "e-1", "Dana Cruz", StatusPending))

	req, err := svc.Submit(context.Background(), session, SubmitInput{
		EmployeeID:  "e-1",
		RequestType: "IT Support",
		Description: "laptop will not boot",
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if req.EmployeeName != "Dana Cruz" || req.Status != StatusPending {
		t.Fatalf("unexpected request: %+v", req)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSubmitRejectsUnknownType(t *testing.T) {
	svc, mock := newMockService(t)
	session := authz.Session{EmployeeID: "e-1", Role: authz.RoleEmployee}

	_, err := svc.Submit(context.Background(), session, SubmitInput{
		EmployeeID:  "e-1",
		RequestType: "Snacks",
		Description: "more snacks",
	})
	if !apperror.Is(err, apperror.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("store was touched: %v", err)
	}
}

func TestResolveDirectlyFromPending(t *testing.T) {
	svc, mock := newMockService(t)
	session := authz.Session{Role: authz.RoleHR}

	mock.ExpectQuery("FROM service_requests").
		WithArgs("sr-1").
		WillReturnRows(serviceRow("sr-1", "e-1", "Dana Cruz", StatusPending))
	mock.ExpectExec("UPDATE service_requests").
		WithArgs(StatusResolved, "sr-1", StatusPending).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	req, err := svc.Resolve(context.Background(), session, "sr-1")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if req.Status != StatusResolved {
		t.Fatalf("expected resolved, got %q", req.Status)
	}
}

func TestStartResolvedRequestFails(t *testing.T) {
	svc, mock := newMockService(t)
	session := authz.Session{Role: authz.RoleAdmin}

	mock.ExpectQuery("FROM service_requests").
		WithArgs("sr-1").
		WillReturnRows(serviceRow("sr-1", "e-1", "Dana Cruz", StatusResolved))

	_, err := svc.Start(context.Background(), session, "sr-1")
	if !apperror.Is(err, apperror.CodeInvalidState) {
		t.Fatalf("expected invalid state, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected store calls: %v", err)
	}
}

func TestAdvanceForbiddenForEmployees(t *testing.T) {
	svc, _ := newMockService(t)
	session := authz.Session{EmployeeID: "e-1", Role: authz.RoleEmployee}

	if _, err := svc.Start(context.Background(), session, "sr-1"); !apperror.Is(err, apperror.CodeForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}
