package employeehandler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"

	"hrportal/internal/domain/activity"
	"hrportal/internal/domain/authz"
	"hrportal/internal/domain/employee"
	"hrportal/internal/domain/leave"
	"hrportal/internal/domain/reports"
	"hrportal/internal/domain/support"
	"hrportal/internal/transport/http/middleware"
)

func newTestRouter(t *testing.T) (pgxmock.PgxPoolIface, http.Handler) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	t.Cleanup(mock.Close)

	store := employee.NewStore(mock)
	reportsSvc := reports.NewService(store, leave.NewStore(mock), support.NewStore(mock), activity.New(mock))

	router := chi.NewRouter()
	NewHandler(employee.NewService(store), reportsSvc).RegisterRoutes(router)
	return mock, router
}

func asSession(req *http.Request, session authz.Session) *http.Request {
	return req.WithContext(middleware.WithSession(req.Context(), session))
}

type listEnvelope struct {
	Success bool                `json:"success"`
	Data    []employee.Employee `json:"data"`
}

func employeeRows() *pgxmock.Rows {
	now := time.Now()
	return pgxmock.NewRows([]string{"id", "name", "email", "phone", "department", "title", "start_date", "status", "employment_type", "created_at"}).
		AddRow("e-1", "Abe Ford", "abe@company.com", "", "Sales", "", "2023-01-01", "Active", "Full-Time", now).
		AddRow("e-2", "Zoe Lane", "zoe@company.com", "", "Sales", "", "2023-02-01", "", "", now).
		AddRow("e-3", "Mia Hart", "mia@company.com", "", "Sales", "", "2023-03-01", "Active", "Part-Time", now)
}

func TestListFloatsNeedsAttentionFirst(t *testing.T) {
	mock, router := newTestRouter(t)
	mock.ExpectQuery("FROM employees").WillReturnRows(employeeRows())

	req := httptest.NewRequest(http.MethodGet, "/employees/?sort=name&order=asc", nil)
	req = asSession(req, authz.Session{Name: "HR Admin", Role: authz.RoleHR})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var envelope listEnvelope
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	ids := make([]string, 0, len(envelope.Data))
	for _, emp := range envelope.Data {
		ids = append(ids, emp.ID)
	}
	// Zoe has no status, so she outranks the alphabetical order.
	want := []string{"e-2", "e-1", "e-3"}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("unexpected order %v, want %v", ids, want)
		}
	}
}

func TestListByEmail(t *testing.T) {
	mock, router := newTestRouter(t)

	rows := pgxmock.NewRows([]string{"id", "name", "email", "phone", "department", "title", "start_date", "status", "employment_type", "created_at"}).
		AddRow("e-3", "Mia Hart", "mia@company.com", "", "Sales", "", "2023-03-01", "Active", "Part-Time", time.Now())
	mock.ExpectQuery("FROM employees").WithArgs("mia@company.com").WillReturnRows(rows)

	req := httptest.NewRequest(http.MethodGet, "/employees/?email=mia@company.com", nil)
	req = asSession(req, authz.Session{Role: authz.RoleAdmin})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var envelope listEnvelope
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data) != 1 || envelope.Data[0].ID != "e-3" {
		t.Fatalf("unexpected result %+v", envelope.Data)
	}
}

func TestListByEmailNoMatchReturnsEmptyList(t *testing.T) {
	mock, router := newTestRouter(t)
	mock.ExpectQuery("FROM employees").WithArgs("nobody@company.com").WillReturnError(pgx.ErrNoRows)

	req := httptest.NewRequest(http.MethodGet, "/employees/?email=nobody@company.com", nil)
	req = asSession(req, authz.Session{Role: authz.RoleAdmin})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var envelope listEnvelope
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data == nil || len(envelope.Data) != 0 {
		t.Fatalf("expected empty list, got %+v", envelope.Data)
	}
}

func TestListForbiddenForEmployeeRole(t *testing.T) {
	_, router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/employees/", nil)
	req = asSession(req, authz.Session{EmployeeID: "e-1", Role: authz.RoleEmployee})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestGetOwnRecordAllowedForEmployee(t *testing.T) {
	mock, router := newTestRouter(t)

	rows := pgxmock.NewRows([]string{"id", "name", "email", "phone", "department", "title", "start_date", "status", "employment_type", "created_at"}).
		AddRow("e-1", "Abe Ford", "abe@company.com", "", "Sales", "", "2023-01-01", "Active", "Full-Time", time.Now())
	mock.ExpectQuery("FROM employees").WithArgs("e-1").WillReturnRows(rows)

	req := httptest.NewRequest(http.MethodGet, "/employees/e-1", nil)
	req = asSession(req, authz.Session{EmployeeID: "e-1", Role: authz.RoleEmployee})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestGetOtherRecordForbiddenForEmployee(t *testing.T) {
	_, router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/employees/e-2", nil)
	req = asSession(req, authz.Session{EmployeeID: "e-1", Role: authz.RoleEmployee})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}
