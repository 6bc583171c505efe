package middleware

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hrportal/internal/domain/authz"
)

func TestLoggerIncludesSessionRole(t *testing.T) {
	var buf bytes.Buffer
	original := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(original) })

	handler := Logger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/employees/", nil)
	req = req.WithContext(WithSession(req.Context(), authz.Session{Name: "HR Admin", Role: authz.RoleHR}))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	line := buf.String()
	if !strings.Contains(line, `"role":"hr"`) {
		t.Fatalf("expected role in access line, got %q", line)
	}
	if !strings.Contains(line, `"path":"/api/employees/"`) {
		t.Fatalf("expected path in access line, got %q", line)
	}
}

func TestLoggerOmitsRoleForAnonymousRequests(t *testing.T) {
	var buf bytes.Buffer
	original := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(original) })

	handler := Logger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/leaveRequests/", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	line := buf.String()
	if strings.Contains(line, `"role"`) {
		t.Fatalf("anonymous request should not carry a role, got %q", line)
	}
	if !strings.Contains(line, `"status":401`) {
		t.Fatalf("expected status in access line, got %q", line)
	}
}
