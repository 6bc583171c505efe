package authhandler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"hrportal/internal/domain/activity"
	"hrportal/internal/domain/authz"
	"hrportal/internal/domain/employee"
	"hrportal/internal/shared/apperror"
	"hrportal/internal/transport/http/api"
	"hrportal/internal/transport/http/middleware"
)

// Accounts carries the built-in identities configured at boot. AdminHash is
// the bcrypt hash of the admin password, never the password itself.
type Accounts struct {
	AdminEmail string
	AdminName  string
	AdminHash  string
	HREmail    string
	HRName     string
}

type Handler struct {
	Employees *employee.Store
	Signup    *employee.Service
	Activity  *activity.Service

	Secret   string
	TTL      time.Duration
	Accounts Accounts
}

func NewHandler(employees *employee.Store, signup *employee.Service, activitySvc *activity.Service, secret string, ttl time.Duration, accounts Accounts) *Handler {
	return &Handler{
		Employees: employees,
		Signup:    signup,
		Activity:  activitySvc,
		Secret:    secret,
		TTL:       ttl,
		Accounts:  accounts,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.handleLogin)
		r.Post("/signup", h.handleSignup)
		r.With(middleware.RequireSession).Post("/logout", h.handleLogout)
		r.With(middleware.RequireSession).Get("/session", h.handleSession)
	})
}

type loginPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginResponse struct {
	Token   string        `json:"token"`
	Session authz.Session `json:"session"`
}

// handleLogin resolves the caller's identity per role. The admin account is
// checked against the configured email and password, hr identity is taken
// as declared, and employees must match an existing record by email.
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload loginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, apperror.CodeValidation, "invalid request payload", requestID)
		return
	}

	role, err := authz.ParseRole(payload.Role)
	if err != nil {
		api.FailError(w, apperror.Validation("role", "unknown role"), requestID)
		return
	}

	var session authz.Session
	switch role {
	case authz.RoleAdmin:
		// Both the configured email and the password must match; the session
		// always carries the configured identity, not the submitted one.
		if strings.TrimSpace(payload.Email) != h.Accounts.AdminEmail ||
			authz.CheckPassword(h.Accounts.AdminHash, payload.Password) != nil {
			api.Fail(w, http.StatusUnauthorized, apperror.CodeUnauthorized, "invalid admin credentials", requestID)
			return
		}
		session = authz.Session{Name: h.Accounts.AdminName, Email: h.Accounts.AdminEmail, Role: authz.RoleAdmin}
	case authz.RoleHR:
		email := strings.TrimSpace(payload.Email)
		if email == "" {
			email = h.Accounts.HREmail
		}
		name := strings.TrimSpace(payload.Name)
		if name == "" {
			name = h.Accounts.HRName
		}
		session = authz.Session{Name: name, Email: email, Role: authz.RoleHR}
	case authz.RoleEmployee:
		emp, err := h.Employees.FindByEmail(r.Context(), strings.TrimSpace(payload.Email))
		if err != nil {
			api.FailError(w, err, requestID)
			return
		}
		session = authz.Session{EmployeeID: emp.ID, Name: emp.Name, Email: emp.Email, Role: authz.RoleEmployee}
	}

	token, err := authz.GenerateToken(h.Secret, session, h.TTL)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, apperror.CodeInternal, "failed to issue session token", requestID)
		return
	}

	if _, err := h.Activity.Record(r.Context(), session, activity.ActionLogin, "Signed in as "+string(session.Role)); err != nil {
		slog.Warn("record login activity failed", "err", err)
	}
	api.Success(w, loginResponse{Token: token, Session: session}, requestID)
}

// handleSignup registers a new employee record without a session. The record
// becomes usable the moment its email logs in with the employee role.
func (h *Handler) handleSignup(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload employee.NewInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, apperror.CodeValidation, "invalid request payload", requestID)
		return
	}

	emp, err := h.Signup.Signup(r.Context(), payload)
	if err != nil {
		api.FailError(w, err, requestID)
		return
	}
	api.Created(w, emp, requestID)
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	session, _ := middleware.GetSession(r.Context())

	if _, err := h.Activity.Record(r.Context(), session, activity.ActionLogout, "Signed out"); err != nil {
		slog.Warn("record logout activity failed", "err", err)
	}
	api.Success(w, map[string]string{"message": "logged out"}, requestID)
}

func (h *Handler) handleSession(w http.ResponseWriter, r *http.Request) {
	session, _ := middleware.GetSession(r.Context())
	api.Success(w, session, middleware.GetRequestID(r.Context()))
}
