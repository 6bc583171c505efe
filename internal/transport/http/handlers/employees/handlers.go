package employeehandler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"hrportal/internal/domain/authz"
	"hrportal/internal/domain/employee"
	"hrportal/internal/domain/reports"
	"hrportal/internal/shared/apperror"
	"hrportal/internal/transport/http/api"
	"hrportal/internal/transport/http/middleware"
	"hrportal/internal/transport/http/shared"
)

type Handler struct {
	Service *employee.Service
	Reports *reports.Service
}

func NewHandler(service *employee.Service, reportsSvc *reports.Service) *Handler {
	return &Handler{Service: service, Reports: reportsSvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.Use(middleware.RequireSession)
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.With(middleware.RequireOperation(authz.OpExport)).Get("/export", h.handleExport)
		r.Get("/{employeeID}", h.handleGet)
		r.Patch("/{employeeID}", h.handleUpdate)
		r.Delete("/{employeeID}", h.handleDelete)
	})
}

// handleList returns the directory sorted per query, or a single-record
// lookup when ?email= is present. Records with a blank status sort first
// regardless of key so HR sees unfinished onboarding at the top.
func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	session, _ := middleware.GetSession(r.Context())

	if email := strings.TrimSpace(r.URL.Query().Get("email")); email != "" {
		emp, err := h.Service.FindByEmail(r.Context(), session, email)
		if err != nil {
			// A filter with no hits is an empty result, not a missing
			// resource.
			if apperror.Is(err, apperror.CodeNotFound) {
				api.Success(w, []employee.Employee{}, requestID)
				return
			}
			api.FailError(w, err, requestID)
			return
		}
		api.Success(w, []employee.Employee{emp}, requestID)
		return
	}

	employees, err := h.Service.List(r.Context(), session)
	if err != nil {
		api.FailError(w, err, requestID)
		return
	}

	sortKey := r.URL.Query().Get("sort")
	direction := r.URL.Query().Get("order")
	api.Success(w, employee.SortBy(employees, sortKey, direction), requestID)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	session, _ := middleware.GetSession(r.Context())

	emp, err := h.Service.Get(r.Context(), session, chi.URLParam(r, "employeeID"))
	if err != nil {
		api.FailError(w, err, requestID)
		return
	}
	api.Success(w, emp, requestID)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	session, _ := middleware.GetSession(r.Context())

	var payload employee.NewInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, apperror.CodeValidation, "invalid request payload", requestID)
		return
	}

	emp, err := h.Service.Create(r.Context(), session, payload)
	if err != nil {
		api.FailError(w, err, requestID)
		return
	}
	api.Created(w, emp, requestID)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	session, _ := middleware.GetSession(r.Context())

	var payload employee.UpdateInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, apperror.CodeValidation, "invalid request payload", requestID)
		return
	}

	emp, err := h.Service.Update(r.Context(), session, chi.URLParam(r, "employeeID"), payload)
	if err != nil {
		api.FailError(w, err, requestID)
		return
	}
	api.Success(w, emp, requestID)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	session, _ := middleware.GetSession(r.Context())

	if err := h.Service.Delete(r.Context(), session, chi.URLParam(r, "employeeID")); err != nil {
		api.FailError(w, err, requestID)
		return
	}
	api.Success(w, map[string]string{"message": "employee deleted"}, requestID)
}

func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	session, _ := middleware.GetSession(r.Context())

	rows, err := h.Reports.EmployeesCSV(r.Context(), session)
	if err != nil {
		api.FailError(w, err, requestID)
		return
	}
	if err := shared.WriteCSV(w, "employees", rows); err != nil {
		api.Fail(w, http.StatusInternalServerError, apperror.CodeInternal, "failed to write csv", requestID)
	}
}
