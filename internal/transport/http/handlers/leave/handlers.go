package leavehandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrportal/internal/domain/authz"
	"hrportal/internal/domain/leave"
	"hrportal/internal/domain/reports"
	"hrportal/internal/shared/apperror"
	"hrportal/internal/transport/http/api"
	"hrportal/internal/transport/http/middleware"
	"hrportal/internal/transport/http/shared"
)

type Handler struct {
	Service *leave.Service
	Reports *reports.Service
}

func NewHandler(service *leave.Service, reportsSvc *reports.Service) *Handler {
	return &Handler{Service: service, Reports: reportsSvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/leaveRequests", func(r chi.Router) {
		r.Use(middleware.RequireSession)
		r.Get("/", h.handleList)
		r.Post("/", h.handleSubmit)
		r.With(middleware.RequireOperation(authz.OpExport)).Get("/export", h.handleExport)
		r.Patch("/{requestID}", h.handleDecide)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	session, _ := middleware.GetSession(r.Context())

	query := r.URL.Query()
	filter := leave.Filter{
		Status:     query.Get("status"),
		EmployeeID: query.Get("employeeId"),
	}

	requests, err := h.Service.List(r.Context(), session, filter, query.Get("sort"), query.Get("order"))
	if err != nil {
		api.FailError(w, err, requestID)
		return
	}
	api.Success(w, requests, requestID)
}

type submitPayload struct {
	EmployeeID string `json:"employeeId"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	Reason     string `json:"reason"`
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	session, _ := middleware.GetSession(r.Context())

	var payload submitPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, apperror.CodeValidation, "invalid request payload", requestID)
		return
	}

	start, err := shared.ParseDate(payload.StartDate)
	if err != nil {
		api.FailError(w, apperror.Validation("startDate", "invalid date"), requestID)
		return
	}
	end, err := shared.ParseDate(payload.EndDate)
	if err != nil {
		api.FailError(w, apperror.Validation("endDate", "invalid date"), requestID)
		return
	}

	req, err := h.Service.Submit(r.Context(), session, leave.SubmitInput{
		EmployeeID: payload.EmployeeID,
		StartDate:  start,
		EndDate:    end,
		Reason:     payload.Reason,
	})
	if err != nil {
		api.FailError(w, err, requestID)
		return
	}
	api.Created(w, req, requestID)
}

type decidePayload struct {
	Status string `json:"status"`
}

// handleDecide moves a pending request to approved or denied. Any other
// target status is rejected before the service is consulted.
func (h *Handler) handleDecide(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	session, _ := middleware.GetSession(r.Context())
	id := chi.URLParam(r, "requestID")

	var payload decidePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, apperror.CodeValidation, "invalid request payload", requestID)
		return
	}

	var (
		req leave.LeaveRequest
		err error
	)
	switch payload.Status {
	case leave.StatusApproved:
		req, err = h.Service.Approve(r.Context(), session, id)
	case leave.StatusDenied:
		req, err = h.Service.Deny(r.Context(), session, id)
	default:
		api.FailError(w, apperror.Validation("status", "status must be approved or denied"), requestID)
		return
	}
	if err != nil {
		api.FailError(w, err, requestID)
		return
	}
	api.Success(w, req, requestID)
}

func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	session, _ := middleware.GetSession(r.Context())

	rows, err := h.Reports.LeaveRequestsCSV(r.Context(), session)
	if err != nil {
		api.FailError(w, err, requestID)
		return
	}
	if err := shared.WriteCSV(w, "leave_requests", rows); err != nil {
		api.Fail(w, http.StatusInternalServerError, apperror.CodeInternal, "failed to write csv", requestID)
	}
}
