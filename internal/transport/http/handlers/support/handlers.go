package supporthandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrportal/internal/domain/authz"
	"hrportal/internal/domain/reports"
	"hrportal/internal/domain/support"
	"hrportal/internal/shared/apperror"
	"hrportal/internal/transport/http/api"
	"hrportal/internal/transport/http/middleware"
	"hrportal/internal/transport/http/shared"
)

type Handler struct {
	Service *support.Service
	Reports *reports.Service
}

func NewHandler(service *support.Service, reportsSvc *reports.Service) *Handler {
	return &Handler{Service: service, Reports: reportsSvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/serviceRequests", func(r chi.Router) {
		r.Use(middleware.RequireSession)
		r.Get("/", h.handleList)
		r.Post("/", h.handleSubmit)
		r.Get("/types", h.handleListTypes)
		r.With(middleware.RequireOperation(authz.OpExport)).Get("/export", h.handleExport)
		r.Patch("/{requestID}", h.handleAdvance)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	session, _ := middleware.GetSession(r.Context())

	query := r.URL.Query()
	filter := support.Filter{
		Status:      query.Get("status"),
		RequestType: query.Get("requestType"),
		EmployeeID:  query.Get("employeeId"),
	}

	requests, err := h.Service.List(r.Context(), session, filter, query.Get("sort"), query.Get("order"))
	if err != nil {
		api.FailError(w, err, requestID)
		return
	}
	api.Success(w, requests, requestID)
}

func (h *Handler) handleListTypes(w http.ResponseWriter, r *http.Request) {
	api.Success(w, support.RequestTypes, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	session, _ := middleware.GetSession(r.Context())

	var payload support.SubmitInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, apperror.CodeValidation, "invalid request payload", requestID)
		return
	}

	req, err := h.Service.Submit(r.Context(), session, payload)
	if err != nil {
		api.FailError(w, err, requestID)
		return
	}
	api.Created(w, req, requestID)
}

type advancePayload struct {
	Status string `json:"status"`
}

// handleAdvance moves a request forward. Resolving directly from pending is
// allowed; moving backwards is not.
func (h *Handler) handleAdvance(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	session, _ := middleware.GetSession(r.Context())
	id := chi.URLParam(r, "requestID")

	var payload advancePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, apperror.CodeValidation, "invalid request payload", requestID)
		return
	}

	var (
		req support.ServiceRequest
		err error
	)
	switch payload.Status {
	case support.StatusInProgress:
		req, err = h.Service.Start(r.Context(), session, id)
	case support.StatusResolved:
		req, err = h.Service.Resolve(r.Context(), session, id)
	default:
		api.FailError(w, apperror.Validation("status", "status must be in-progress or resolved"), requestID)
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

	rows, err := h.Reports.ServiceRequestsCSV(r.Context(), session)
	if err != nil {
		api.FailError(w, err, requestID)
		return
	}
	if err := shared.WriteCSV(w, "service_requests", rows); err != nil {
		api.Fail(w, http.StatusInternalServerError, apperror.CodeInternal, "failed to write csv", requestID)
	}
}
