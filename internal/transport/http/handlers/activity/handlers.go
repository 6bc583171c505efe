package activityhandler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"hrportal/internal/domain/activity"
	"hrportal/internal/domain/authz"
	"hrportal/internal/domain/reports"
	"hrportal/internal/shared/apperror"
	"hrportal/internal/transport/http/api"
	"hrportal/internal/transport/http/middleware"
	"hrportal/internal/transport/http/shared"
)

type Handler struct {
	Service *activity.Service
	Reports *reports.Service
}

func NewHandler(service *activity.Service, reportsSvc *reports.Service) *Handler {
	return &Handler{Service: service, Reports: reportsSvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/activityLogs", func(r chi.Router) {
		r.Use(middleware.RequireSession)
		r.With(middleware.RequireOperation(authz.OpActivityRead)).Get("/", h.handleList)
		r.Post("/", h.handleRecord)
		r.With(middleware.RequireOperation(authz.OpActivityRead)).Get("/export", h.handleExport)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	session, _ := middleware.GetSession(r.Context())

	entries, err := h.Service.List(r.Context(), session, strings.TrimSpace(r.URL.Query().Get("username")))
	if err != nil {
		api.FailError(w, err, requestID)
		return
	}
	api.Success(w, entries, requestID)
}

type recordPayload struct {
	Action  string `json:"action"`
	Details string `json:"details"`
}

// handleRecord appends an entry under the caller's own identity. The identity
// fields always come from the session, never from the payload.
func (h *Handler) handleRecord(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	session, _ := middleware.GetSession(r.Context())

	var payload recordPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, apperror.CodeValidation, "invalid request payload", requestID)
		return
	}
	if strings.TrimSpace(payload.Action) == "" {
		api.FailError(w, apperror.Validation("action", "action is required"), requestID)
		return
	}

	entry, err := h.Service.Record(r.Context(), session, payload.Action, payload.Details)
	if err != nil {
		api.FailError(w, err, requestID)
		return
	}
	api.Created(w, entry, requestID)
}

func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	session, _ := middleware.GetSession(r.Context())

	rows, err := h.Reports.ActivityLogsCSV(r.Context(), session)
	if err != nil {
		api.FailError(w, err, requestID)
		return
	}
	if err := shared.WriteCSV(w, "activity_logs", rows); err != nil {
		api.Fail(w, http.StatusInternalServerError, apperror.CodeInternal, "failed to write csv", requestID)
	}
}
