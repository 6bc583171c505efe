package reportshandler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"hrportal/internal/domain/reports"
	"hrportal/internal/transport/http/api"
	"hrportal/internal/transport/http/middleware"
)

type Handler struct {
	Service *reports.Service
}

func NewHandler(service *reports.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/reports", func(r chi.Router) {
		r.Use(middleware.RequireSession)
		r.Get("/admin", h.handleAdminOverview)
		r.Get("/hr", h.handleHROverview)
		r.Get("/export.pdf", h.handleSummaryPDF)
	})
}

func (h *Handler) handleAdminOverview(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	session, _ := middleware.GetSession(r.Context())

	overview, err := h.Service.AdminOverview(r.Context(), session)
	if err != nil {
		api.FailError(w, err, requestID)
		return
	}
	api.Success(w, overview, requestID)
}

func (h *Handler) handleHROverview(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	session, _ := middleware.GetSession(r.Context())

	overview, err := h.Service.HROverview(r.Context(), session)
	if err != nil {
		api.FailError(w, err, requestID)
		return
	}
	api.Success(w, overview, requestID)
}

func (h *Handler) handleSummaryPDF(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	session, _ := middleware.GetSession(r.Context())

	doc, err := h.Service.SummaryPDF(r.Context(), session)
	if err != nil {
		api.FailError(w, err, requestID)
		return
	}

	filename := fmt.Sprintf("summary_%s.pdf", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	_, _ = w.Write(doc)
}
