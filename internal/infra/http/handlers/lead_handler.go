package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pixelforge/studio-api/internal/entity"
	"github.com/pixelforge/studio-api/internal/infra/http/middleware"
	"github.com/pixelforge/studio-api/internal/usecase"
)

type LeadHandler struct {
	CreateUC       *usecase.CreateLeadUseCase
	ListUC         *usecase.ListLeadsUseCase
	UpdateStatusUC *usecase.UpdateStatusUseCase
	AppendNoteUC   *usecase.AppendNoteUseCase

	rateLimiter *RateLimiter
}

func NewLeadHandler(
	createUC *usecase.CreateLeadUseCase,
	listUC *usecase.ListLeadsUseCase,
	updateStatusUC *usecase.UpdateStatusUseCase,
	appendNoteUC *usecase.AppendNoteUseCase,
) *LeadHandler {
	return &LeadHandler{
		CreateUC:       createUC,
		ListUC:         listUC,
		UpdateStatusUC: updateStatusUC,
		AppendNoteUC:   appendNoteUC,
		rateLimiter:    NewRateLimiter(10, time.Minute), // 10 submissions/min per IP
	}
}

type createLeadResponse struct {
	Success bool   `json:"success"`
	LeadID  string `json:"leadId"`
}

// HandleCreate is POST /api/leads.
func (h *LeadHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if !h.rateLimiter.Allow(clientIP(r)) {
		writeErrorResponse(w, http.StatusTooManyRequests, "RATE_LIMITED",
			"Too many requests. Please try again later.")
		return
	}

	var input usecase.CreateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "request body is not valid JSON")
		return
	}

	lead, err := h.CreateUC.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordLeadCaptured(lead.ServiceInterest)
	writeJSON(w, http.StatusOK, createLeadResponse{Success: true, LeadID: lead.ID})
}

type listLeadsResponse struct {
	Success  bool           `json:"success"`
	Leads    []*entity.Lead `json:"leads"`
	Total    int            `json:"total"`
	Filtered int            `json:"filtered"`
}

// HandleList is GET /api/leads. ?status= filters by exact match.
func (h *LeadHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	output, err := h.ListUC.Execute(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, listLeadsResponse{
		Success:  true,
		Leads:    output.Leads,
		Total:    output.Total,
		Filtered: output.Filtered,
	})
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

type updateStatusResponse struct {
	Success bool   `json:"success"`
	LeadID  string `json:"leadId"`
	Status  string `json:"status"`
}

// HandleUpdateStatus is POST /api/leads/{id}/status.
func (h *LeadHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "request body is not valid JSON")
		return
	}

	if err := h.UpdateStatusUC.Execute(r.Context(), id, req.Status); err != nil {
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordStatusUpdate(req.Status)
	writeJSON(w, http.StatusOK, updateStatusResponse{Success: true, LeadID: id, Status: req.Status})
}

type appendNoteRequest struct {
	Note string `json:"note"`
}

type appendNoteResponse struct {
	Success bool     `json:"success"`
	LeadID  string   `json:"leadId"`
	Notes   []string `json:"notes"`
}

// HandleAppendNote is POST /api/leads/{id}/notes.
func (h *LeadHandler) HandleAppendNote(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req appendNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "request body is not valid JSON")
		return
	}

	notes, err := h.AppendNoteUC.Execute(r.Context(), id, req.Note)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordNoteAppended()
	writeJSON(w, http.StatusOK, appendNoteResponse{Success: true, LeadID: id, Notes: notes})
}

func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}
