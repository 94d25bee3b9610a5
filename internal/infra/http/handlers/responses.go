package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pixelforge/studio-api/internal/usecase"
)

// Every endpoint answers with the same envelope: {"success": true, ...} on
// the happy path, {"success": false, "error": CODE, ...} otherwise.

type errorResponse struct {
	Success bool     `json:"success"`
	Error   string   `json:"error"`
	Message string   `json:"message,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeErrorResponse(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: code, Message: message})
}

// writeUseCaseError maps the service error taxonomy onto HTTP. Backend
// failures carry the underlying error text for operators; credentials never
// appear in it.
func writeUseCaseError(w http.ResponseWriter, err error) {
	var verrs usecase.ValidationErrors
	if errors.As(err, &verrs) {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:   "VALIDATION_ERROR",
			Message: "submission failed validation",
			Errors:  verrs.Messages(),
		})
		return
	}

	var nf *usecase.NotFoundError
	if errors.As(err, &nf) {
		writeErrorResponse(w, http.StatusNotFound, "NOT_FOUND", nf.Error())
		return
	}

	var be *usecase.BackendError
	if errors.As(err, &be) {
		writeErrorResponse(w, http.StatusInternalServerError, "BACKEND_UNAVAILABLE", be.Error())
		return
	}

	writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL_ERROR", "unexpected error")
}
