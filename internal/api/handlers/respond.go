package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/locdecor/locdecor/internal/service"
)

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondServiceError maps service sentinel errors to HTTP status codes
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, service.ErrSessionExpired):
		respondError(w, http.StatusUnauthorized, "Session expired")
	case errors.Is(err, service.ErrNotFound):
		respondError(w, http.StatusNotFound, "Not found")
	case errors.Is(err, service.ErrDuplicate),
		errors.Is(err, service.ErrInvalidTransition),
		errors.Is(err, service.ErrInsufficientStock):
		respondError(w, http.StatusConflict, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "Internal server error")
	}
}
