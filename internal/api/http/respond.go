package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"bookshelf-backend/internal/domain"
	"bookshelf-backend/internal/logger"
	"bookshelf-backend/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		if err := json.NewEncoder(w).Encode(body); err != nil {
			logger.Error("failed to encode response", "error", err)
		}
	}
}

// writeError maps domain errors onto HTTP statuses: NotFound to 404,
// OperationNotPermitted to 403, auth failures to 401, everything else 500.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case domain.IsNotFound(err):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case domain.IsNotPermitted(err):
		writeJSON(w, http.StatusForbidden, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrConflict):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrBadCredentials), errors.Is(err, service.ErrAccountNotEnabled):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrInvalidActivation),
		errors.Is(err, service.ErrActivationExpired):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		logger.Error("internal error", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

func writeBadRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
}
