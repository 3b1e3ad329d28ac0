package http

import (
	"encoding/json"
	"net/http"

	"bookshelf-backend/internal/service"
)

type AuthHandler struct {
	auth service.AuthService
}

func NewAuthHandler(auth service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type registrationRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type authenticationRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authenticationResponse struct {
	Token string `json:"token"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registrationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if req.Email == "" || req.FirstName == "" || req.LastName == "" {
		writeBadRequest(w, "email, first_name and last_name are required")
		return
	}
	if len(req.Password) < 8 {
		writeBadRequest(w, "password must be at least 8 characters")
		return
	}
	if err := h.auth.Register(r.Context(), req.Email, req.Password, req.FirstName, req.LastName); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, nil)
}

func (h *AuthHandler) Authenticate(w http.ResponseWriter, r *http.Request) {
	var req authenticationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	token, err := h.auth.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, authenticationResponse{Token: token})
}

func (h *AuthHandler) ActivateAccount(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		writeBadRequest(w, "missing token parameter")
		return
	}
	if err := h.auth.ActivateAccount(r.Context(), token); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}
