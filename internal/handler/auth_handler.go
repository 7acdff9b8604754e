package handlers

import (
	"encoding/json"
	"errors"
	"geoblog/internal/service"
	"net/http"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

var loginFieldMsgs = map[string]string{
	"Email":    "Please include a valid email",
	"Password": "Password is required",
}

// Login - POST /api/auth
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteErrors(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteErrors(w, http.StatusBadRequest, validationMessages(err, loginFieldMsgs)...)
		return
	}

	token, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			WriteErrors(w, http.StatusBadRequest, "Invalid credentials")
			return
		}
		WriteServerError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, TokenResponse{Token: token})
}

// GetCurrentUser - GET /api/auth, идентификатор берём из проверенного токена
func (h *Handlers) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteErrors(w, http.StatusUnauthorized, "Authorization required")
		return
	}

	user, err := h.AuthService.CurrentUser(r.Context(), userID)
	if err != nil {
		WriteServerError(w, err)
		return
	}

	// PasswordHash не сериализуется
	WriteJSON(w, http.StatusOK, user)
}
