package handlers

import (
	"encoding/json"
	"errors"
	"geoblog/internal/repository"
	"net/http"
)

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

var registerFieldMsgs = map[string]string{
	"Name":     "Name is required",
	"Email":    "Please include a valid email",
	"Password": "Please enter a password with 6 or more characters",
}

// Register - POST /api/users
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteErrors(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteErrors(w, http.StatusBadRequest, validationMessages(err, registerFieldMsgs)...)
		return
	}

	serviceReq := repository.CreateUserRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}

	token, err := h.AuthService.Register(r.Context(), serviceReq)
	if err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			WriteErrors(w, http.StatusBadRequest, "User already exists")
			return
		}
		WriteServerError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, TokenResponse{Token: token})
}
