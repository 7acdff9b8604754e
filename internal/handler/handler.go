package handlers

import (
	"geoblog/internal/config"
	"geoblog/internal/repository"
	"geoblog/internal/service"
	"net/http"

	"github.com/go-playground/validator/v10"
)

type Handlers struct {
	AuthService service.AuthService
	PostService service.PostService
	HealthRepo  repository.HealthRepository
	Cfg         *config.Config
	Validate    *validator.Validate
}

func NewHandlers(repo *repository.Repository, service *service.Service, config *config.Config) *Handlers {
	return &Handlers{
		AuthService: service.Auth,
		PostService: service.Post,
		HealthRepo:  repo.Health,
		Cfg:         config,
		Validate:    validator.New(),
	}
}

type HealthResponse struct {
	Status string `json:"status"`
}

func (h *Handlers) HealthHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.HealthRepo.Ping(r.Context()); err != nil {
		WriteErrors(w, http.StatusServiceUnavailable, "Database unavailable")
		return
	}

	WriteJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}
