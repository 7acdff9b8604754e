package main

import (
	"fmt"
	"log"
	"net/http"

	"geoblog/cmd/app"
	"geoblog/internal/config"
	handlers "geoblog/internal/handler"
	"geoblog/internal/middleware"

	"github.com/gorilla/mux"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY не установлен в .env файле")
	}

	db, repo, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(repo, services, cfg)

	router := mux.NewRouter()

	// setting up routes
	router.HandleFunc("/health", handler.HealthHandler).Methods(http.MethodGet)

	router.HandleFunc("/api/users", handler.Register).Methods(http.MethodPost)

	router.HandleFunc("/api/auth", handler.Login).Methods(http.MethodPost)
	router.HandleFunc("/api/auth", handler.GetCurrentUser).Methods(http.MethodGet)

	router.HandleFunc("/api/posts", handler.GetPosts).Methods(http.MethodGet)
	router.HandleFunc("/api/posts", handler.CreatePost).Methods(http.MethodPost)
	router.HandleFunc("/api/posts/{id}", handler.GetPost).Methods(http.MethodGet)
	router.HandleFunc("/api/posts/{id}/image", handler.GetPostImage).Methods(http.MethodGet)
	router.HandleFunc("/api/posts/{id}", handler.UpdatePost).Methods(http.MethodPut)
	router.HandleFunc("/api/posts/{id}", handler.DeletePost).Methods(http.MethodDelete)

	handlerChain := middleware.Chain(
		router,
		middleware.AuthMiddleware(services.Auth),
		middleware.CORSMiddleware(cfg),
		middleware.LoggingMiddleware,
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	fmt.Printf("Сервер запущен на %s\n", addr)
	fmt.Printf("База данных: %s\n", cfg.DB.DbNAME)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
