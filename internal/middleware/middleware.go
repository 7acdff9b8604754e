package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	"geoblog/internal/config"
	handlers "geoblog/internal/handler"
	"geoblog/internal/service"
)

type Middleware func(http.Handler) http.Handler

// isPublicRoute определяет маршруты, доступные без токена. Разделение идёт по
// методу, потому что на одном пути соседствуют публичные GET и защищённые
// мутации.
func isPublicRoute(r *http.Request) bool {
	if r.Method == http.MethodOptions {
		return true
	}

	switch r.Method {
	case http.MethodGet:
		// единственный защищённый GET - текущий пользователь
		return r.URL.Path != "/api/auth"
	case http.MethodPost:
		return r.URL.Path == "/api/auth" || r.URL.Path == "/api/users"
	}

	return false
}

// AuthMiddleware verifies the bearer token and adds the user id to the context
func AuthMiddleware(authService service.AuthService) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicRoute(r) {
				next.ServeHTTP(w, r)
				return
			}

			// Extracting the token from the header
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				handlers.WriteErrors(w, http.StatusUnauthorized, "No token, authorization denied")
				return
			}

			// Checking the "Bearer <token>" format
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				handlers.WriteErrors(w, http.StatusUnauthorized, "Token is not valid")
				return
			}

			userID, err := authService.UserIDFromToken(parts[1])
			if err != nil {
				handlers.WriteErrors(w, http.StatusUnauthorized, "Token is not valid")
				return
			}

			// Adding user data to the context
			ctx := context.WithValue(r.Context(), "userID", userID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func CORSMiddleware(cfg *config.Config) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", cfg.AllowedOrigin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("%s %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
	})
}

func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for _, m := range middlewares {
		h = m(h)
	}
	return h
}
