package service

import (
	"context"
	"errors"
	"fmt"
	"geoblog/internal/config"
	"geoblog/internal/models"
	"geoblog/internal/repository"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidCredentials = errors.New("неверный email или пароль")

type AuthService interface {
	Register(ctx context.Context, req repository.CreateUserRequest) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	ValidateToken(tokenString string) (*jwt.Token, error)
	UserIDFromToken(tokenString string) (string, error)
	CurrentUser(ctx context.Context, userID string) (*models.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

func (s *authService) Register(ctx context.Context, req repository.CreateUserRequest) (string, error) {
	existingUser, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err == nil && existingUser != nil {
		return "", repository.ErrEmailTaken
	}

	user := &models.User{
		Name:  req.Name,
		Email: req.Email,
	}

	err = s.userRepo.CreateUser(ctx, user, req.Password)
	if err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return "", err
		}
		return "", fmt.Errorf("ошибка при создании пользователя: %w", err)
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", err
	}

	return token, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.VerifyPassword(ctx, email, password)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) || errors.Is(err, repository.ErrInvalidPassword) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("ошибка аутентификации: %w", err)
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", err
	}

	return token, nil
}

func (s *authService) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"userId": user.UserID,
		"exp":    time.Now().Add(s.cfg.TokenDuration).Unix(),
		"iat":    time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.cfg.JWTSecretKey))
	if err != nil {
		return "", fmt.Errorf("ошибка подписи токена: %w", err)
	}

	return tokenString, nil
}

func (s *authService) ValidateToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("неожиданный метод подписи: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecretKey), nil
	})

	if err != nil {
		return nil, fmt.Errorf("ошибка парсинга токена: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("недействительный токен")
	}

	return token, nil
}

func (s *authService) UserIDFromToken(tokenString string) (string, error) {
	token, err := s.ValidateToken(tokenString)
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("неверный формат claims")
	}

	userID, ok := claims["userId"].(string)
	if !ok {
		return "", fmt.Errorf("токен не содержит userId")
	}

	return userID, nil
}

func (s *authService) CurrentUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return user, nil
}
