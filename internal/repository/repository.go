package repository

import (
	"context"
	"errors"
	"geoblog/internal/models"

	"github.com/jmoiron/sqlx"
)

var (
	ErrUserNotFound    = errors.New("пользователь не найден")
	ErrPostNotFound    = errors.New("пост не найден")
	ErrInvalidPassword = errors.New("неверный пароль")
	ErrEmailTaken      = errors.New("email уже существует")
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	VerifyPassword(ctx context.Context, email, password string) (*models.User, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, postID string) (*models.Post, error)
	List(ctx context.Context, typeFilter string, limit int) ([]models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, postID string) error
}

type HealthRepository interface {
	Ping(ctx context.Context) error
}

type Repository struct {
	User   UserRepository
	Post   PostRepository
	Health HealthRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:   NewUserRepository(db),
		Post:   NewPostRepository(db),
		Health: NewHealthRepository(db),
	}
}
