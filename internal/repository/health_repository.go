package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type healthRepository struct {
	db *sqlx.DB
}

func NewHealthRepository(db *sqlx.DB) HealthRepository {
	return &healthRepository{db: db}
}

func (r *healthRepository) Ping(ctx context.Context) error {
	var one int

	err := r.db.GetContext(ctx, &one, `SELECT 1`)
	if err != nil {
		return fmt.Errorf("ошибка при проверке базы данных: %w", err)
	}

	return nil
}
