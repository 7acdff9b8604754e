package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"geoblog/internal/models"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type PostRepositoryImpl struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) *PostRepositoryImpl {
	return &PostRepositoryImpl{db: db}
}

func (r *PostRepositoryImpl) Create(ctx context.Context, post *models.Post) error {
	query := `
        INSERT INTO posts
        (post_id, text, title, date, type, lang, latitude, longitude, location_url, img_data, img_content_type)
        VALUES
        (:post_id, :text, :title, :date, :type, :lang, :latitude, :longitude, :location_url, :img_data, :img_content_type)
    `

	if post.PostID == "" {
		post.PostID = uuid.New().String()
	}

	if post.Date.IsZero() {
		post.Date = time.Now()
	}

	_, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		return fmt.Errorf("ошибка при создании поста: %w", err)
	}

	post.Hydrate()

	return nil
}

func (r *PostRepositoryImpl) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	// малформленный id эквивалентен отсутствующему посту
	if _, err := uuid.Parse(postID); err != nil {
		return nil, ErrPostNotFound
	}

	query := `
        SELECT * FROM posts
        WHERE post_id = $1
    `

	var post models.Post
	err := r.db.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("ошибка при получении поста: %w", err)
	}

	post.Hydrate()

	return &post, nil
}

func (r *PostRepositoryImpl) List(ctx context.Context, typeFilter string, limit int) ([]models.Post, error) {
	var posts []models.Post
	var err error

	if typeFilter != "" {
		query := `SELECT * FROM posts WHERE type = $1 LIMIT $2`
		err = r.db.SelectContext(ctx, &posts, query, typeFilter, limit)
	} else {
		query := `SELECT * FROM posts LIMIT $1`
		err = r.db.SelectContext(ctx, &posts, query, limit)
	}

	if err != nil {
		return nil, fmt.Errorf("ошибка при получении постов: %w", err)
	}

	for i := range posts {
		posts[i].Hydrate()
	}

	return posts, nil
}

func (r *PostRepositoryImpl) Update(ctx context.Context, post *models.Post) error {
	query := `
		UPDATE posts SET
			text = :text,
			title = :title,
			type = :type,
			lang = :lang,
			latitude = :latitude,
			longitude = :longitude,
			location_url = :location_url,
			img_data = :img_data,
			img_content_type = :img_content_type
		WHERE post_id = :post_id
	`

	result, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении поста: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return ErrPostNotFound
	}

	post.Hydrate()

	return nil
}

func (r *PostRepositoryImpl) Delete(ctx context.Context, postID string) error {
	if _, err := uuid.Parse(postID); err != nil {
		return ErrPostNotFound
	}

	query := `DELETE FROM posts WHERE post_id = $1`

	result, err := r.db.ExecContext(ctx, query, postID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении поста: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return ErrPostNotFound
	}

	return nil
}
