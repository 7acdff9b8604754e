package service

import (
	"context"
	"geoblog/internal/models"
	"geoblog/internal/repository"
)

// uploaded bytes are stored verbatim under a fixed label
const imgContentType = "image/png"

// DefaultListLimit caps the list result when the caller does not supply a size
const DefaultListLimit = 9

type PostService interface {
	CreatePost(ctx context.Context, req repository.CreatePostRequest) (*models.Post, error)
	ListPosts(ctx context.Context, typeFilter string, size int) ([]models.Post, error)
	GetPost(ctx context.Context, postID string) (*models.Post, error)
	UpdatePost(ctx context.Context, req repository.UpdatePostRequest) (*models.Post, error)
	DeletePost(ctx context.Context, postID string) error
}

type postService struct {
	postRepo repository.PostRepository
}

func NewPostService(postRepo repository.PostRepository) PostService {
	return &postService{postRepo: postRepo}
}

func (p *postService) CreatePost(ctx context.Context, req repository.CreatePostRequest) (*models.Post, error) {
	post := &models.Post{
		Text:        req.Text,
		Title:       req.Title,
		Type:        req.Type,
		Lang:        req.Lang,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		LocationURL: req.LocationURL,
	}

	if len(req.ImgData) > 0 {
		contentType := imgContentType
		post.ImgData = req.ImgData
		post.ImgContentType = &contentType
	}

	err := p.postRepo.Create(ctx, post)
	if err != nil {
		return nil, err
	}

	return post, nil
}

func (p *postService) ListPosts(ctx context.Context, typeFilter string, size int) ([]models.Post, error) {
	if size < 1 {
		size = DefaultListLimit
	}

	posts, err := p.postRepo.List(ctx, typeFilter, size)
	if err != nil {
		return nil, err
	}

	return posts, nil
}

func (p *postService) GetPost(ctx context.Context, postID string) (*models.Post, error) {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	return post, nil
}

func (p *postService) UpdatePost(ctx context.Context, req repository.UpdatePostRequest) (*models.Post, error) {
	post, err := p.postRepo.GetByID(ctx, req.PostID)
	if err != nil {
		return nil, err
	}

	// явный список обновляемых полей, поле перезаписывается только когда оно
	// пришло в запросе
	if req.Text != nil {
		post.Text = *req.Text
	}
	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Type != nil {
		post.Type = *req.Type
	}
	if req.Lang != nil {
		post.Lang = *req.Lang
	}
	if req.Latitude != nil {
		post.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		post.Longitude = *req.Longitude
	}
	if req.LocationURL != nil {
		post.LocationURL = *req.LocationURL
	}

	if len(req.ImgData) > 0 {
		contentType := imgContentType
		post.ImgData = req.ImgData
		post.ImgContentType = &contentType
	}

	err = p.postRepo.Update(ctx, post)
	if err != nil {
		return nil, err
	}

	return post, nil
}

func (p *postService) DeletePost(ctx context.Context, postID string) error {
	err := p.postRepo.Delete(ctx, postID)
	if err != nil {
		return err
	}

	return nil
}
