package handlers

import (
	"errors"
	"geoblog/internal/models"
	"geoblog/internal/repository"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
)

// readImageFile returns the uploaded bytes or nil when no file was sent
func readImageFile(r *http.Request) ([]byte, error) {
	file, _, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	return io.ReadAll(file)
}

// formValue возвращает nil, когда ключ не пришёл в форме
func formValue(r *http.Request, key string) *string {
	if r.MultipartForm == nil {
		return nil
	}
	if values, ok := r.MultipartForm.Value[key]; ok && len(values) > 0 {
		return &values[0]
	}
	return nil
}

// GetPosts - GET /api/posts?type=&size=
func (h *Handlers) GetPosts(w http.ResponseWriter, r *http.Request) {
	typeFilter := r.URL.Query().Get("type")

	size, _ := strconv.Atoi(r.URL.Query().Get("size"))

	posts, err := h.PostService.ListPosts(r.Context(), typeFilter, size)
	if err != nil {
		WriteServerError(w, err)
		return
	}

	if posts == nil {
		posts = []models.Post{}
	}

	WriteJSON(w, http.StatusOK, posts)
}

// GetPost - GET /api/posts/{id}
func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	post, err := h.PostService.GetPost(r.Context(), postID)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			WriteMessage(w, http.StatusNotFound, "Post not found")
			return
		}
		WriteServerError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, post)
}

// GetPostImage - GET /api/posts/{id}/image, отдаёт сохранённые байты как есть
func (h *Handlers) GetPostImage(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	post, err := h.PostService.GetPost(r.Context(), postID)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			WriteMessage(w, http.StatusNotFound, "Post not found")
			return
		}
		WriteServerError(w, err)
		return
	}

	if len(post.ImgData) == 0 || post.ImgContentType == nil {
		WriteMessage(w, http.StatusNotFound, "Image not found")
		return
	}

	w.Header().Set("Content-Type", *post.ImgContentType)
	w.WriteHeader(http.StatusOK)
	w.Write(post.ImgData)
}

// parseUploadForm ограничивает тело запроса значением MAX_UPLOAD_SIZE и
// разбирает multipart-форму
func (h *Handlers) parseUploadForm(w http.ResponseWriter, r *http.Request) bool {
	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize)

	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		if strings.Contains(err.Error(), "request body too large") {
			WriteErrors(w, http.StatusRequestEntityTooLarge, "File too large")
			return false
		}
		WriteErrors(w, http.StatusBadRequest, "Invalid form data")
		return false
	}

	return true
}

// CreatePost - POST /api/posts, multipart: поля поста + необязательный файл image
func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	if !h.parseUploadForm(w, r) {
		return
	}

	fields := map[string]string{
		"text":        "Text is required",
		"title":       "Title is required",
		"type":        "Type is required",
		"lang":        "Lang is required",
		"latitude":    "Latitude is required",
		"longitude":   "Longitude is required",
		"locationUrl": "Location url is required",
	}

	var messages []string
	for _, key := range []string{"text", "title", "type", "lang", "latitude", "longitude", "locationUrl"} {
		if r.FormValue(key) == "" {
			messages = append(messages, fields[key])
		}
	}
	if len(messages) > 0 {
		WriteErrors(w, http.StatusBadRequest, messages...)
		return
	}

	latitude, err := strconv.ParseFloat(r.FormValue("latitude"), 64)
	if err != nil {
		WriteErrors(w, http.StatusBadRequest, "Latitude must be a number")
		return
	}

	longitude, err := strconv.ParseFloat(r.FormValue("longitude"), 64)
	if err != nil {
		WriteErrors(w, http.StatusBadRequest, "Longitude must be a number")
		return
	}

	imgData, err := readImageFile(r)
	if err != nil {
		WriteErrors(w, http.StatusBadRequest, "Invalid image file")
		return
	}

	serviceReq := repository.CreatePostRequest{
		Text:        r.FormValue("text"),
		Title:       r.FormValue("title"),
		Type:        r.FormValue("type"),
		Lang:        r.FormValue("lang"),
		Latitude:    latitude,
		Longitude:   longitude,
		LocationURL: r.FormValue("locationUrl"),
		ImgData:     imgData,
	}

	post, err := h.PostService.CreatePost(r.Context(), serviceReq)
	if err != nil {
		WriteServerError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, post)
}

// UpdatePost - PUT /api/posts/{id}, частичное обновление через multipart-поля
func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	if !h.parseUploadForm(w, r) {
		return
	}

	serviceReq := repository.UpdatePostRequest{
		PostID:      postID,
		Text:        formValue(r, "text"),
		Title:       formValue(r, "title"),
		Type:        formValue(r, "type"),
		Lang:        formValue(r, "lang"),
		LocationURL: formValue(r, "locationUrl"),
	}

	if value := formValue(r, "latitude"); value != nil {
		latitude, err := strconv.ParseFloat(*value, 64)
		if err != nil {
			WriteErrors(w, http.StatusBadRequest, "Latitude must be a number")
			return
		}
		serviceReq.Latitude = &latitude
	}

	if value := formValue(r, "longitude"); value != nil {
		longitude, err := strconv.ParseFloat(*value, 64)
		if err != nil {
			WriteErrors(w, http.StatusBadRequest, "Longitude must be a number")
			return
		}
		serviceReq.Longitude = &longitude
	}

	imgData, err := readImageFile(r)
	if err != nil {
		WriteErrors(w, http.StatusBadRequest, "Invalid image file")
		return
	}
	serviceReq.ImgData = imgData

	post, err := h.PostService.UpdatePost(r.Context(), serviceReq)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			WriteMessage(w, http.StatusNotFound, "Post not found")
			return
		}
		WriteServerError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, post)
}

// DeletePost - DELETE /api/posts/{id}
func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	if err := h.PostService.DeletePost(r.Context(), postID); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			WriteMessage(w, http.StatusNotFound, "Post not found")
			return
		}
		WriteServerError(w, err)
		return
	}

	// пробел в конце сообщения сохранён, клиенты сравнивают строку целиком
	WriteMessage(w, http.StatusOK, "Post removed ")
}
